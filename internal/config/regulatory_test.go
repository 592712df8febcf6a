package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rgehrsitz/folha/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputParser_LoadRegulatoryConfig_FileNotFound(t *testing.T) {
	parser := NewInputParser()

	rules, err := parser.LoadRegulatoryConfig("nonexistent.yaml")

	assert.Error(t, err, "Should error for nonexistent file")
	assert.Nil(t, rules, "Should return nil rules")
	assert.Contains(t, err.Error(), "failed to read regulatory config file", "Should have specific error message")
}

func TestInputParser_LoadRegulatoryConfig_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	invalidFile := filepath.Join(tmpDir, "invalid.yaml")

	err := os.WriteFile(invalidFile, []byte("invalid: yaml: content: [unclosed"), 0644)
	require.NoError(t, err)

	parser := NewInputParser()
	rules, err := parser.LoadRegulatoryConfig(invalidFile)

	assert.Error(t, err, "Should error for invalid YAML")
	assert.Nil(t, rules, "Should return nil rules")
	assert.Contains(t, err.Error(), "failed to parse regulatory YAML", "Should have specific error message")
}

func TestInputParser_LoadRegulatoryConfig_OverridesAndDefaults(t *testing.T) {
	rules, err := NewInputParser().LoadRegulatoryConfig(filepath.Join("testdata", "regulatory.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 2025, rules.Metadata.DataYear)
	assert.True(t, rules.Wage.HazardPayRate.Equal(decimal.NewFromFloat(0.40)), "override applied")
	assert.True(t, rules.Withholding.INSSCeiling.Equal(decimal.NewFromFloat(8157.41)))
	assert.Len(t, rules.Withholding.INSSBrackets, 4)

	defaults := domain.DefaultRules()
	assert.True(t, rules.Wage.StandardDivisor.Equal(defaults.Wage.StandardDivisor), "default kept")
	assert.Equal(t, defaults.Termination.NoticeMaxExtraDays, rules.Termination.NoticeMaxExtraDays)
	assert.Len(t, rules.Withholding.IRRFBrackets, len(defaults.Withholding.IRRFBrackets))
}

func TestInputParser_ValidateRegulatoryConfig(t *testing.T) {
	parser := NewInputParser()

	tests := []struct {
		name        string
		modify      func(r *domain.Rules)
		expectError string
	}{
		{
			name:   "defaults are valid",
			modify: func(r *domain.Rules) {},
		},
		{
			name:        "data year",
			modify:      func(r *domain.Rules) { r.Metadata.DataYear = 2010 },
			expectError: "regulatory data year 2010 seems invalid",
		},
		{
			name:        "hazard rate above one",
			modify:      func(r *domain.Rules) { r.Wage.HazardPayRate = decimal.NewFromFloat(1.5) },
			expectError: "hazard pay rate",
		},
		{
			name:        "FGTS rate negative",
			modify:      func(r *domain.Rules) { r.Termination.FGTSPenaltyAgreement = decimal.NewFromFloat(-0.2) },
			expectError: "FGTS penalty rates",
		},
		{
			name: "INSS gap",
			modify: func(r *domain.Rules) {
				r.Withholding.INSSBrackets[1].Min = decimal.NewFromInt(1500)
			},
			expectError: "does not start where",
		},
		{
			name: "open IRRF bracket in the middle",
			modify: func(r *domain.Rules) {
				r.Withholding.IRRFBrackets[1].UpTo = decimal.Zero
			},
			expectError: "open-ended but not the last",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules := domain.DefaultRules()
			tt.modify(&rules)

			err := parser.validateRegulatoryConfig(&rules)
			if tt.expectError == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectError)
		})
	}
}
