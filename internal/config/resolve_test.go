package config

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rgehrsitz/folha/internal/calendar"
	"github.com/rgehrsitz/folha/internal/domain"
	"github.com/rgehrsitz/folha/internal/shift"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_CalendarDays(t *testing.T) {
	in := validInput()
	in.ReferenceMonth = 7
	in.ReferenceYear = 2024
	in.StateCode = "SP"

	out, err := Resolve(in, nil)
	require.NoError(t, err)

	assert.Equal(t, 26, out.BusinessDays)
	assert.Equal(t, 5, out.NonBusinessDays)
	assert.Zero(t, in.BusinessDays, "argument untouched")
}

func TestResolve_ExplicitDaysWin(t *testing.T) {
	in := validInput()
	in.ReferenceMonth = 7
	in.ReferenceYear = 2024
	in.BusinessDays = 20
	in.NonBusinessDays = 10

	out, err := Resolve(in, nil)
	require.NoError(t, err)

	assert.Equal(t, 20, out.BusinessDays)
	assert.Equal(t, 10, out.NonBusinessDays)
}

func TestResolve_ShiftHours(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		brk      [2]string
		days     int
		scale    domain.WorkScale
		night    string
		overtime string
	}{
		{"overnight standard", "22:00", "06:00", [2]string{}, 20, domain.ScaleStandard, "140", "0"},
		{"long day shift", "08:00", "18:00", [2]string{"12:00", "13:00"}, 22, domain.ScaleStandard, "0", "22"},
		{"12x36 night", "19:00", "07:00", [2]string{}, 15, domain.ScaleTwelveByThirtySix, "105", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			in.ShiftStart, in.ShiftEnd = tt.start, tt.end
			in.BreakStart, in.BreakEnd = tt.brk[0], tt.brk[1]
			in.DaysWorked = tt.days
			in.WorkScale = tt.scale

			out, err := Resolve(in, nil)
			require.NoError(t, err)

			assert.Equal(t, tt.night, out.NightHours.String())
			assert.Equal(t, tt.overtime, out.OvertimeHours.String())
		})
	}
}

func TestResolve_ExplicitHoursSkipShiftDerivation(t *testing.T) {
	in := validInput()
	in.ShiftStart, in.ShiftEnd = "22:00", "06:00"
	in.NightHours = decimal.NewFromInt(3)

	out, err := Resolve(in, nil)
	require.NoError(t, err)

	assert.Equal(t, "3", out.NightHours.String())
	assert.True(t, out.OvertimeHours.IsZero())
}

func TestResolve_BadShift(t *testing.T) {
	in := validInput()
	in.ShiftStart, in.ShiftEnd = "25:00", "06:00"

	_, err := Resolve(in, nil)
	assert.ErrorIs(t, err, shift.ErrUnparsableTime)
}

func TestResolve_Sundays(t *testing.T) {
	in := validInput()
	in.SundaysFrom, in.SundaysTo = "2024-03-01", "2024-03-31"

	out, err := Resolve(in, nil)
	require.NoError(t, err)
	assert.Equal(t, 5, out.SundaysAmount)

	in.WorkScale = domain.ScaleTwelveByThirtySix
	in.ShiftScheduleType = domain.ScheduleOdd
	out, err = Resolve(in, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, out.SundaysAmount)

	in.SundaysTo = "31/03/2024"
	_, err = Resolve(in, nil)
	assert.ErrorIs(t, err, calendar.ErrInvalidRange)
}

func TestResolve_NothingToDerive(t *testing.T) {
	in := validInput()
	out, err := Resolve(in, nil)
	require.NoError(t, err)

	equalDecimals := cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })
	if diff := cmp.Diff(in, out, equalDecimals); diff != "" {
		t.Errorf("Resolve changed a record with nothing to derive (-want +got):\n%s", diff)
	}
}

func TestResolveBatch_Testdata(t *testing.T) {
	batch, err := NewInputParser().LoadFromFile(filepath.Join("testdata", "batch.yaml"))
	require.NoError(t, err)

	inputs, err := ResolveBatch(batch, calendar.DefaultTable())
	require.NoError(t, err)
	require.Len(t, inputs, 4)

	assert.Equal(t, 26, inputs[0].BusinessDays)
	assert.Equal(t, "210", inputs[0].NightHours.String())
	assert.Equal(t, 3, inputs[3].SundaysAmount)
}
