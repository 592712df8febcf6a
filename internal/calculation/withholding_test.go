package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestEstimateWithholding(t *testing.T) {
	engine := NewEngine()

	tests := []struct {
		name  string
		gross decimal.Decimal
		inss  string
		irrf  string
		net   string
	}{
		{"first bracket only", decimal.NewFromInt(1000), "75.00", "0.00", "925.00"},
		{"three brackets", decimal.NewFromInt(3000), "258.82", "36.15", "2705.03"},
		{"above the INSS ceiling", decimal.NewFromInt(10000), "908.86", "1604.06", "7487.08"},
		{"zero", decimal.Zero, "0.00", "0.00", "0.00"},
		{"negative gross passes through", decimal.NewFromInt(-200), "0.00", "0.00", "-200.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := engine.EstimateWithholding(tt.gross)
			assertMoney(t, tt.inss, w.INSS, "inss")
			assertMoney(t, tt.irrf, w.IRRF, "irrf")
			assertMoney(t, tt.net, w.Net, "net")
		})
	}
}

func TestEstimateWithholding_MonotonicNet(t *testing.T) {
	engine := NewEngine()
	prev := decimal.Zero
	for g := int64(0); g <= 20000; g += 250 {
		net := engine.EstimateWithholding(decimal.NewFromInt(g)).Net
		assert.True(t, net.GreaterThanOrEqual(prev), "net dropped at %d", g)
		prev = net
	}
}
