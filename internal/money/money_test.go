package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entttom/quartabill/internal/money"
)

func TestFromFloat(t *testing.T) {
	d := money.FromFloat(12.345)
	assert.Equal(t, "12.35", d.StringFixed(2))
}

func TestMul(t *testing.T) {
	a := money.MustFromString("2.5")
	b := money.MustFromString("33.333")
	assert.Equal(t, "83.33", money.Mul(a, b).StringFixed(2))
}

func TestRate(t *testing.T) {
	assert.Equal(t, "0.2", money.Rate(20).String())
	assert.Equal(t, "0.05", money.Rate(5).String())
	assert.True(t, money.Rate(0).IsZero())
}

func TestPercent(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		percent  int
		expected string
	}{
		{"twenty percent", "500", 20, "100.00"},
		{"ten percent", "83.33", 10, "8.33"},
		{"zero percent", "500", 0, "0.00"},
		{"rounding", "0.05", 10, "0.01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount := money.MustFromString(tt.amount)
			got := money.Percent(amount, tt.percent)
			assert.Equal(t, tt.expected, got.StringFixed(2))
		})
	}
}

func TestSum(t *testing.T) {
	values := []decimal.Decimal{
		money.MustFromString("1.10"),
		money.MustFromString("2.20"),
		money.MustFromString("3.30"),
	}
	assert.Equal(t, "6.60", money.Sum(values).StringFixed(2))
	assert.True(t, money.Sum(nil).IsZero())
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "590,00 €", money.Format(money.FromInt(590)))
	assert.Equal(t, "1234,50 €", money.Format(money.MustFromString("1234.5")))
}

func TestFormatPlain(t *testing.T) {
	assert.Equal(t, "590.00", money.FormatPlain(money.FromInt(590)))
}

func TestMustFromString_Panics(t *testing.T) {
	require.Panics(t, func() {
		money.MustFromString("not a number")
	})
}
