package model_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entttom/quartabill/internal/model"
)

func TestLineItem_Subtotal(t *testing.T) {
	item := model.LineItem{
		Description: "Betreuung [Quartal]/[Jahr]",
		Quantity:    decimal.NewFromInt(10),
		Unit:        "Std.",
		UnitPrice:   decimal.NewFromInt(50),
		TaxType:     model.TaxType("20"),
	}

	assert.True(t, item.Subtotal().Equal(decimal.NewFromInt(500)),
		"Expected subtotal 500, got %s", item.Subtotal().String())
}

func TestLineItem_SubtotalRounding(t *testing.T) {
	item := model.LineItem{
		Quantity:  decimal.RequireFromString("2.5"),
		UnitPrice: decimal.RequireFromString("33.333"),
		TaxType:   model.TaxType("10"),
	}

	// 2.5 * 33.333 = 83.3325, rounded to 83.33
	assert.Equal(t, "83.33", item.Subtotal().StringFixed(2))
}

func TestParseQuarter(t *testing.T) {
	tests := []struct {
		input    string
		expected model.Quarter
		wantErr  bool
	}{
		{"Q1", model.Q1, false},
		{"q2", model.Q2, false},
		{"3", model.Q3, false},
		{" Q4 ", model.Q4, false},
		{"Q5", 0, true},
		{"", 0, true},
		{"first", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			q, err := model.ParseQuarter(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, q)
			assert.True(t, q.Valid())
		})
	}
}

func TestQuarterOf(t *testing.T) {
	tests := []struct {
		month    time.Month
		expected model.Quarter
	}{
		{time.January, model.Q1},
		{time.March, model.Q1},
		{time.April, model.Q2},
		{time.June, model.Q2},
		{time.July, model.Q3},
		{time.September, model.Q3},
		{time.October, model.Q4},
		{time.December, model.Q4},
	}

	for _, tt := range tests {
		t.Run(tt.expected.String(), func(t *testing.T) {
			d := time.Date(2024, tt.month, 15, 0, 0, 0, 0, time.UTC)
			assert.Equal(t, tt.expected, model.QuarterOf(d))
		})
	}
}

func TestQuarter_String(t *testing.T) {
	assert.Equal(t, "Q1", model.Q1.String())
	assert.Equal(t, "Q4", model.Q4.String())
}

func TestErrors_Unwrap(t *testing.T) {
	cause := assert.AnError

	layoutErr := model.NewLayoutError("summary", "block does not fit", cause)
	assert.ErrorIs(t, layoutErr, cause)
	assert.Contains(t, layoutErr.Error(), "summary")

	renderErr := model.NewRenderError("output", "backend rejected document", cause)
	assert.ErrorIs(t, renderErr, cause)
	assert.Contains(t, renderErr.Error(), "output")

	genErr := model.NewGenerationError("Max Muster", "render failed", cause)
	assert.ErrorIs(t, genErr, cause)
	assert.Contains(t, genErr.Error(), "Max Muster")
}
