package numbering_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/entttom/quartabill/internal/model"
	"github.com/entttom/quartabill/internal/numbering"
)

func TestFormat(t *testing.T) {
	date := time.Date(2024, time.February, 5, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		format   string
		quarter  model.Quarter
		expected string
	}{
		{"default format", "", model.Q1, "0124MA"},
		{"unpadded quarter", "{Q}-{JJJJ}-{KK}", model.Q3, "3-2024-MA"},
		{"date tokens", "{JJJJ}{MM}{TT}", model.Q1, "20240205"},
		{"unknown token verbatim", "{QQ}{XX}", model.Q2, "02{XX}"},
		{"fourth quarter", "{QQ}{JJ}{KK}", model.Q4, "0424MA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := numbering.Format(tt.format, tt.quarter, 2024, "MA", date)
			assert.Equal(t, tt.expected, got)
		})
	}
}
