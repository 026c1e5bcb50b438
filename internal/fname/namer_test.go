package fname_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/entttom/quartabill/internal/fname"
	"github.com/entttom/quartabill/internal/model"
)

var safeName = regexp.MustCompile(`^[A-Za-z0-9._-]+\.pdf$`)

func date() time.Time {
	return time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
}

func TestBuild_DefaultTemplate(t *testing.T) {
	got := fname.Build("", "0124MA", "Max Müller", model.Q1, 2024, date())

	assert.Regexp(t, safeName, got)
	assert.Contains(t, got, "0124MA")
	// Umlaut replaced before substitution
	assert.Equal(t, "0124MA_Max_M_ller.pdf", got)
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name     string
		template string
		expected string
	}{
		{
			name:     "all variables",
			template: "[invoiceNumber]_[customerName]_[quarter]_[year]_[date]",
			expected: "0124MA_Firma_Huber_Q1_2024_2024-01-15.pdf",
		},
		{
			name:     "unknown token survives both passes underscored",
			template: "[invoiceNumber]_[nope]",
			expected: "0124MA__nope_.pdf",
		},
		{
			name:     "path separators neutralized",
			template: "../evil/[invoiceNumber]",
			expected: ".._evil_0124MA.pdf",
		},
		{
			name:     "pdf suffix not duplicated",
			template: "[invoiceNumber].pdf",
			expected: "0124MA.pdf",
		},
		{
			name:     "pdf suffix case-insensitive",
			template: "[invoiceNumber].PDF",
			expected: "0124MA.PDF",
		},
		{
			name:     "literal-only template still yields a name",
			template: "Rechnung",
			expected: "Rechnung.pdf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fname.Build(tt.template, "0124MA", "Firma Huber", model.Q1, 2024, date())
			assert.Equal(t, tt.expected, got)
			assert.Regexp(t, `^[A-Za-z0-9._-]+\.(pdf|PDF)$`, got)
		})
	}
}

func TestEMLSibling(t *testing.T) {
	assert.Equal(t, "0124MA_Max.eml", fname.EMLSibling("0124MA_Max.pdf"))
	assert.Equal(t, "x.eml", fname.EMLSibling("x.PDF"))
	assert.Equal(t, "noext.eml", fname.EMLSibling("noext"))
}
