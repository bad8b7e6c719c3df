package marking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSapPrograms(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"single program", "BP", []string{"BP"}},
		{"three programs", "BP/GB/TC", []string{"BP", "GB", "TC"}},
		{"trailing slash discarded", "BP/", []string{"BP"}},
		{"leading empty preserved", "/BP", []string{"", "BP"}},
		{"interior empty preserved", "BP//GB", []string{"BP", "", "GB"}},
		{"all slashes collapse", "///", []string{}},
		{"empty string is one empty program", "", []string{""}},
		{"more than three programs accepted", "A/B/C/D/E", []string{"A", "B", "C", "D", "E"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ParseSap(tt.in)
			assert.Equal(t, tt.want, c.Programs())
			assert.False(t, c.IsMultiple())
			assert.False(t, c.IsHvsaco())
		})
	}
}

func TestParseSapMultiplePrograms(t *testing.T) {
	c := ParseSap("MULTIPLE PROGRAMS")
	assert.True(t, c.IsMultiple())
	assert.False(t, c.IsHvsaco())
	assert.Empty(t, c.Programs())
}

func TestParseSapMultipleProgramsIsExact(t *testing.T) {
	// No fuzzy or case-insensitive match on the sentinel literal.
	tests := []struct {
		in   string
		want []string
	}{
		{"MULTIPLE", []string{"MULTIPLE"}},
		{"multiple programs", []string{"multiple programs"}},
		{"MULTIPLE PROGRAMS ", []string{"MULTIPLE PROGRAMS "}},
	}

	for _, tt := range tests {
		c := ParseSap(tt.in)
		assert.False(t, c.IsMultiple(), "input %q", tt.in)
		assert.Equal(t, tt.want, c.Programs())
	}
}

func TestNewHvsaco(t *testing.T) {
	c := NewHvsaco()
	assert.True(t, c.IsHvsaco())
	assert.False(t, c.IsMultiple())
	assert.Empty(t, c.Programs())
	assert.Equal(t, "HVSACO", c.String())
}

func TestSapString(t *testing.T) {
	tests := []struct {
		name string
		c    SapControl
		want string
	}{
		{"program list", ParseSap("BP/GB/TC"), "SAR-BP/GB/TC"},
		{"multiple programs sentinel", ParseSap("MULTIPLE PROGRAMS"), "SAR-MULTIPLE PROGRAMS"},
		{"hvsaco sentinel", NewHvsaco(), "HVSACO"},
		{"interior empty round-trips", ParseSap("BP//GB"), "SAR-BP//GB"},
		{"trailing slash normalized away", ParseSap("BP/"), "SAR-BP"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.c.String())
		})
	}
}

func TestSapTrailingSlashIdempotence(t *testing.T) {
	assert.Equal(t, ParseSap("BP").Programs(), ParseSap("BP/").Programs())
	assert.NotEqual(t, ParseSap("BP").Programs(), ParseSap("/BP").Programs())
}

func TestSapProgramsReturnsCopy(t *testing.T) {
	c := ParseSap("BP/GB")
	got := c.Programs()
	got[0] = "MUTATED"
	assert.Equal(t, []string{"BP", "GB"}, c.Programs())
}
