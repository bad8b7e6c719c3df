package marking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitDiscardTrailing(t *testing.T) {
	tests := []struct {
		name string
		in   string
		sep  string
		want []string
	}{
		{"plain", "SI-TK-G", "-", []string{"SI", "TK", "G"}},
		{"trailing delimiter dropped", "BP/", "/", []string{"BP"}},
		{"run of trailing delimiters dropped", "SI---", "-", []string{"SI"}},
		{"leading empty preserved", "-TK", "-", []string{"", "TK"}},
		{"interior empty preserved", "BP//GB", "/", []string{"BP", "", "GB"}},
		{"interior and trailing mixed", "BP//GB//", "/", []string{"BP", "", "GB"}},
		{"all delimiters collapse to nothing", "///", "/", []string{}},
		{"empty string is a single empty segment", "", "-", []string{""}},
		{"single delimiter collapses to nothing", "-", "-", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitDiscardTrailing(tt.in, tt.sep))
		})
	}
}
