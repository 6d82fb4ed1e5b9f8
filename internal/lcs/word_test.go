package lcs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jkelleyrtp/optargs/internal/lcs"
)

func TestSplitWords(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"doges", []string{"doges"}},
		{"rocketShips", []string{"rocket", "Ships"}},
		{"ToTheMoon", []string{"To", "The", "Moon"}},
		{"to_the_moon", []string{"to", "_", "the", "_", "moon"}},
		{"_private", []string{"_", "private"}},
		{"send__now", []string{"send", "__", "now"}},
		{"price2Moon", []string{"price", "2", "Moon"}},
		{"v2beta", []string{"v", "2", "beta"}},
		{"x86", []string{"x", "86"}},
		{"userID", []string{"user", "ID"}},
		{"HTTPTimeout", []string{"HTTP", "Timeout"}},
		{"GME", []string{"GME"}},
		{"__", []string{"__"}},
		{"가격2", []string{"가격", "2"}},
		{"", nil},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, lcs.SplitWords(tt.input), tt.input)
	}
}
