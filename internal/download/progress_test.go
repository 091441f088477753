package download

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePercent(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
		ok       bool
	}{
		{"42.3%", 42.3, true},
		{" 7%", 7, true},
		{"  100.0%  ", 100, true},
		{"55", 55, true},
		{"\x1b[0;94m 12.5%\x1b[0m", 12.5, true},
		{"150%", 100, true},
		{"-3%", 0, true},
		{"", 0, false},
		{"%", 0, false},
		{"N/A", 0, false},
		{"Unknown%", 0, false},
		{"NaN%", 0, false},
		{"Inf", 0, false},
	}

	for _, test := range tests {
		percent, ok := ParsePercent(test.input)
		assert.Equal(t, test.ok, ok, "input %q", test.input)
		if test.ok {
			assert.InDelta(t, test.expected, percent, 0.0001, "input %q", test.input)
		}
	}
}

func TestSample_Percent(t *testing.T) {
	p, ok := RatioSample(0.5).Percent()
	assert.True(t, ok)
	assert.InDelta(t, 50, p, 0.0001)

	p, ok = RatioSample(1.2).Percent()
	assert.True(t, ok)
	assert.Equal(t, 100.0, p)

	_, ok = RatioSample(math.NaN()).Percent()
	assert.False(t, ok)

	p, ok = TextSample("33.3%").Percent()
	assert.True(t, ok)
	assert.InDelta(t, 33.3, p, 0.0001)

	_, ok = TextSample("garbage").Percent()
	assert.False(t, ok)

	_, ok = Sample{}.Percent()
	assert.False(t, ok)
}
