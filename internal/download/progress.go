package download

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ansiEscape matches terminal color sequences yt-dlp puts into rendered percentages
var ansiEscape = regexp.MustCompile(`\x1b\[[0-9;]*[A-Za-z]`)

// Sample is one progress reading from the engine: either a numeric ratio
// (0.0 to 1.0) or a pre-rendered percentage string such as " 42.3%".
type Sample struct {
	Ratio    float64
	HasRatio bool
	Text     string
}

// RatioSample builds a sample from a completed/total ratio
func RatioSample(ratio float64) Sample {
	return Sample{Ratio: ratio, HasRatio: true}
}

// TextSample builds a sample from a rendered percentage string
func TextSample(text string) Sample {
	return Sample{Text: text}
}

// Percent returns the sample as a 0-100 value. ok is false for samples
// that cannot be interpreted; callers ignore those.
func (s Sample) Percent() (percent float64, ok bool) {
	if s.HasRatio {
		return clampPercent(s.Ratio * 100)
	}
	return ParsePercent(s.Text)
}

// ParsePercent parses strings like "42.3%", " 7%", "\x1b[0;94m 12.0%\x1b[0m" or "55"
func ParsePercent(text string) (float64, bool) {
	text = ansiEscape.ReplaceAllString(text, "")
	text = strings.TrimSpace(text)
	text = strings.TrimSuffix(text, "%")
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, false
	}

	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, false
	}
	return clampPercent(value)
}

func clampPercent(value float64) (float64, bool) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}
	return math.Max(0, math.Min(100, value)), true
}
