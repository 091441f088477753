package ui

// Layout sizing
const (
	LogoSize    float32 = 96
	ProgressMax float64 = 100
)

// Icons
const (
	IconLink = "🔗"
)

// URL schemes accepted by the URL entry hint
var AllowedURLSchemes = []string{"http", "https"}
