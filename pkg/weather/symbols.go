package weather

// DefaultSymbol is shown for weather codes missing from the table.
const DefaultSymbol = "☔"

// WMO weather interpretation codes.
var symbols = map[int]string{
	0:  "☀️",
	1:  "🌤️",
	2:  "⛅",
	3:  "☁️",
	45: "🌫️",
	48: "🌫️",
	51: "🌦️",
	53: "🌦️",
	55: "🌧️",
	61: "☔",
	80: "🌦️",
	95: "⛈️",
}

// Symbol maps a weather code to its display glyph.
func Symbol(code int) string {
	if s, ok := symbols[code]; ok {
		return s
	}
	return DefaultSymbol
}
