package numberutils

import "strconv"

// ToFloat64 converts a string to float64, reporting whether the conversion
// succeeded.
func ToFloat64(value string) (float64, bool) {
	if value == "" {
		return 0, false
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, false
	}
	return parsed, true
}

// ToFloat64WithDefault converts a string to float64, returning defaultValue
// when the string is empty or not a valid number.
func ToFloat64WithDefault(value string, defaultValue float64) float64 {
	if parsed, ok := ToFloat64(value); ok {
		return parsed
	}
	return defaultValue
}
