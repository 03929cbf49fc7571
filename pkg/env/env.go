// Package env keeps names of environment variables with special significance to
// amath.
package env

// Environment variables with special significance to amath.
const (
	AMATH_RC        = "AMATH_RC"
	AMATH_DB        = "AMATH_DB"
	HOME            = "HOME"
	NO_COLOR        = "NO_COLOR"
	XDG_CONFIG_HOME = "XDG_CONFIG_HOME"
	XDG_DATA_HOME   = "XDG_DATA_HOME"
)
