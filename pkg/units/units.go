// Package units converts linear size values between inch and centimeter
// representations for display.
package units

import (
	"fmt"
	"math"
)

const cmPerInch = 2.54

// InchToCm converts inches to centimeters, rounded to 2 decimal places.
// Pure and total; NaN input propagates as NaN.
func InchToCm(value float64) float64 {
	return round2(value * cmPerInch)
}

// CmToInch converts centimeters to inches, rounded to 2 decimal places.
func CmToInch(value float64) float64 {
	return round2(value / cmPerInch)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// DisplayInch formats an inch size with its centimeter equivalent,
// e.g. DisplayInch(28) == "28 in (71.12 cm)".
func DisplayInch(value float64) string {
	return fmt.Sprintf("%s in (%s cm)", trimZeros(value), trimZeros(InchToCm(value)))
}

// DisplayCm formats a centimeter size with its inch equivalent.
func DisplayCm(value float64) string {
	return fmt.Sprintf("%s cm (%s in)", trimZeros(value), trimZeros(CmToInch(value)))
}

// trimZeros renders a value with up to 2 decimals, dropping trailing zeros
// so whole sizes read "28" rather than "28.00".
func trimZeros(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	for len(s) > 0 && s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	if len(s) > 0 && s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	return s
}
