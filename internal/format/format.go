// Package format converts raw PokeAPI measurements and type lists into display strings.
package format

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// ErrNoTypes is returned when a type list is empty.
	ErrNoTypes = errors.New("format: no types")
	// ErrNegativeMeasure is returned for negative heights or weights.
	ErrNegativeMeasure = errors.New("format: negative measurement")
)

const maxTypes = 2

// TypeNames joins up to two type names with ", ".
func TypeNames(types []string) (string, error) {
	if len(types) == 0 {
		return "", ErrNoTypes
	}
	if len(types) > maxTypes {
		types = types[:maxTypes]
	}
	return strings.Join(types, ", "), nil
}

// ConvertHeight renders decimetres as feet and two-digit inches, e.g. 7 -> 2' 03".
//
// Feet are kept to hundredths (truncated), then the fraction becomes
// round(frac*12) inches. 12 inches carries into the next foot.
func ConvertHeight(decimetres int) (string, error) {
	if decimetres < 0 {
		return "", ErrNegativeMeasure
	}
	// dm / 10 * 3.28 * 100, truncated. Rounding would turn 7 (2.296 ft) into 2' 04" instead of 2' 03".
	hundredths := decimetres * 328 / 10
	feet := hundredths / 100
	frac := hundredths % 100
	inches := (frac*12*2 + 100) / 200
	if inches == 12 {
		feet++
		inches = 0
	}
	return fmt.Sprintf("%d' %02d\"", feet, inches), nil
}

// ConvertWeight renders hectograms as pounds to one decimal, dropping ".0".
func ConvertWeight(hectograms int) (string, error) {
	if hectograms < 0 {
		return "", ErrNegativeMeasure
	}
	// hg / 10 * 2.2 * 10, rounded half up
	tenths := (hectograms*22 + 5) / 10
	if tenths%10 == 0 {
		return fmt.Sprintf("%d", tenths/10), nil
	}
	return fmt.Sprintf("%d.%d", tenths/10, tenths%10), nil
}

// Capitalize upper-cases the first letter of a name or type.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
