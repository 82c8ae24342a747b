package model

import (
	"errors"
	"strconv"

	"github.com/trendybazarr/trendybazarr-backend/pkg/units"
)

type SizeUnit string

const (
	SizeUnitInch   SizeUnit = "inch"
	SizeUnitCm     SizeUnit = "cm"
	SizeUnitLetter SizeUnit = "letter"
)

type LetterSize string

const (
	LetterXS   LetterSize = "XS"
	LetterS    LetterSize = "S"
	LetterM    LetterSize = "M"
	LetterL    LetterSize = "L"
	LetterXL   LetterSize = "XL"
	LetterXXL  LetterSize = "XXL"
	LetterXXXL LetterSize = "XXXL"
)

// LetterSizes is the ordinal set of clothing sizes, smallest first.
func LetterSizes() []LetterSize {
	return []LetterSize{LetterXS, LetterS, LetterM, LetterL, LetterXL, LetterXXL, LetterXXXL}
}

func IsValidLetterSize(s LetterSize) bool {
	for _, known := range LetterSizes() {
		if s == known {
			return true
		}
	}
	return false
}

var (
	ErrInvalidSizeUnit   = errors.New("invalid size unit")
	ErrEmptySizeValues   = errors.New("size values must not be empty")
	ErrInvalidSizeValue  = errors.New("invalid size value for unit")
	ErrInvalidLetterSize = errors.New("invalid letter size")
)

// Size is a tagged union decided at construction: a numeric variant
// (inch or cm, numeric labels) or a letter variant (XS..XXXL). The unit
// never changes after construction; switching units means building a
// new Size.
type Size struct {
	Unit   SizeUnit `json:"unit"`
	Values []string `json:"values"`
}

// NewNumericSize builds an inch or cm size from numeric values.
func NewNumericSize(unit SizeUnit, values []float64) (Size, error) {
	if unit != SizeUnitInch && unit != SizeUnitCm {
		return Size{}, ErrInvalidSizeUnit
	}
	if len(values) == 0 {
		return Size{}, ErrEmptySizeValues
	}

	labels := make([]string, 0, len(values))
	for _, v := range values {
		if v <= 0 {
			return Size{}, ErrInvalidSizeValue
		}
		labels = append(labels, strconv.FormatFloat(v, 'f', -1, 64))
	}
	return Size{Unit: unit, Values: labels}, nil
}

// NewLetterSize builds a clothing size from the fixed ordinal set.
func NewLetterSize(values []LetterSize) (Size, error) {
	if len(values) == 0 {
		return Size{}, ErrEmptySizeValues
	}

	labels := make([]string, 0, len(values))
	for _, v := range values {
		if !IsValidLetterSize(v) {
			return Size{}, ErrInvalidLetterSize
		}
		labels = append(labels, string(v))
	}
	return Size{Unit: SizeUnitLetter, Values: labels}, nil
}

// Validate checks a size that arrived over the wire rather than through
// a constructor.
func (s Size) Validate() error {
	switch s.Unit {
	case SizeUnitInch, SizeUnitCm:
		if len(s.Values) == 0 {
			return ErrEmptySizeValues
		}
		for _, label := range s.Values {
			v, err := strconv.ParseFloat(label, 64)
			if err != nil || v <= 0 {
				return ErrInvalidSizeValue
			}
		}
		return nil
	case SizeUnitLetter:
		if len(s.Values) == 0 {
			return ErrEmptySizeValues
		}
		for _, label := range s.Values {
			if !IsValidLetterSize(LetterSize(label)) {
				return ErrInvalidLetterSize
			}
		}
		return nil
	default:
		return ErrInvalidSizeUnit
	}
}

// Contains reports whether label is one of the size's values.
func (s Size) Contains(label string) bool {
	for _, v := range s.Values {
		if v == label {
			return true
		}
	}
	return false
}

// DisplayValues renders the size labels for presentation: numeric sizes
// carry their converted equivalent ("28 in (71.12 cm)"), letter sizes
// are shown as-is.
func (s Size) DisplayValues() []string {
	out := make([]string, 0, len(s.Values))
	for _, label := range s.Values {
		switch s.Unit {
		case SizeUnitInch:
			if v, err := strconv.ParseFloat(label, 64); err == nil {
				out = append(out, units.DisplayInch(v))
				continue
			}
			out = append(out, label)
		case SizeUnitCm:
			if v, err := strconv.ParseFloat(label, 64); err == nil {
				out = append(out, units.DisplayCm(v))
				continue
			}
			out = append(out, label)
		default:
			out = append(out, label)
		}
	}
	return out
}
