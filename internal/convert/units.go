// Package convert implements unit, number base and text case conversions.
package convert

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrUnknownCategory      = errors.New("unknown category")
	ErrUnknownUnit          = errors.New("unknown unit")
	ErrUnsupportedOption    = errors.New("unsupported option")
	ErrInvalidNumberLiteral = errors.New("invalid number literal")
	ErrResultOutOfRange     = errors.New("result is out of range")
)

// Category is a measurement category.
type Category string

const (
	Length      Category = "length"
	Weight      Category = "weight"
	Area        Category = "area"
	Volume      Category = "volume"
	Data        Category = "data"
	Time        Category = "time"
	Temperature Category = "temperature"
)

// unitFactors maps each linear category to its unit scale factors relative
// to the category's base unit.
var unitFactors = map[Category]map[string]float64{
	Length: {
		"mm": 0.001, "cm": 0.01, "m": 1, "km": 1000,
		"in": 0.0254, "ft": 0.3048, "yd": 0.9144, "mi": 1609.344,
	},
	Weight: {
		"mg": 0.000001, "g": 0.001, "kg": 1, "t": 1000,
		"oz": 0.0283495, "lb": 0.453592,
	},
	Area: {
		"mm2": 0.000001, "cm2": 0.0001, "m2": 1, "km2": 1000000,
		"ha": 10000, "ac": 4046.86, "ft2": 0.092903,
	},
	Volume: {
		"ml": 0.001, "l": 1, "m3": 1000,
		"gal": 3.78541, "qt": 0.946353, "pt": 0.473176,
		"cup": 0.236588, "floz": 0.0295735,
	},
	Data: {
		"b": 0.125, "B": 1, "KB": 1024, "MB": 1048576,
		"GB": 1073741824, "TB": 1099511627776,
	},
	Time: {
		"ms": 0.001, "s": 1, "min": 60, "h": 3600,
		"d": 86400, "wk": 604800, "mo": 2629746, "yr": 31556952,
	},
}

// ParseCategory resolves a category name case-insensitively.
func ParseCategory(name string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(name)))
	if c == Temperature {
		return c, nil
	}
	if _, ok := unitFactors[c]; !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownCategory, name)
	}
	return c, nil
}

// Units returns the unit symbols of a linear category.
func Units(c Category) []string {
	factors := unitFactors[c]
	units := make([]string, 0, len(factors))
	for u := range factors {
		units = append(units, u)
	}
	return units
}

// UnitConverter converts values between units of one category.
type UnitConverter struct {
	// LenientTemperature treats unrecognised temperature units as Celsius
	// instead of failing with ErrUnknownUnit.
	LenientTemperature bool
}

// Conversion is the outcome of a unit conversion.
type Conversion struct {
	Result  float64
	Formula string
}

// Convert converts value from one unit to another within category.
func (uc UnitConverter) Convert(category string, value float64, from, to string) (Conversion, error) {
	c, err := ParseCategory(category)
	if err != nil {
		return Conversion{}, err
	}

	var result float64
	if c == Temperature {
		result, err = uc.convertTemperature(value, from, to)
	} else {
		result, err = convertLinear(unitFactors[c], value, from, to)
	}
	if err != nil {
		return Conversion{}, err
	}
	if math.IsInf(result, 0) || math.IsNaN(result) {
		return Conversion{}, fmt.Errorf("%w: %s %s to %s", ErrResultOutOfRange, strconv.FormatFloat(value, 'g', -1, 64), from, to)
	}

	return Conversion{
		Result:  result,
		Formula: fmt.Sprintf("%s %s = %.6f %s", strconv.FormatFloat(value, 'f', -1, 64), from, result, to),
	}, nil
}

func convertLinear(factors map[string]float64, value float64, from, to string) (float64, error) {
	fromFactor, ok := factors[from]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownUnit, from)
	}
	toFactor, ok := factors[to]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownUnit, to)
	}
	return value * fromFactor / toFactor, nil
}

type temperatureUnit int

const (
	celsius temperatureUnit = iota
	fahrenheit
	kelvin
)

func (uc UnitConverter) parseTemperatureUnit(unit string) (temperatureUnit, error) {
	switch strings.ToLower(strings.TrimSpace(unit)) {
	case "c", "celsius":
		return celsius, nil
	case "f", "fahrenheit":
		return fahrenheit, nil
	case "k", "kelvin":
		return kelvin, nil
	}
	if uc.LenientTemperature {
		return celsius, nil
	}
	return celsius, fmt.Errorf("%w: %s", ErrUnknownUnit, unit)
}

func (uc UnitConverter) convertTemperature(value float64, from, to string) (float64, error) {
	fromUnit, err := uc.parseTemperatureUnit(from)
	if err != nil {
		return 0, err
	}
	toUnit, err := uc.parseTemperatureUnit(to)
	if err != nil {
		return 0, err
	}

	c := value
	switch fromUnit {
	case fahrenheit:
		c = (value - 32) * 5 / 9
	case kelvin:
		c = value - 273.15
	}

	switch toUnit {
	case fahrenheit:
		return c*9/5 + 32, nil
	case kelvin:
		return c + 273.15, nil
	}
	return c, nil
}
