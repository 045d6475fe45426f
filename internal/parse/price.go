package parse

import (
	"strconv"
	"strings"
)

// Price converts a FootyWire price cell like "$731,200" or "+$85,300"
// to a number. Blank cells and the "?" placeholder return nil, as does
// anything that fails to parse.
func Price(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" || s == "?" {
		return nil
	}

	negative := strings.HasPrefix(s, "-")
	cleaned := strings.NewReplacer("$", "", ",", "", "+", "", "-", "").Replace(s)
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil
	}
	if negative {
		value = -value
	}
	return &value
}

// Percent converts a percentage cell like "6%" or "-63%" to a number,
// with the same nil semantics as Price.
func Percent(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" || s == "?" {
		return nil
	}

	value, err := strconv.ParseFloat(strings.ReplaceAll(s, "%", ""), 64)
	if err != nil {
		return nil
	}
	return &value
}
