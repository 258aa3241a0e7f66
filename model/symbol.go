package model

import (
	"fmt"
	"regexp"
)

// symbolPattern is the LV2 symbol grammar: a C-identifier-style string.
var symbolPattern = regexp.MustCompile(`^[_A-Za-z][_A-Za-z0-9]*$`)

// Symbol is a machine- and human-readable identifier for a plugin or port.
// The zero value is the absent symbol.
type Symbol string

// ParseSymbol validates and returns an LV2 symbol.
func ParseSymbol(s string) (Symbol, error) {
	if !symbolPattern.MatchString(s) {
		return "", fmt.Errorf("invalid symbol %q: must match %s", s, symbolPattern)
	}
	return Symbol(s), nil
}

// Valid reports whether the symbol is non-empty and well-formed.
func (s Symbol) Valid() bool {
	return symbolPattern.MatchString(string(s))
}

func (s Symbol) String() string { return string(s) }
