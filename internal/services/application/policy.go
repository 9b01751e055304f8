package application

import (
	"strings"

	dnderr "github.com/KirkDiggler/dnd-damage-application/internal/errors"
)

// CantripPolicy decides what a successful save does against a cantrip
type CantripPolicy string

const (
	// CantripHalf halves cantrip damage on a successful save like any other source
	CantripHalf CantripPolicy = "half"

	// CantripNegate skips cantrip damage entirely on a successful save
	CantripNegate CantripPolicy = "negate"
)

// ParseCantripPolicy parses a policy name; empty means CantripHalf
func ParseCantripPolicy(s string) (CantripPolicy, error) {
	switch CantripPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", CantripHalf:
		return CantripHalf, nil
	case CantripNegate:
		return CantripNegate, nil
	default:
		return "", dnderr.InvalidArgumentf("unknown cantrip save policy %q", s).
			WithMeta("policy", s)
	}
}

// negates reports whether a successful save cancels the damage entirely
func (p CantripPolicy) negates(isCantrip, saved bool) bool {
	return p == CantripNegate && isCantrip && saved
}
