package damage

import "strings"

// TraitKind names one of the three damage trait buckets
type TraitKind string

const (
	Resistance    TraitKind = "dr"
	Immunity      TraitKind = "di"
	Vulnerability TraitKind = "dv"
)

// TraitKinds is the evaluation order of the trait buckets
var TraitKinds = []TraitKind{Resistance, Immunity, Vulnerability}

// Factor returns the multiplier a matched, non-bypassed trait applies
func (k TraitKind) Factor() float64 {
	switch k {
	case Resistance:
		return 0.5
	case Immunity:
		return 0
	case Vulnerability:
		return 2
	default:
		return 1
	}
}

// String returns the display name of the trait kind
func (k TraitKind) String() string {
	switch k {
	case Resistance:
		return "Resistance"
	case Immunity:
		return "Immunity"
	case Vulnerability:
		return "Vulnerability"
	default:
		return string(k)
	}
}

// Trait is a target's declaration for one trait kind
type Trait struct {
	Types    TypeSet     `json:"value"`
	Bypasses PropertySet `json:"bypasses"`
	Custom   string      `json:"custom,omitempty"`
}

// CustomTypes splits the semicolon-delimited free-text list
func (t Trait) CustomTypes() []string {
	if strings.TrimSpace(t.Custom) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(t.Custom, ";") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Covers reports whether the declaration names typ, either explicitly or in
// the custom list
func (t Trait) Covers(typ Type) bool {
	if t.Types.Has(typ) {
		return true
	}
	for _, custom := range t.CustomTypes() {
		if strings.EqualFold(custom, string(typ)) {
			return true
		}
	}
	return false
}

// Traits holds all three declarations of a target
type Traits struct {
	Resistance    Trait `json:"dr"`
	Immunity      Trait `json:"di"`
	Vulnerability Trait `json:"dv"`
}

// Get returns the declaration for a kind
func (t Traits) Get(kind TraitKind) Trait {
	switch kind {
	case Resistance:
		return t.Resistance
	case Immunity:
		return t.Immunity
	case Vulnerability:
		return t.Vulnerability
	default:
		return Trait{}
	}
}

// Overrides are per-session toggles of individual trait rows. A present
// entry decides whether that trait applies, replacing bypass evaluation.
type Overrides map[TraitKind]map[Type]bool

// Lookup returns the override for a trait row, if any
func (o Overrides) Lookup(kind TraitKind, typ Type) (active, ok bool) {
	if o == nil {
		return false, false
	}
	active, ok = o[kind][typ]
	return active, ok
}

// Set records an override
func (o Overrides) Set(kind TraitKind, typ Type, active bool) {
	if o[kind] == nil {
		o[kind] = make(map[Type]bool)
	}
	o[kind][typ] = active
}

// Clear drops an override so the computed eligibility applies again
func (o Overrides) Clear(kind TraitKind, typ Type) {
	delete(o[kind], typ)
}
