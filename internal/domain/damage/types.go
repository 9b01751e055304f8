package damage

import (
	"sort"
	"strings"
)

// Type is a damage, healing, or temporary hit point category key
type Type string

const (
	TypeAcid        Type = "acid"
	TypeBludgeoning Type = "bludgeoning"
	TypeCold        Type = "cold"
	TypeFire        Type = "fire"
	TypeForce       Type = "force"
	TypeLightning   Type = "lightning"
	TypeNecrotic    Type = "necrotic"
	TypePiercing    Type = "piercing"
	TypePoison      Type = "poison"
	TypePsychic     Type = "psychic"
	TypeRadiant     Type = "radiant"
	TypeSlashing    Type = "slashing"
	TypeThunder     Type = "thunder"

	TypeHealing Type = "healing"
	TypeTempHP  Type = "temphp"

	// TypeUnknown collects values whose type could not be determined at all,
	// which only happens when a roll declares no typed parts.
	TypeUnknown Type = "unknown"
)

// Bypass property keys carried by weapons and ammunition
const (
	PropertyAdamantine = "ada"
	PropertyMagical    = "mgc"
	PropertySilvered   = "sil"
)

// TypeInfo describes one entry of the type vocabulary
type TypeInfo struct {
	Key      Type
	Label    string
	Physical bool
	Healing  bool
	Color    string // hex without '#', used for scrolling numbers
}

// PropertyInfo describes a bypass property
type PropertyInfo struct {
	Key      string
	Label    string
	Physical bool
}

// Vocabulary is the fixed set of known types and bypass properties
type Vocabulary struct {
	order      []Type
	types      map[Type]TypeInfo
	properties map[string]PropertyInfo
}

// NewVocabulary builds a vocabulary from type and property entries.
// Type order is kept as given and drives flavor matching order.
func NewVocabulary(types []TypeInfo, properties []PropertyInfo) *Vocabulary {
	v := &Vocabulary{
		order:      make([]Type, 0, len(types)),
		types:      make(map[Type]TypeInfo, len(types)),
		properties: make(map[string]PropertyInfo, len(properties)),
	}
	for _, t := range types {
		if _, exists := v.types[t.Key]; !exists {
			v.order = append(v.order, t.Key)
		}
		v.types[t.Key] = t
	}
	for _, p := range properties {
		v.properties[p.Key] = p
	}
	return v
}

// DefaultVocabulary returns the 5e damage and healing types
func DefaultVocabulary() *Vocabulary {
	return NewVocabulary([]TypeInfo{
		{Key: TypeAcid, Label: "Acid", Color: "839D50"},
		{Key: TypeBludgeoning, Label: "Bludgeoning", Physical: true, Color: "0000A0"},
		{Key: TypeCold, Label: "Cold", Color: "ADD8E6"},
		{Key: TypeFire, Label: "Fire", Color: "FF4500"},
		{Key: TypeForce, Label: "Force", Color: "800080"},
		{Key: TypeLightning, Label: "Lightning", Color: "1E90FF"},
		{Key: TypeNecrotic, Label: "Necrotic", Color: "006400"},
		{Key: TypePiercing, Label: "Piercing", Physical: true, Color: "C0C0C0"},
		{Key: TypePoison, Label: "Poison", Color: "8A2BE2"},
		{Key: TypePsychic, Label: "Psychic", Color: "FF1493"},
		{Key: TypeRadiant, Label: "Radiant", Color: "FFD700"},
		{Key: TypeSlashing, Label: "Slashing", Physical: true, Color: "8B0000"},
		{Key: TypeThunder, Label: "Thunder", Color: "708090"},
		{Key: TypeHealing, Label: "Healing", Healing: true},
		{Key: TypeTempHP, Label: "Temporary HP", Healing: true},
	}, []PropertyInfo{
		{Key: PropertyAdamantine, Label: "Adamantine", Physical: true},
		{Key: PropertyMagical, Label: "Magical", Physical: true},
		{Key: PropertySilvered, Label: "Silvered", Physical: true},
	})
}

// Lookup returns the vocabulary entry for a type
func (v *Vocabulary) Lookup(t Type) (TypeInfo, bool) {
	info, ok := v.types[t]
	return info, ok
}

// Known reports whether t is part of the vocabulary
func (v *Vocabulary) Known(t Type) bool {
	_, ok := v.types[t]
	return ok
}

// Label returns the display label, "Unknown" for anything outside the vocabulary
func (v *Vocabulary) Label(t Type) string {
	if info, ok := v.types[t]; ok {
		return info.Label
	}
	return "Unknown"
}

// IsPhysical reports whether bypass properties can affect traits for t
func (v *Vocabulary) IsPhysical(t Type) bool {
	return v.types[t].Physical
}

// Color returns the scrolling number color for t, empty when none is defined
func (v *Vocabulary) Color(t Type) string {
	return v.types[t].Color
}

// Types returns the vocabulary keys in declaration order
func (v *Vocabulary) Types() []Type {
	out := make([]Type, len(v.order))
	copy(out, v.order)
	return out
}

// MatchFlavor resolves free-text flavor to a type key. Precedence is exact
// key, then case-insensitive key, then exact display label.
func (v *Vocabulary) MatchFlavor(flavor string) (Type, bool) {
	if flavor == "" {
		return "", false
	}
	if _, ok := v.types[Type(flavor)]; ok {
		return Type(flavor), true
	}
	for _, key := range v.order {
		if strings.EqualFold(string(key), flavor) {
			return key, true
		}
	}
	for _, key := range v.order {
		if v.types[key].Label == flavor {
			return key, true
		}
	}
	return "", false
}

// Property returns the bypass property entry for a key
func (v *Vocabulary) Property(key string) (PropertyInfo, bool) {
	p, ok := v.properties[key]
	return p, ok
}

// PhysicalProperties filters a property set down to the tags that matter
// for physical bypasses
func (v *Vocabulary) PhysicalProperties(props PropertySet) PropertySet {
	out := NewPropertySet()
	for p := range props {
		if info, ok := v.Property(p); ok && info.Physical {
			out.Add(p)
		}
	}
	return out
}

// PropertyLabels returns the sorted display labels of the known properties in props
func (v *Vocabulary) PropertyLabels(props PropertySet) []string {
	labels := make([]string, 0, len(props))
	for _, p := range props.Slice() {
		if info, ok := v.Property(p); ok {
			labels = append(labels, info.Label)
		}
	}
	sort.Strings(labels)
	return labels
}
