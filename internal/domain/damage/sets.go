package damage

import (
	"encoding/json"
	"sort"
)

// PropertySet is a set of bypass property tags
type PropertySet map[string]struct{}

// NewPropertySet creates a set holding the given tags
func NewPropertySet(tags ...string) PropertySet {
	s := make(PropertySet, len(tags))
	for _, t := range tags {
		s.Add(t)
	}
	return s
}

func (s PropertySet) Add(tag string) {
	s[tag] = struct{}{}
}

func (s PropertySet) Has(tag string) bool {
	_, ok := s[tag]
	return ok
}

// Intersects reports whether the two sets share at least one tag
func (s PropertySet) Intersects(other PropertySet) bool {
	for t := range s {
		if other.Has(t) {
			return true
		}
	}
	return false
}

// Slice returns the tags sorted
func (s PropertySet) Slice() []string {
	out := make([]string, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

func (s PropertySet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Slice())
}

func (s *PropertySet) UnmarshalJSON(data []byte) error {
	var tags []string
	if err := json.Unmarshal(data, &tags); err != nil {
		return err
	}
	*s = NewPropertySet(tags...)
	return nil
}

// TypeSet is a set of damage types
type TypeSet map[Type]struct{}

// NewTypeSet creates a set holding the given types
func NewTypeSet(types ...Type) TypeSet {
	s := make(TypeSet, len(types))
	for _, t := range types {
		s[t] = struct{}{}
	}
	return s
}

func (s TypeSet) Has(t Type) bool {
	_, ok := s[t]
	return ok
}

// Slice returns the types sorted
func (s TypeSet) Slice() []Type {
	out := make([]Type, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (s TypeSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Slice())
}

func (s *TypeSet) UnmarshalJSON(data []byte) error {
	var types []Type
	if err := json.Unmarshal(data, &types); err != nil {
		return err
	}
	*s = NewTypeSet(types...)
	return nil
}
