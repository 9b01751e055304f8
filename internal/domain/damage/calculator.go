package damage

import (
	"math"
	"sort"
)

// Adjustment is the trait-adjusted result for one type
type Adjustment struct {
	Type     Type
	Base     int
	Adjusted float64
	Applied  []TraitKind // traits that changed the value
	Bypassed []TraitKind // traits that matched but were bypassed
}

// Input is everything the calculator reads for a single target
type Input struct {
	Values    Values
	Traits    Traits
	Bypasses  PropertySet // the attack's properties
	Overrides Overrides
}

// Calculator applies target traits to resolved values
type Calculator struct {
	vocab *Vocabulary
}

// NewCalculator creates a calculator using vocab for physical flags
func NewCalculator(vocab *Vocabulary) *Calculator {
	if vocab == nil {
		vocab = DefaultVocabulary()
	}
	return &Calculator{vocab: vocab}
}

// Bypassed reports whether the attack's properties bypass trait for typ.
// Only physical types can be bypassed, and only by physical properties
// present on both sides.
func (c *Calculator) Bypassed(trait Trait, typ Type, attack PropertySet) bool {
	if !c.vocab.IsPhysical(typ) {
		return false
	}
	relevant := c.vocab.PhysicalProperties(trait.Bypasses)
	return relevant.Intersects(c.vocab.PhysicalProperties(attack))
}

// Applies reports whether the trait of kind changes typ for this target
func (c *Calculator) Applies(kind TraitKind, in *Input, typ Type) bool {
	if active, ok := in.Overrides.Lookup(kind, typ); ok {
		return active
	}
	trait := in.Traits.Get(kind)
	if !trait.Covers(typ) {
		return false
	}
	return !c.Bypassed(trait, typ, in.Bypasses)
}

// Adjust returns the per-type adjusted values, sorted by type
func (c *Calculator) Adjust(in *Input) []Adjustment {
	types := in.Values.Types()
	out := make([]Adjustment, 0, len(types))
	for _, typ := range types {
		base := in.Values[typ]
		adj := Adjustment{Type: typ, Base: base, Adjusted: float64(base)}
		for _, kind := range TraitKinds {
			if c.Applies(kind, in, typ) {
				adj.Adjusted *= kind.Factor()
				adj.Applied = append(adj.Applied, kind)
				continue
			}
			if in.Traits.Get(kind).Covers(typ) {
				adj.Bypassed = append(adj.Bypassed, kind)
			}
		}
		out = append(out, adj)
	}
	return out
}

// AdjustedValues returns the per-type variant as a map
func (c *Calculator) AdjustedValues(in *Input) map[Type]float64 {
	out := make(map[Type]float64, len(in.Values))
	for _, adj := range c.Adjust(in) {
		out[adj.Type] = adj.Adjusted
	}
	return out
}

// Total sums the adjusted values and floors once. The result is never negative.
func (c *Calculator) Total(in *Input) int {
	return Sum(c.Adjust(in))
}

// Sum floors the summed adjustments once and clamps at zero
func Sum(adjustments []Adjustment) int {
	sum := 0.0
	for _, adj := range adjustments {
		sum += adj.Adjusted
	}
	total := int(math.Floor(sum))
	if total < 0 {
		return 0
	}
	return total
}

// Result is a computed application for one target
type Result struct {
	Amount      int
	Multiplier  float64
	Delta       int // hit point loss; negative restores hit points
	Adjustments []Adjustment
}

// Compute runs the full pipeline: adjust, sum, then apply the save and undo
// multiplier.
func (c *Calculator) Compute(in *Input, mode Mode) *Result {
	adjustments := c.Adjust(in)
	amount := Sum(adjustments)
	mult := mode.Multiplier()
	return &Result{
		Amount:      amount,
		Multiplier:  mult,
		Delta:       Delta(amount, mult),
		Adjustments: adjustments,
	}
}

// Damages returns the per-type breakdown of a result with the multiplier
// applied, for effects that display typed numbers. Entries are sorted by
// descending value.
func (r *Result) Damages() []TypedValue {
	out := make([]TypedValue, 0, len(r.Adjustments))
	for _, adj := range r.Adjustments {
		v := adj.Adjusted * r.Multiplier
		if v == 0 {
			continue
		}
		out = append(out, TypedValue{Type: adj.Type, Value: v})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Value > out[j].Value })
	return out
}

// TypedValue is a single typed amount
type TypedValue struct {
	Type  Type    `json:"type"`
	Value float64 `json:"value"`
}
