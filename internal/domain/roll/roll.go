package roll

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/dnd-damage-application/internal/dice"
	"github.com/KirkDiggler/dnd-damage-application/internal/domain/damage"
)

// Part is one declared (formula, type) pair of a damage source. An empty
// type marks a part whose terms are typed only by their flavor, such as
// bonus dice added after the fact.
type Part struct {
	Formula string      `json:"formula"`
	Type    damage.Type `json:"type,omitempty"`
}

// TaggedTerm is a roll term together with the type declared for it when the
// roll was built
type TaggedTerm struct {
	damage.Term
	Type damage.Type `json:"type,omitempty"`
}

// Roll is the persisted record of an evaluated damage roll
type Roll struct {
	Parts      []Part             `json:"parts"`
	Terms      []TaggedTerm       `json:"terms"`
	Total      int                `json:"total"`
	Properties damage.PropertySet `json:"properties"`
}

// Formula joins the part formulas the way they were rolled
func (r *Roll) Formula() string {
	formulas := make([]string, 0, len(r.Parts))
	for _, p := range r.Parts {
		formulas = append(formulas, p.Formula)
	}
	return strings.Join(formulas, " + ")
}

// Index derives the positional type index from the tagged terms
func (r *Roll) Index() damage.TypeIndex {
	index := damage.TypeIndex{}
	position := 0
	for _, t := range r.Terms {
		if !t.Atomic {
			continue
		}
		if t.Type != "" {
			index[position] = t.Type
		}
		position++
	}
	return index
}

// FlatTerms returns the terms without their tags
func (r *Roll) FlatTerms() []damage.Term {
	out := make([]damage.Term, len(r.Terms))
	for i, t := range r.Terms {
		out[i] = t.Term
	}
	return out
}

// Build rolls every part with roller and tags each atomic term with the
// type of the part it came from
func Build(roller dice.Roller, parts []Part, properties ...string) (*Roll, error) {
	if len(parts) == 0 {
		return nil, fmt.Errorf("a damage roll needs at least one part")
	}

	r := &Roll{
		Parts:      parts,
		Properties: damage.NewPropertySet(properties...),
	}

	for i, part := range parts {
		exprs, err := dice.Parse(part.Formula)
		if err != nil {
			return nil, fmt.Errorf("part %d: %w", i, err)
		}

		terms, total, err := dice.Evaluate(roller, exprs)
		if err != nil {
			return nil, fmt.Errorf("part %d: %w", i, err)
		}

		if i > 0 {
			r.Terms = append(r.Terms, TaggedTerm{Term: damage.Term{Operator: damage.OperatorPlus}})
		}
		for _, term := range terms {
			tagged := TaggedTerm{Term: term}
			if term.Atomic {
				tagged.Type = part.Type
			}
			r.Terms = append(r.Terms, tagged)
		}
		r.Total += total
	}

	return r, nil
}
