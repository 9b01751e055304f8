package damage

// Operator is the sign preceding a roll term
type Operator string

const (
	OperatorNone  Operator = ""
	OperatorPlus  Operator = "+"
	OperatorMinus Operator = "-"
)

// Term is the read-only view of one element of an evaluated roll.
// Atomic terms carry a standalone magnitude (dice, flat numbers); the
// rest are operators or grouping constructs.
type Term struct {
	Value    int      `json:"value"`
	Flavor   string   `json:"flavor,omitempty"`
	Operator Operator `json:"operator,omitempty"`
	Atomic   bool     `json:"atomic"`
}

// TypeIndex maps the position of an atomic term to its declared type
type TypeIndex map[int]Type

// Default returns the type of the first declared part, or TypeUnknown when
// nothing was declared
func (ix TypeIndex) Default() Type {
	if t, ok := ix[0]; ok && t != "" {
		return t
	}
	return TypeUnknown
}

// Resolver turns the flat term list of a roll back into per-type subtotals
type Resolver struct {
	vocab *Vocabulary
}

// NewResolver creates a resolver matching flavor text against vocab
func NewResolver(vocab *Vocabulary) *Resolver {
	if vocab == nil {
		vocab = DefaultVocabulary()
	}
	return &Resolver{vocab: vocab}
}

// Resolve attributes each atomic term to a type and reconciles the result
// against declaredTotal. The returned values always sum to declaredTotal;
// zero buckets are pruned.
func (r *Resolver) Resolve(terms []Term, index TypeIndex, declaredTotal int) Values {
	fallback := index.Default()
	current := fallback
	values := Values{}

	pending := OperatorNone
	position := 0
	for _, term := range terms {
		if !term.Atomic {
			if term.Operator != OperatorNone {
				pending = term.Operator
			}
			continue
		}

		op := term.Operator
		if op == OperatorNone {
			op = pending
		}
		pending = OperatorNone

		typ, matched := r.typeFor(term, index, position, current, fallback)
		if matched {
			current = typ
		}

		if op == OperatorMinus {
			values[typ] -= term.Value
		} else {
			values[typ] += term.Value
		}
		position++
	}

	// Compound expressions that were never decomposed into atomic terms
	// leave drift between the walked sum and the roll total.
	if drift := declaredTotal - values.Total(); drift != 0 {
		values[fallback] += drift
	}

	return values.Pruned()
}

// typeFor reports the type for the term at position and whether it was an
// explicit match that should become the inherited type for later terms.
func (r *Resolver) typeFor(term Term, index TypeIndex, position int, current, fallback Type) (Type, bool) {
	if t, ok := index[position]; ok && t != "" {
		return t, true
	}
	if term.Flavor == "" {
		return current, false
	}
	if t, ok := r.vocab.MatchFlavor(term.Flavor); ok {
		return t, true
	}
	return fallback, false
}
