package dice

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/dnd-damage-application/internal/domain/damage"
)

// Expression is one parsed piece of a formula: an operator, a dice group,
// or a flat number
type Expression struct {
	Operator damage.Operator
	Count    int
	Sides    int
	Constant int
	Flavor   string
}

// IsOperator reports whether the expression is a bare operator
func (e Expression) IsOperator() bool {
	return e.Operator != damage.OperatorNone
}

// IsDice reports whether the expression is a dice group
func (e Expression) IsDice() bool {
	return e.Sides > 0
}

// Parse splits a formula like "2d6 + 3 - 1d4[fire]" into expressions.
// Bracketed text after a number or dice group is its flavor.
func Parse(formula string) ([]Expression, error) {
	var out []Expression
	var token strings.Builder
	depth := 0

	flush := func() error {
		raw := strings.TrimSpace(token.String())
		token.Reset()
		if raw == "" {
			return nil
		}
		expr, err := parseToken(raw)
		if err != nil {
			return err
		}
		out = append(out, expr)
		return nil
	}

	for _, r := range formula {
		switch {
		case r == '[':
			depth++
			token.WriteRune(r)
		case r == ']':
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("invalid formula %q: unbalanced flavor brackets", formula)
			}
			token.WriteRune(r)
		case (r == '+' || r == '-') && depth == 0:
			if err := flush(); err != nil {
				return nil, err
			}
			out = append(out, Expression{Operator: damage.Operator(string(r))})
		default:
			token.WriteRune(r)
		}
	}
	if depth != 0 {
		return nil, fmt.Errorf("invalid formula %q: unbalanced flavor brackets", formula)
	}
	if err := flush(); err != nil {
		return nil, err
	}

	return out, nil
}

func parseToken(raw string) (Expression, error) {
	expr := Expression{}
	if i := strings.Index(raw, "["); i >= 0 {
		if !strings.HasSuffix(raw, "]") {
			return expr, fmt.Errorf("invalid term %q: flavor must close the term", raw)
		}
		expr.Flavor = strings.TrimSpace(raw[i+1 : len(raw)-1])
		raw = strings.TrimSpace(raw[:i])
	}

	lower := strings.ToLower(raw)
	if d := strings.Index(lower, "d"); d >= 0 {
		count := 1
		if d > 0 {
			n, err := strconv.Atoi(strings.TrimSpace(lower[:d]))
			if err != nil {
				return expr, fmt.Errorf("invalid dice count in %q", raw)
			}
			count = n
		}
		sides, err := strconv.Atoi(strings.TrimSpace(lower[d+1:]))
		if err != nil || sides < 1 {
			return expr, fmt.Errorf("invalid dice size in %q", raw)
		}
		if count < 1 {
			return expr, fmt.Errorf("invalid dice count in %q", raw)
		}
		expr.Count = count
		expr.Sides = sides
		return expr, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return expr, fmt.Errorf("invalid term %q", raw)
	}
	expr.Constant = n
	return expr, nil
}

// Evaluate rolls every dice group of the expressions and returns the flat
// term list along with the signed total
func Evaluate(roller Roller, exprs []Expression) ([]damage.Term, int, error) {
	terms := make([]damage.Term, 0, len(exprs))
	total := 0
	sign := 1
	for _, e := range exprs {
		if e.IsOperator() {
			terms = append(terms, damage.Term{Operator: e.Operator})
			sign = 1
			if e.Operator == damage.OperatorMinus {
				sign = -1
			}
			continue
		}

		value := e.Constant
		if e.IsDice() {
			result, err := roller.Roll(e.Count, e.Sides, 0)
			if err != nil {
				return nil, 0, err
			}
			value = result.Total
		}

		terms = append(terms, damage.Term{Value: value, Flavor: e.Flavor, Atomic: true})
		total += sign * value
		sign = 1
	}
	return terms, total, nil
}
