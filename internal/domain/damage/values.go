package damage

import "sort"

// Values maps a type to its integer subtotal
type Values map[Type]int

// Total sums every bucket
func (v Values) Total() int {
	total := 0
	for _, n := range v {
		total += n
	}
	return total
}

// Clone returns an independent copy
func (v Values) Clone() Values {
	out := make(Values, len(v))
	for k, n := range v {
		out[k] = n
	}
	return out
}

// Pruned returns a copy without zero buckets
func (v Values) Pruned() Values {
	out := make(Values, len(v))
	for k, n := range v {
		if n != 0 {
			out[k] = n
		}
	}
	return out
}

// Has reports whether t has a non-zero bucket
func (v Values) Has(t Type) bool {
	return v[t] != 0
}

// Types returns the keys sorted
func (v Values) Types() []Type {
	out := make([]Type, 0, len(v))
	for k := range v {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Merge adds other into v
func (v Values) Merge(other Values) {
	for k, n := range other {
		v[k] += n
	}
}
