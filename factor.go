package locale

import "fmt"

// LevelOrder selects how factor levels are ordered. The zero value is
// invalid; the caller always chooses.
type LevelOrder int

const (
	// AppearanceOrder keeps levels in first occurrence order.
	AppearanceOrder LevelOrder = iota + 1
	// CollationOrder sorts levels under the Context locale, which makes the
	// result independent of the input permutation.
	CollationOrder
)

// Levels returns the distinct values of values in the requested order.
// Distinctness is exact code point equality; the first occurrence survives.
// The Context locale must resolve for either order so both fail the same
// way on a bad Context.
func (e *Engine) Levels(ctx Context, values []string, order LevelOrder) (FactorLevels, error) {
	if order != AppearanceOrder && order != CollationOrder {
		return nil, fmt.Errorf("locale: level order must be AppearanceOrder or CollationOrder, got %d", order)
	}
	ent, err := e.entry(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(values))
	levels := make(FactorLevels, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		levels = append(levels, v)
	}

	if order == CollationOrder {
		c := &Collator{impl: ent.coll, strength: IdentityStrength}
		c.Sort(levels)
	}
	return levels, nil
}

// Index returns the position of value in the levels, or -1.
func (f FactorLevels) Index(value string) int {
	for i, level := range f {
		if level == value {
			return i
		}
	}
	return -1
}
