package locale

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Strength selects how many weight tiers participate in a comparison.
type Strength int

const (
	// PrimaryStrength compares base letters only: accent and case
	// differences vanish.
	PrimaryStrength Strength = iota + 1
	// SecondaryStrength adds accent distinctions.
	SecondaryStrength
	// TertiaryStrength adds case distinctions.
	TertiaryStrength
	// IdentityStrength adds a final code point tiebreak so that no two
	// distinct strings compare equal. The default.
	IdentityStrength
)

// Weight bounds shared by derived and tailored elements. Primaries stay at
// or above minPrimary so the first byte of every encoded weight is non zero
// and the tier terminator sorts before any continuation. Secondaries and
// tertiaries are single key bytes.
const (
	minPrimary   = 0x100
	maxPrimary   = 0x7FFFFF
	maxSecondary = 0xFF
	maxTertiary  = 0xFF

	defaultSecondary = 0x20
	tertiaryLower    = 0x02
	tertiaryExpand   = 0x04
	tertiaryUpper    = 0x08
)

// primaryFor derives the primary weight of a base rune. Case is erased here
// and reintroduced at the tertiary tier; the <<2 shift leaves three tailoring
// slots between consecutive base letters.
func primaryFor(r rune) uint32 {
	return (uint32(unicode.ToLower(r)) + 0x40) << 2
}

// letterAfter returns the primary weight in the tailoring gap following
// base. Slots run 1 to 3.
func letterAfter(base rune, slot uint32) uint32 {
	return primaryFor(base) + slot
}

// markSecondary spreads combining marks across the secondary tier above the
// default weight. Distant marks may share a slot; the identity tier keeps
// the order total.
func markSecondary(r rune) uint16 {
	return defaultSecondary + uint16(r&0x7F) + 1
}

// collator is the compiled form of one locale's CollationTable.
type collator struct {
	bytewise   bool
	tailorings map[string][]CollationElem
	maxSource  int
}

func newCollator(data *LocaleData) *collator {
	c := &collator{bytewise: data.Collation.Bytewise}
	if n := len(data.Collation.Tailorings); n > 0 {
		c.tailorings = make(map[string][]CollationElem, n)
		for _, t := range data.Collation.Tailorings {
			elems := make([]CollationElem, len(t.Elems))
			copy(elems, t.Elems)
			c.tailorings[t.Source] = elems
			if len(t.Source) > c.maxSource {
				c.maxSource = len(t.Source)
			}
		}
	}
	return c
}

// elements produces the collation elements for s, which must already be in
// NFC form. Tailorings match longest source first; everything else derives
// from the NFD decomposition.
func (c *collator) elements(s string) []CollationElem {
	elems := make([]CollationElem, 0, len(s))
	for i := 0; i < len(s); {
		if n, tailored := c.matchTailoring(s[i:]); n > 0 {
			elems = append(elems, tailored...)
			i += n
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		elems = appendDerived(elems, r)
		i += size
	}
	return elems
}

func (c *collator) matchTailoring(s string) (int, []CollationElem) {
	if len(c.tailorings) == 0 {
		return 0, nil
	}
	limit := c.maxSource
	if limit > len(s) {
		limit = len(s)
	}
	for n := limit; n > 0; n-- {
		if elems, ok := c.tailorings[s[:n]]; ok {
			return n, elems
		}
	}
	return 0, nil
}

func appendDerived(elems []CollationElem, r rune) []CollationElem {
	for _, dr := range norm.NFD.String(string(r)) {
		if unicode.Is(unicode.Mn, dr) {
			elems = append(elems, CollationElem{Secondary: markSecondary(dr)})
			continue
		}
		elem := CollationElem{
			Primary:   primaryFor(dr),
			Secondary: defaultSecondary,
			Tertiary:  tertiaryLower,
		}
		if unicode.IsUpper(dr) || unicode.IsTitle(dr) {
			elem.Tertiary = tertiaryUpper
		}
		elems = append(elems, elem)
	}
	return elems
}

// appendPrimary encodes a primary weight in two bytes, or three with a high
// bit marker for weights past 0x7FFF. The first byte is never zero because
// weights never fall below minPrimary.
func appendPrimary(key []byte, p uint32) []byte {
	if p <= 0x7FFF {
		return append(key, byte(p>>8), byte(p))
	}
	return append(key, 0x80|byte(p>>16), byte(p>>8), byte(p))
}

// key builds the sort key: primaries, then per strength tier a 0x00
// terminator and the tier's weights, ending with the raw bytes of the
// original string as the identity tier.
func (c *collator) key(s string, strength Strength) SortKey {
	if c.bytewise {
		return SortKey(append([]byte(nil), s...))
	}

	elems := c.elements(norm.NFC.String(s))
	key := make([]byte, 0, len(s)*3+8)

	for _, e := range elems {
		if e.Primary != 0 {
			key = appendPrimary(key, e.Primary)
		}
	}
	if strength >= SecondaryStrength {
		key = append(key, 0x00)
		for _, e := range elems {
			if e.Secondary != 0 {
				key = append(key, byte(e.Secondary))
			}
		}
	}
	if strength >= TertiaryStrength {
		key = append(key, 0x00)
		for _, e := range elems {
			if e.Tertiary != 0 {
				key = append(key, byte(e.Tertiary))
			}
		}
	}
	if strength >= IdentityStrength {
		key = append(key, 0x00)
		key = append(key, s...)
	}
	return SortKey(key)
}

// compare is defined as bytewise comparison of the sort keys, which makes
// key consistency structural rather than something to keep in sync.
func (c *collator) compare(a, b string, strength Strength) int {
	if c.bytewise {
		return strings.Compare(a, b)
	}
	if a == b {
		return 0
	}
	return bytes.Compare(c.key(a, strength), c.key(b, strength))
}

// Collator compares strings under one locale at a fixed strength. Safe for
// concurrent use.
type Collator struct {
	impl     *collator
	strength Strength
}

// CollatorOption adjusts a Collator during construction.
type CollatorOption func(*Collator) error

// WithStrength selects the comparison depth. Strengths below
// IdentityStrength deliberately equate strings that differ only at deeper
// tiers; that is what a caseless or accentless comparison means.
func WithStrength(s Strength) CollatorOption {
	return func(c *Collator) error {
		if s < PrimaryStrength || s > IdentityStrength {
			return fmt.Errorf("locale: invalid collation strength %d", s)
		}
		c.strength = s
		return nil
	}
}

// Collator returns a reusable collator for the locale.
func (e *Engine) Collator(localeID string, opts ...CollatorOption) (*Collator, error) {
	ent, err := e.lookup(localeID, "")
	if err != nil {
		return nil, err
	}

	c := &Collator{impl: ent.coll, strength: IdentityStrength}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Compare orders a and b: -1, 0 or +1.
func (c *Collator) Compare(a, b string) int {
	return c.impl.compare(a, b, c.strength)
}

// Key returns the sort key for s. Bytewise comparison of keys equals
// Compare on the source strings.
func (c *Collator) Key(s string) SortKey {
	return c.impl.key(s, c.strength)
}

// Sort orders values in place by precomputed sort keys.
func (c *Collator) Sort(values []string) {
	keys := make([]SortKey, len(values))
	for i, v := range values {
		keys[i] = c.Key(v)
	}
	sort.Stable(&keyedValues{values: values, keys: keys})
}

type keyedValues struct {
	values []string
	keys   []SortKey
}

func (s *keyedValues) Len() int { return len(s.values) }

func (s *keyedValues) Less(i, j int) bool {
	return bytes.Compare(s.keys[i], s.keys[j]) < 0
}

func (s *keyedValues) Swap(i, j int) {
	s.values[i], s.values[j] = s.values[j], s.values[i]
	s.keys[i], s.keys[j] = s.keys[j], s.keys[i]
}

// Compare orders a and b under the Context locale: -1, 0 or +1. Distinct
// strings never compare equal; code point identity is the final tier.
func (e *Engine) Compare(ctx Context, a, b string) (int, error) {
	ent, err := e.entry(ctx)
	if err != nil {
		return 0, err
	}
	return ent.coll.compare(a, b, IdentityStrength), nil
}

// SortKey returns the byte key whose bytewise order matches Compare under
// the Context locale.
func (e *Engine) SortKey(ctx Context, s string) (SortKey, error) {
	ent, err := e.entry(ctx)
	if err != nil {
		return nil, err
	}
	return ent.coll.key(s, IdentityStrength), nil
}

// Sort returns a sorted copy of values under the Context locale.
func (e *Engine) Sort(ctx Context, values []string) ([]string, error) {
	ent, err := e.entry(ctx)
	if err != nil {
		return nil, err
	}
	out := append([]string(nil), values...)
	c := &Collator{impl: ent.coll, strength: IdentityStrength}
	c.Sort(out)
	return out, nil
}
