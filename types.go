package locale

import "fmt"

// CalendarNames holds the localized name tables used by calendar formatting
// and parsing. Weekday arrays are indexed by time.Weekday, so Sunday is 0.
type CalendarNames struct {
	Months       [12]string
	MonthsAbbr   [12]string
	Weekdays     [7]string
	WeekdaysAbbr [7]string
	DayPeriods   [2]string
}

// CaseRule maps a source sequence onto locale specific case forms. An empty
// target falls through to the default Unicode mapping; an empty Fold falls
// back to Lower.
type CaseRule struct {
	From  string
	Upper string
	Lower string
	Fold  string
}

// CollationElem is one weight triple in the tiered collation model.
type CollationElem struct {
	Primary   uint32
	Secondary uint16
	Tertiary  uint16
}

// Tailoring overrides the derived weights for a source sequence. A multi rune
// Source expresses a contraction, multiple Elems an expansion.
type Tailoring struct {
	Source string
	Elems  []CollationElem
}

// CollationTable carries a locale's collation overrides. Bytewise switches to
// raw byte order with no tiers, which is what the "C" pseudo locale uses.
type CollationTable struct {
	Bytewise   bool
	Tailorings []Tailoring
}

// NumberFormat declares the separators used by numeric formatting and
// parsing. Decimals is the exact number of fraction digits; a negative value
// means the shortest representation that round trips. A non empty GroupSep
// turns on grouping of the integer part in threes.
type NumberFormat struct {
	DecimalSep string
	GroupSep   string
	Decimals   int
}

// NewNumberFormat returns the shortest form configuration for the given
// decimal separator.
func NewNumberFormat(decimalSep string) NumberFormat {
	return NumberFormat{DecimalSep: decimalSep, Decimals: -1}
}

// LocaleData bundles everything an Engine needs for one locale. Once loaded
// it is treated as immutable; Clone is used at every trust boundary.
type LocaleData struct {
	Code        string
	Names       CalendarNames
	Casing      []CaseRule
	ASCIICasing bool
	Collation   CollationTable
	Number      NumberFormat
}

func (d *LocaleData) Clone() *LocaleData {
	if d == nil {
		return nil
	}

	out := &LocaleData{
		Code:        d.Code,
		Names:       d.Names,
		ASCIICasing: d.ASCIICasing,
		Number:      d.Number,
	}

	if len(d.Casing) > 0 {
		out.Casing = make([]CaseRule, len(d.Casing))
		copy(out.Casing, d.Casing)
	}

	out.Collation.Bytewise = d.Collation.Bytewise
	if len(d.Collation.Tailorings) > 0 {
		out.Collation.Tailorings = make([]Tailoring, len(d.Collation.Tailorings))
		for i, t := range d.Collation.Tailorings {
			clone := Tailoring{Source: t.Source}
			if len(t.Elems) > 0 {
				clone.Elems = make([]CollationElem, len(t.Elems))
				copy(clone.Elems, t.Elems)
			}
			out.Collation.Tailorings[i] = clone
		}
	}

	return out
}

// Validate checks the invariants every loaded locale must satisfy: complete
// name tables, weights within the key encoding bounds, distinct number
// separators.
func (d *LocaleData) Validate() error {
	if d == nil {
		return fmt.Errorf("locale data: nil")
	}
	if d.Code == "" {
		return fmt.Errorf("locale data: empty locale code")
	}

	for i, name := range d.Names.Months {
		if name == "" {
			return fmt.Errorf("locale data %q: month %d has no name", d.Code, i+1)
		}
	}
	for i, name := range d.Names.MonthsAbbr {
		if name == "" {
			return fmt.Errorf("locale data %q: month %d has no abbreviation", d.Code, i+1)
		}
	}
	for i, name := range d.Names.Weekdays {
		if name == "" {
			return fmt.Errorf("locale data %q: weekday %d has no name", d.Code, i)
		}
	}
	for i, name := range d.Names.WeekdaysAbbr {
		if name == "" {
			return fmt.Errorf("locale data %q: weekday %d has no abbreviation", d.Code, i)
		}
	}
	if d.Names.DayPeriods[0] == "" || d.Names.DayPeriods[1] == "" {
		return fmt.Errorf("locale data %q: missing day period names", d.Code)
	}

	for _, rule := range d.Casing {
		if rule.From == "" {
			return fmt.Errorf("locale data %q: casing rule with empty source", d.Code)
		}
	}

	for _, t := range d.Collation.Tailorings {
		if t.Source == "" {
			return fmt.Errorf("locale data %q: tailoring with empty source", d.Code)
		}
		if len(t.Elems) == 0 {
			return fmt.Errorf("locale data %q: tailoring %q has no elements", d.Code, t.Source)
		}
		for _, e := range t.Elems {
			if e.Primary != 0 && (e.Primary < minPrimary || e.Primary > maxPrimary) {
				return fmt.Errorf("locale data %q: tailoring %q: primary weight %#x out of range", d.Code, t.Source, e.Primary)
			}
			if e.Secondary > maxSecondary {
				return fmt.Errorf("locale data %q: tailoring %q: secondary weight %#x out of range", d.Code, t.Source, e.Secondary)
			}
			if e.Tertiary > maxTertiary {
				return fmt.Errorf("locale data %q: tailoring %q: tertiary weight %#x out of range", d.Code, t.Source, e.Tertiary)
			}
		}
	}

	if d.Number.DecimalSep != "" && d.Number.DecimalSep == d.Number.GroupSep {
		return fmt.Errorf("locale data %q: decimal and group separator are both %q", d.Code, d.Number.DecimalSep)
	}

	return nil
}

// SortKey is a byte sequence whose bytewise order equals the collation order
// of the source strings under the same locale and strength.
type SortKey []byte

// FactorLevels is the ordered set of unique values backing a factor.
type FactorLevels []string
