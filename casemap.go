package locale

import (
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type caseOp int

const (
	caseUpper caseOp = iota
	caseLower
	caseFold
)

// caseMapper applies a locale's special casing rules with the default
// Unicode mapping underneath. Rules win over the default and are matched
// longest source first at every position, so "I" maps to dotless ı under a
// Turkish rule set while untouched spans keep standard behavior.
type caseMapper struct {
	rules     []CaseRule
	asciiOnly bool
}

func newCaseMapper(data *LocaleData) *caseMapper {
	m := &caseMapper{asciiOnly: data.ASCIICasing}
	if len(data.Casing) > 0 {
		m.rules = make([]CaseRule, len(data.Casing))
		copy(m.rules, data.Casing)
		sort.SliceStable(m.rules, func(i, j int) bool {
			return len(m.rules[i].From) > len(m.rules[j].From)
		})
	}
	return m
}

func (m *caseMapper) upper(s string) string { return m.apply(s, caseUpper) }
func (m *caseMapper) lower(s string) string { return m.apply(s, caseLower) }
func (m *caseMapper) fold(s string) string  { return m.apply(s, caseFold) }

func (m *caseMapper) apply(s string, op caseOp) string {
	if len(m.rules) == 0 {
		return m.applyDefault(s, op)
	}

	var out strings.Builder
	out.Grow(len(s))

	// pending run of text the default mapping handles as one piece
	start := 0
	flush := func(end int) {
		if end > start {
			out.WriteString(m.applyDefault(s[start:end], op))
		}
	}

	for i := 0; i < len(s); {
		target, n := m.matchRule(s[i:], op)
		if n > 0 {
			flush(i)
			out.WriteString(target)
			i += n
			start = i
			continue
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	flush(len(s))

	return out.String()
}

// matchRule returns the replacement and source length for the longest rule
// matching the head of s. A rule without a target for op does not match.
func (m *caseMapper) matchRule(s string, op caseOp) (string, int) {
	for _, rule := range m.rules {
		if !strings.HasPrefix(s, rule.From) {
			continue
		}
		target := ruleTarget(rule, op)
		if target == "" {
			continue
		}
		return target, len(rule.From)
	}
	return "", 0
}

func ruleTarget(rule CaseRule, op caseOp) string {
	switch op {
	case caseUpper:
		return rule.Upper
	case caseLower:
		return rule.Lower
	default:
		if rule.Fold != "" {
			return rule.Fold
		}
		return rule.Lower
	}
}

func (m *caseMapper) applyDefault(s string, op caseOp) string {
	if m.asciiOnly {
		return asciiCase(s, op)
	}
	switch op {
	case caseUpper:
		return cases.Upper(language.Und).String(s)
	case caseLower:
		return cases.Lower(language.Und).String(s)
	default:
		return cases.Fold().String(s)
	}
}

func asciiCase(s string, op caseOp) string {
	if op == caseUpper {
		return strings.Map(func(r rune) rune {
			if 'a' <= r && r <= 'z' {
				return r - ('a' - 'A')
			}
			return r
		}, s)
	}
	return strings.Map(func(r rune) rune {
		if 'A' <= r && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, s)
}

// Upper converts s with the Context locale's casing rules plus the default
// Unicode mapping.
func (e *Engine) Upper(ctx Context, s string) (string, error) {
	ent, err := e.entry(ctx)
	if err != nil {
		return "", err
	}
	return ent.caser.upper(s), nil
}

// Lower converts s with the Context locale's casing rules plus the default
// Unicode mapping.
func (e *Engine) Lower(ctx Context, s string) (string, error) {
	ent, err := e.entry(ctx)
	if err != nil {
		return "", err
	}
	return ent.caser.lower(s), nil
}

// Fold maps s to its caseless comparison form under the Context locale.
// Calendar parsing uses the same fold for name matching, so "OCAK" and
// "ocak" meet in the middle under Turkish rules.
func (e *Engine) Fold(ctx Context, s string) (string, error) {
	ent, err := e.entry(ctx)
	if err != nil {
		return "", err
	}
	return ent.caser.fold(s), nil
}
