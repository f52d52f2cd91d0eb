package locale

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatNumber renders v using only the separators and precision in nf.
// Decimals below zero means shortest representation that round trips.
// NaN and infinities render as "NaN", "Inf" and "-Inf" regardless of nf.
func FormatNumber(v float64, nf NumberFormat) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	}

	prec := nf.Decimals
	if prec < 0 {
		prec = -1
	}
	s := strconv.FormatFloat(v, 'f', prec, 64)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		intPart = s[:dot]
		fracPart = s[dot+1:]
	}

	var b strings.Builder
	b.WriteString(sign)
	if nf.GroupSep == "" {
		b.WriteString(intPart)
	} else {
		for i := 0; i < len(intPart); i++ {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				b.WriteString(nf.GroupSep)
			}
			b.WriteByte(intPart[i])
		}
	}
	if fracPart != "" {
		b.WriteString(decimalSepOrDefault(nf))
		b.WriteString(fracPart)
	}
	return b.String()
}

// ParseNumber reads text written by FormatNumber back into a float64. The
// shape is strict: group separators must sit on exact thousand boundaries
// and a decimal separator must be followed by at least one digit.
func ParseNumber(text string, nf NumberFormat) (float64, error) {
	decSep := decimalSepOrDefault(nf)
	if nf.GroupSep != "" && nf.GroupSep == decSep {
		return 0, fmt.Errorf("%w: decimal and group separators are both %q", ErrInvalidPattern, decSep)
	}
	if text == "" {
		return 0, &ParseError{Input: text, Position: 0, Reason: "empty input"}
	}

	pos := 0
	sign := ""
	if text[0] == '-' || text[0] == '+' {
		sign = string(text[0])
		pos = 1
	}
	body := text[pos:]
	if body == "" {
		return 0, &ParseError{Input: text, Position: pos, Reason: "expected digits"}
	}

	intPart := body
	fracPart := ""
	hasFrac := false
	if dot := strings.Index(body, decSep); dot >= 0 {
		intPart = body[:dot]
		fracPart = body[dot+len(decSep):]
		hasFrac = true
		if fracPart == "" {
			return 0, &ParseError{
				Input:    text,
				Position: pos + dot + len(decSep),
				Reason:   "expected digits after decimal separator",
			}
		}
	}

	digits, err := parseIntegerGroups(text, intPart, pos, nf.GroupSep)
	if err != nil {
		return 0, err
	}

	if hasFrac {
		fracPos := pos + len(intPart) + len(decSep)
		for i := 0; i < len(fracPart); i++ {
			if c := fracPart[i]; c < '0' || c > '9' {
				return 0, &ParseError{
					Input:    text,
					Position: fracPos + i,
					Reason:   fmt.Sprintf("expected digit, found %q", string(c)),
				}
			}
		}
	}

	normalized := sign + digits
	if hasFrac {
		normalized += "." + fracPart
	}
	v, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return 0, &ParseError{Input: text, Position: 0, Reason: "value out of range"}
	}
	return v, nil
}

// parseIntegerGroups validates the grouped integer digits and returns them
// with separators stripped. A single group may be any width; once a
// separator appears the first group is one to three digits and every later
// group exactly three.
func parseIntegerGroups(input, intPart string, base int, groupSep string) (string, error) {
	if intPart == "" {
		return "", &ParseError{Input: input, Position: base, Reason: "expected digits"}
	}

	checkDigits := func(group string, at int) error {
		for i := 0; i < len(group); i++ {
			if c := group[i]; c < '0' || c > '9' {
				return &ParseError{
					Input:    input,
					Position: at + i,
					Reason:   fmt.Sprintf("expected digit, found %q", string(c)),
				}
			}
		}
		return nil
	}

	if groupSep == "" || !strings.Contains(intPart, groupSep) {
		if err := checkDigits(intPart, base); err != nil {
			return "", err
		}
		return intPart, nil
	}

	groups := strings.Split(intPart, groupSep)
	at := base
	var b strings.Builder
	for i, group := range groups {
		if group == "" {
			return "", &ParseError{Input: input, Position: at, Reason: "empty digit group"}
		}
		if err := checkDigits(group, at); err != nil {
			return "", err
		}
		if i == 0 {
			if len(group) > 3 {
				return "", &ParseError{
					Input:    input,
					Position: at,
					Reason:   fmt.Sprintf("leading group has %d digits, want at most 3", len(group)),
				}
			}
		} else if len(group) != 3 {
			return "", &ParseError{
				Input:    input,
				Position: at,
				Reason:   fmt.Sprintf("digit group has %d digits, want 3", len(group)),
			}
		}
		b.WriteString(group)
		at += len(group) + len(groupSep)
	}
	return b.String(), nil
}

func decimalSepOrDefault(nf NumberFormat) string {
	if nf.DecimalSep == "" {
		return "."
	}
	return nf.DecimalSep
}

// FormatNumber renders v with the Context number format, falling back to
// the locale's format when the Context carries none.
func (e *Engine) FormatNumber(ctx Context, v float64) (string, error) {
	nf, err := e.numberFormat(ctx)
	if err != nil {
		return "", err
	}
	return FormatNumber(v, nf), nil
}

// ParseNumber reads v with the Context number format, falling back to the
// locale's format when the Context carries none.
func (e *Engine) ParseNumber(ctx Context, text string) (float64, error) {
	nf, err := e.numberFormat(ctx)
	if err != nil {
		return 0, err
	}
	return ParseNumber(text, nf)
}

func (e *Engine) numberFormat(ctx Context) (NumberFormat, error) {
	if ctx.Number.DecimalSep != "" {
		return ctx.Number, nil
	}
	ent, err := e.entry(ctx)
	if err != nil {
		return NumberFormat{}, err
	}
	return ent.data.Number, nil
}
