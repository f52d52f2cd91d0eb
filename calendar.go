package locale

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// Calendar pattern tokens. Patterns are literal text with {token}
// placeholders; literals must match byte for byte when parsing.
const (
	tokenYear        = "year"
	tokenMonth       = "month"
	tokenDay         = "day"
	tokenHour        = "hour"
	tokenHour12      = "hour12"
	tokenMinute      = "minute"
	tokenSecond      = "second"
	tokenAMPM        = "ampm"
	tokenOffset      = "offset"
	tokenMonthName   = "month_name"
	tokenMonthAbbr   = "month_abbr"
	tokenWeekday     = "weekday"
	tokenWeekdayAbbr = "weekday_abbr"
)

type patternPart struct {
	literal string
	token   string
}

// compilePattern splits a pattern into literal and token parts. Unknown
// tokens and unterminated braces fail with ErrInvalidPattern.
func compilePattern(pattern string) ([]patternPart, error) {
	var parts []patternPart
	for i := 0; i < len(pattern); {
		open := strings.IndexByte(pattern[i:], '{')
		if open < 0 {
			parts = append(parts, patternPart{literal: pattern[i:]})
			break
		}
		if open > 0 {
			parts = append(parts, patternPart{literal: pattern[i : i+open]})
		}
		start := i + open
		end := strings.IndexByte(pattern[start:], '}')
		if end < 0 {
			return nil, fmt.Errorf("%w: unterminated token in %q", ErrInvalidPattern, pattern)
		}
		token := pattern[start+1 : start+end]
		if !knownToken(token) {
			return nil, fmt.Errorf("%w: unknown token {%s} in %q", ErrInvalidPattern, token, pattern)
		}
		parts = append(parts, patternPart{token: token})
		i = start + end + 1
	}
	return parts, nil
}

func knownToken(token string) bool {
	switch token {
	case tokenYear, tokenMonth, tokenDay, tokenHour, tokenHour12,
		tokenMinute, tokenSecond, tokenAMPM, tokenOffset,
		tokenMonthName, tokenMonthAbbr, tokenWeekday, tokenWeekdayAbbr:
		return true
	}
	return false
}

// FormatTime renders the instant in the Context time zone using the Context
// locale's name tables. The zone is always explicit; the host zone never
// participates.
func (e *Engine) FormatTime(ctx Context, t time.Time, pattern string) (string, error) {
	ent, err := e.entry(ctx)
	if err != nil {
		return "", err
	}
	parts, err := compilePattern(pattern)
	if err != nil {
		return "", err
	}
	loc, err := LoadTimeZone(ctx.TimeZone)
	if err != nil {
		return "", err
	}

	local := t.In(loc)
	var b strings.Builder
	for _, part := range parts {
		if part.token == "" {
			b.WriteString(part.literal)
			continue
		}
		b.WriteString(formatToken(part.token, local, &ent.data.Names))
	}
	return b.String(), nil
}

func formatToken(token string, t time.Time, names *CalendarNames) string {
	switch token {
	case tokenYear:
		return fmt.Sprintf("%04d", t.Year())
	case tokenMonth:
		return fmt.Sprintf("%02d", int(t.Month()))
	case tokenDay:
		return fmt.Sprintf("%02d", t.Day())
	case tokenHour:
		return fmt.Sprintf("%02d", t.Hour())
	case tokenHour12:
		h := t.Hour() % 12
		if h == 0 {
			h = 12
		}
		return fmt.Sprintf("%02d", h)
	case tokenMinute:
		return fmt.Sprintf("%02d", t.Minute())
	case tokenSecond:
		return fmt.Sprintf("%02d", t.Second())
	case tokenAMPM:
		if t.Hour() < 12 {
			return names.DayPeriods[0]
		}
		return names.DayPeriods[1]
	case tokenOffset:
		return formatZoneOffset(t)
	case tokenMonthName:
		return names.Months[t.Month()-1]
	case tokenMonthAbbr:
		return names.MonthsAbbr[t.Month()-1]
	case tokenWeekday:
		return names.Weekdays[t.Weekday()]
	case tokenWeekdayAbbr:
		return names.WeekdaysAbbr[t.Weekday()]
	}
	return ""
}

func formatZoneOffset(t time.Time) string {
	_, secs := t.Zone()
	sign := "+"
	if secs < 0 {
		sign = "-"
		secs = -secs
	}
	return fmt.Sprintf("%s%02d:%02d", sign, secs/3600, (secs%3600)/60)
}

// ParseTime reads text written by FormatTime back into an instant. Numeric
// fields are fixed width, names match case insensitively through the locale
// fold with the longest candidate first, and nothing is guessed: any
// mismatch is a *ParseError, any tie an *AmbiguousFormatError.
//
// Fields the pattern does not carry default to 1970-01-01 00:00:00. Without
// {offset} the wall clock fields are interpreted in the Context time zone;
// with {offset} the offset wins and the result is the absolute instant.
func (e *Engine) ParseTime(ctx Context, text, pattern string) (time.Time, error) {
	ent, err := e.entry(ctx)
	if err != nil {
		return time.Time{}, err
	}
	parts, err := compilePattern(pattern)
	if err != nil {
		return time.Time{}, err
	}
	if err := checkParsable(parts, pattern); err != nil {
		return time.Time{}, err
	}
	loc, err := LoadTimeZone(ctx.TimeZone)
	if err != nil {
		return time.Time{}, err
	}

	p := &timeParser{
		input: text,
		names: &ent.data.Names,
		caser: ent.caser,
		fields: timeFields{
			year:  1970,
			month: 1,
			day:   1,
		},
	}
	for _, part := range parts {
		if err := p.consume(part); err != nil {
			return time.Time{}, err
		}
	}
	if p.pos != len(p.input) {
		return time.Time{}, &ParseError{Input: text, Position: p.pos, Reason: "trailing input"}
	}
	return p.fields.instant(text, loc)
}

// checkParsable rejects patterns that have more than one reading. A 12 hour
// field without a day period names two instants.
func checkParsable(parts []patternPart, pattern string) error {
	hasHour12 := false
	hasAMPM := false
	for _, part := range parts {
		switch part.token {
		case tokenHour12:
			hasHour12 = true
		case tokenAMPM:
			hasAMPM = true
		}
	}
	if hasHour12 && !hasAMPM {
		return fmt.Errorf("%w: {hour12} without {ampm} in %q", ErrInvalidPattern, pattern)
	}
	return nil
}

type timeFields struct {
	year, month, day     int
	hour, minute, second int
	hour12               int
	hour12Set            bool
	pm                   bool
	offsetSec            int
	offsetSet            bool
	dayPos               int
}

func (f *timeFields) instant(input string, loc *time.Location) (time.Time, error) {
	hour := f.hour
	if f.hour12Set {
		hour = f.hour12 % 12
		if f.pm {
			hour += 12
		}
	}

	if max := daysIn(f.year, time.Month(f.month)); f.day > max {
		return time.Time{}, &ParseError{
			Input:    input,
			Position: f.dayPos,
			Reason:   fmt.Sprintf("day %d out of range for month %d", f.day, f.month),
		}
	}

	if f.offsetSet {
		zone := time.FixedZone("", f.offsetSec)
		return time.Date(f.year, time.Month(f.month), f.day, hour, f.minute, f.second, 0, zone), nil
	}
	return time.Date(f.year, time.Month(f.month), f.day, hour, f.minute, f.second, 0, loc), nil
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

type timeParser struct {
	input  string
	pos    int
	names  *CalendarNames
	caser  *caseMapper
	fields timeFields
}

func (p *timeParser) consume(part patternPart) error {
	if part.token == "" {
		if !strings.HasPrefix(p.input[p.pos:], part.literal) {
			return p.errf("expected %q", part.literal)
		}
		p.pos += len(part.literal)
		return nil
	}

	switch part.token {
	case tokenYear:
		v, err := p.digits(4)
		if err != nil {
			return err
		}
		p.fields.year = v
	case tokenMonth:
		v, err := p.ranged(tokenMonth, 2, 1, 12)
		if err != nil {
			return err
		}
		p.fields.month = v
	case tokenDay:
		p.fields.dayPos = p.pos
		v, err := p.ranged(tokenDay, 2, 1, 31)
		if err != nil {
			return err
		}
		p.fields.day = v
	case tokenHour:
		v, err := p.ranged(tokenHour, 2, 0, 23)
		if err != nil {
			return err
		}
		p.fields.hour = v
	case tokenHour12:
		v, err := p.ranged(tokenHour12, 2, 1, 12)
		if err != nil {
			return err
		}
		p.fields.hour12 = v
		p.fields.hour12Set = true
	case tokenMinute:
		v, err := p.ranged(tokenMinute, 2, 0, 59)
		if err != nil {
			return err
		}
		p.fields.minute = v
	case tokenSecond:
		v, err := p.ranged(tokenSecond, 2, 0, 59)
		if err != nil {
			return err
		}
		p.fields.second = v
	case tokenAMPM:
		idx, err := p.matchName(tokenAMPM, p.names.DayPeriods[:])
		if err != nil {
			return err
		}
		p.fields.pm = idx == 1
	case tokenOffset:
		return p.offset()
	case tokenMonthName:
		idx, err := p.matchName(tokenMonthName, p.names.Months[:])
		if err != nil {
			return err
		}
		p.fields.month = idx + 1
	case tokenMonthAbbr:
		idx, err := p.matchName(tokenMonthAbbr, p.names.MonthsAbbr[:])
		if err != nil {
			return err
		}
		p.fields.month = idx + 1
	case tokenWeekday:
		// the name must be one of the locale's weekdays but is not cross
		// checked against the computed date
		if _, err := p.matchName(tokenWeekday, p.names.Weekdays[:]); err != nil {
			return err
		}
	case tokenWeekdayAbbr:
		if _, err := p.matchName(tokenWeekdayAbbr, p.names.WeekdaysAbbr[:]); err != nil {
			return err
		}
	}
	return nil
}

func (p *timeParser) digits(n int) (int, error) {
	if p.pos+n > len(p.input) {
		return 0, p.errf("expected %d digits", n)
	}
	v := 0
	for i := 0; i < n; i++ {
		c := p.input[p.pos+i]
		if c < '0' || c > '9' {
			return 0, &ParseError{
				Input:    p.input,
				Position: p.pos + i,
				Reason:   fmt.Sprintf("expected digit, found %q", string(c)),
			}
		}
		v = v*10 + int(c-'0')
	}
	p.pos += n
	return v, nil
}

func (p *timeParser) ranged(token string, width, lo, hi int) (int, error) {
	start := p.pos
	v, err := p.digits(width)
	if err != nil {
		return 0, err
	}
	if v < lo || v > hi {
		return 0, &ParseError{
			Input:    p.input,
			Position: start,
			Reason:   fmt.Sprintf("{%s} value %d outside %d..%d", token, v, lo, hi),
		}
	}
	return v, nil
}

// matchName finds the longest entry matching the input head under the
// locale fold. Two distinct entries matching at the same length is an
// ambiguity, not a choice.
func (p *timeParser) matchName(token string, entries []string) (int, error) {
	rest := p.input[p.pos:]
	bestLen := 0
	var candidates []int

	for i, entry := range entries {
		if entry == "" {
			continue
		}
		n := p.foldPrefixLen(rest, entry)
		if n == 0 {
			continue
		}
		switch {
		case n > bestLen:
			bestLen = n
			candidates = append(candidates[:0], i)
		case n == bestLen:
			candidates = append(candidates, i)
		}
	}

	if bestLen == 0 {
		return 0, p.errf("no {%s} name matches", token)
	}
	if len(candidates) > 1 {
		names := make([]string, len(candidates))
		for k, i := range candidates {
			names[k] = entries[i]
		}
		return 0, &AmbiguousFormatError{Token: token, Position: p.pos, Candidates: names}
	}

	p.pos += bestLen
	return candidates[0], nil
}

// foldPrefixLen returns the byte length of the prefix of rest that folds to
// the same form as entry, or 0. Folding can change lengths (Turkish I grows
// to ı), so prefixes are probed rune by rune until the folded form reaches
// the target length.
func (p *timeParser) foldPrefixLen(rest, entry string) int {
	want := p.caser.fold(entry)
	limit := 4*len(want) + 4
	if limit > len(rest) {
		limit = len(rest)
	}

	for l := 0; l < limit; {
		_, size := utf8.DecodeRuneInString(rest[l:])
		l += size
		folded := p.caser.fold(rest[:l])
		if folded == want {
			return l
		}
		if len(folded) >= len(want) {
			return 0
		}
	}
	return 0
}

func (p *timeParser) offset() error {
	rest := p.input[p.pos:]
	if len(rest) < 6 {
		return p.errf("expected offset in ±hh:mm form")
	}

	sign := 0
	switch rest[0] {
	case '+':
		sign = 1
	case '-':
		sign = -1
	default:
		return p.errf("expected offset sign")
	}

	for _, i := range []int{1, 2, 4, 5} {
		if c := rest[i]; c < '0' || c > '9' {
			return &ParseError{
				Input:    p.input,
				Position: p.pos + i,
				Reason:   fmt.Sprintf("expected digit, found %q", string(c)),
			}
		}
	}
	if rest[3] != ':' {
		return &ParseError{
			Input:    p.input,
			Position: p.pos + 3,
			Reason:   fmt.Sprintf("expected %q, found %q", ":", string(rest[3])),
		}
	}

	hours := int(rest[1]-'0')*10 + int(rest[2]-'0')
	minutes := int(rest[4]-'0')*10 + int(rest[5]-'0')
	if hours > 15 || minutes > 59 {
		return p.errf("offset %s out of range", rest[:6])
	}

	p.fields.offsetSec = sign * (hours*3600 + minutes*60)
	p.fields.offsetSet = true
	p.pos += 6
	return nil
}

func (p *timeParser) errf(format string, args ...any) error {
	return &ParseError{Input: p.input, Position: p.pos, Reason: fmt.Sprintf(format, args...)}
}
