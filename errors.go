package locale

import (
	"errors"
	"fmt"
)

// ErrUnknownLocale indicates that the requested locale id has no loaded data.
var ErrUnknownLocale = errors.New("locale: unknown locale")

// ErrUnknownTimeZone indicates a zone id that is missing from the zone
// database or that names ambient host state ("" and "Local").
var ErrUnknownTimeZone = errors.New("locale: unknown time zone")

// ErrInvalidPath marks raw paths that cannot be represented as a PathSpec.
var ErrInvalidPath = errors.New("locale: invalid path")

// ErrInvalidPattern marks calendar patterns with unknown or malformed tokens.
var ErrInvalidPattern = errors.New("locale: invalid pattern")

// ErrNoProvider is returned by New when no data provider was configured.
var ErrNoProvider = errors.New("locale: no provider configured")

// ErrNoLocaleData is returned by New when the configured providers yield no locales.
var ErrNoLocaleData = errors.New("locale: no locale data")

// ErrNoRenderer indicates that no registered renderer satisfies the requested capabilities.
var ErrNoRenderer = errors.New("locale: no renderer")

// ParseError reports where and why parsing stopped. Position is a byte offset
// into Input. Parsing never guesses: the first field that does not match the
// pattern fails the whole call.
type ParseError struct {
	Input    string
	Position int
	Reason   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("locale: parse %q at %d: %s", e.Input, e.Position, e.Reason)
}

// AmbiguousFormatError reports that two or more name table entries match the
// input equally well, so no single value can be chosen.
type AmbiguousFormatError struct {
	Token      string
	Position   int
	Candidates []string
}

func (e *AmbiguousFormatError) Error() string {
	return fmt.Sprintf("locale: ambiguous {%s} at %d: matches %v", e.Token, e.Position, e.Candidates)
}
