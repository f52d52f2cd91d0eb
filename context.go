package locale

import "fmt"

// Context bundles the explicit parameters an operation may need. Operations
// read only the fields they document and nothing is ever taken from the
// process environment: equal Contexts and inputs give equal results on every
// host.
type Context struct {
	// Locale names the data used for collation, casing and calendar names.
	Locale string
	// Fallback optionally names a second locale tried when Locale has no
	// loaded data. Fallback is never applied unless set here by the caller.
	Fallback string
	// TimeZone is the IANA zone id calendar operations render into and
	// parse against, e.g. "UTC" or "Europe/Istanbul".
	TimeZone string
	// Path carries the separator and explicit home directory for path
	// operations.
	Path PathConvention
	// Number overrides the locale's number separators when DecimalSep is
	// set; otherwise the locale's conventional format applies.
	Number NumberFormat
}

// Validate rejects field combinations that are invalid for every operation.
// Individual operations still perform their own presence checks; a collation
// call does not require TimeZone.
func (c Context) Validate() error {
	if c.Locale == "" {
		return fmt.Errorf("%w: empty locale id", ErrUnknownLocale)
	}
	if c.TimeZone == "Local" {
		return fmt.Errorf("%w: %q names host state", ErrUnknownTimeZone, c.TimeZone)
	}
	if c.Number.DecimalSep != "" && c.Number.DecimalSep == c.Number.GroupSep {
		return fmt.Errorf("locale: decimal and group separator are both %q", c.Number.DecimalSep)
	}
	if sep := c.Path.Separator; sep != "" && sep != "/" && sep != `\` {
		return fmt.Errorf("%w: unsupported separator %q", ErrInvalidPath, sep)
	}
	return nil
}
