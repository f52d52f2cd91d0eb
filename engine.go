package locale

import (
	"fmt"
	"sort"
)

// Config captures engine setup during construction.
type Config struct {
	Providers []Provider
	Locales   []string
	Renderers []Renderer
}

// Option mutates Config during construction.
type Option func(*Config) error

// WithProvider appends a data provider. Later providers override earlier
// ones for locales both serve.
func WithProvider(p Provider) Option {
	return func(c *Config) error {
		if p == nil {
			return fmt.Errorf("locale: nil provider")
		}
		c.Providers = append(c.Providers, p)
		return nil
	}
}

// WithLocales restricts loading to the given ids instead of everything the
// providers advertise. Every requested id must be served by some provider.
func WithLocales(ids ...string) Option {
	return func(c *Config) error {
		c.Locales = append(c.Locales, ids...)
		return nil
	}
}

// WithRenderers registers output backends for capability based selection.
func WithRenderers(rs ...Renderer) Option {
	return func(c *Config) error {
		for _, r := range rs {
			if r == nil {
				continue
			}
			c.Renderers = append(c.Renderers, r)
		}
		return nil
	}
}

// engineEntry holds the per locale artifacts built once during New.
type engineEntry struct {
	data  *LocaleData
	caser *caseMapper
	coll  *collator
}

// Engine hosts the loaded locale data and every normalization operation.
// New does all loading and validation up front; afterwards an Engine is
// immutable and safe for unsynchronized concurrent use.
type Engine struct {
	entries   map[string]*engineEntry
	codes     []string
	renderers []Renderer
}

// New loads locale data from the configured providers and builds the engine.
// The data source is always explicit: at least one provider is required and
// an empty result set is an error, never a silent default.
func New(opts ...Option) (*Engine, error) {
	cfg := &Config{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if len(cfg.Providers) == 0 {
		return nil, ErrNoProvider
	}

	wanted := normalizeLocaleIDs(cfg.Locales)

	merged := make(map[string]*LocaleData)
	for _, provider := range cfg.Providers {
		ids := provider.Available()
		if len(wanted) > 0 {
			ids = filterIDs(ids, wanted)
		}
		for _, id := range ids {
			data, err := provider.Load(id)
			if err != nil {
				return nil, fmt.Errorf("locale: load %q: %w", id, err)
			}
			merged[NormalizeLocaleID(id)] = data
		}
	}

	for _, id := range wanted {
		if _, ok := merged[id]; !ok {
			return nil, fmt.Errorf("%w %q", ErrUnknownLocale, id)
		}
	}

	if len(merged) == 0 {
		return nil, ErrNoLocaleData
	}

	entries := make(map[string]*engineEntry, len(merged))
	codes := make([]string, 0, len(merged))
	for id, data := range merged {
		if data.Code == "" {
			data.Code = id
		}
		if err := data.Validate(); err != nil {
			return nil, err
		}
		entries[id] = &engineEntry{
			data:  data,
			caser: newCaseMapper(data),
			coll:  newCollator(data),
		}
		codes = append(codes, id)
	}
	sort.Strings(codes)

	return &Engine{
		entries:   entries,
		codes:     codes,
		renderers: append([]Renderer(nil), cfg.Renderers...),
	}, nil
}

// Locales returns the loaded locale ids, sorted.
func (e *Engine) Locales() []string {
	if e == nil || len(e.codes) == 0 {
		return nil
	}
	out := make([]string, len(e.codes))
	copy(out, e.codes)
	return out
}

// Data returns a copy of the loaded data for the id, or ErrUnknownLocale.
func (e *Engine) Data(localeID string) (*LocaleData, error) {
	ent, err := e.lookup(localeID, "")
	if err != nil {
		return nil, err
	}
	return ent.data.Clone(), nil
}

// entry resolves the Context locale, honoring only the explicit fallback.
func (e *Engine) entry(ctx Context) (*engineEntry, error) {
	return e.lookup(ctx.Locale, ctx.Fallback)
}

func (e *Engine) lookup(localeID, fallback string) (*engineEntry, error) {
	if localeID == "" {
		return nil, fmt.Errorf("%w: empty locale id", ErrUnknownLocale)
	}
	if e == nil || e.entries == nil {
		return nil, fmt.Errorf("%w %q", ErrUnknownLocale, localeID)
	}
	if ent, ok := e.entries[NormalizeLocaleID(localeID)]; ok {
		return ent, nil
	}
	if fallback != "" {
		if ent, ok := e.entries[NormalizeLocaleID(fallback)]; ok {
			return ent, nil
		}
		return nil, fmt.Errorf("%w %q (fallback %q)", ErrUnknownLocale, localeID, fallback)
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownLocale, localeID)
}

func filterIDs(ids, wanted []string) []string {
	set := make(map[string]struct{}, len(wanted))
	for _, id := range wanted {
		set[id] = struct{}{}
	}

	var out []string
	for _, id := range ids {
		if _, ok := set[NormalizeLocaleID(id)]; ok {
			out = append(out, id)
		}
	}
	return out
}
