package locale

import (
	"fmt"
	"sort"
)

//go:generate go run ./cmd/locale-gen -dir data/locales -out locales_gen.go

// Provider supplies LocaleData to an Engine. Load returns the data for one
// locale id and Available lists every id the provider can serve.
type Provider interface {
	Load(localeID string) (*LocaleData, error)
	Available() []string
}

// StaticProvider serves LocaleData from an in memory map, read only after
// construction.
type StaticProvider struct {
	data  map[string]*LocaleData
	codes []string
}

var _ Provider = (*StaticProvider)(nil)

// NewStaticProvider builds an immutable snapshot from the given data.
// Entries are cloned, nil entries are skipped, and a missing Code falls back
// to the map key.
func NewStaticProvider(data map[string]*LocaleData) *StaticProvider {
	if len(data) == 0 {
		return &StaticProvider{data: make(map[string]*LocaleData)}
	}

	snapshot := make(map[string]*LocaleData, len(data))
	codes := make([]string, 0, len(data))

	for id, entry := range data {
		if entry == nil {
			continue
		}
		normalized := NormalizeLocaleID(id)
		if normalized == "" {
			continue
		}
		clone := entry.Clone()
		if clone.Code == "" {
			clone.Code = normalized
		}
		snapshot[normalized] = clone
		codes = append(codes, normalized)
	}

	sort.Strings(codes)

	return &StaticProvider{data: snapshot, codes: codes}
}

func (p *StaticProvider) Load(localeID string) (*LocaleData, error) {
	if p == nil || p.data == nil {
		return nil, fmt.Errorf("%w %q", ErrUnknownLocale, localeID)
	}
	entry, ok := p.data[NormalizeLocaleID(localeID)]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownLocale, localeID)
	}
	return entry.Clone(), nil
}

// Available returns the locale ids the provider serves, sorted.
func (p *StaticProvider) Available() []string {
	if p == nil || len(p.codes) == 0 {
		return nil
	}
	out := make([]string, len(p.codes))
	copy(out, p.codes)
	return out
}

// Builtin returns the provider backed by the compiled in locale tables:
// the hand maintained set plus the generated name only locales.
func Builtin() Provider {
	merged := make(map[string]*LocaleData, len(builtinLocaleData)+len(generatedLocaleData))
	for code, data := range builtinLocaleData {
		merged[code] = data
	}
	for code, data := range generatedLocaleData {
		merged[code] = data
	}
	return NewStaticProvider(merged)
}
