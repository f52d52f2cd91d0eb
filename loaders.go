package locale

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// FileProvider serves LocaleData from a directory of locale files. A locale
// id maps to <dir>/<id>.json, .yaml or .yml, tried in that order. The
// directory is read on every Load; an Engine snapshots the data at
// construction, so files may change between generations but never within
// one.
type FileProvider struct {
	dir string
}

var _ Provider = (*FileProvider)(nil)

func NewFileProvider(dir string) *FileProvider {
	return &FileProvider{dir: dir}
}

var localeFileExts = []string{".json", ".yaml", ".yml"}

func (p *FileProvider) Load(localeID string) (*LocaleData, error) {
	id := NormalizeLocaleID(localeID)
	if p == nil || p.dir == "" || id == "" {
		return nil, fmt.Errorf("%w %q", ErrUnknownLocale, localeID)
	}

	for _, ext := range localeFileExts {
		path := filepath.Join(p.dir, id+ext)
		raw, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("locale: read %s: %w", path, err)
		}

		var file localeFile
		if err := decodeLocaleFile(path, raw, &file); err != nil {
			return nil, fmt.Errorf("locale: decode %s: %w", path, err)
		}
		data, err := file.build(id)
		if err != nil {
			return nil, fmt.Errorf("locale: %s: %w", path, err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownLocale, localeID)
}

// Available lists the locale ids present in the directory, sorted. An
// unreadable directory lists as empty; Load reports the real error.
func (p *FileProvider) Available() []string {
	if p == nil || p.dir == "" {
		return nil
	}
	entries, err := os.ReadDir(p.dir)
	if err != nil {
		return nil
	}

	seen := make(map[string]struct{})
	var codes []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		supported := false
		for _, want := range localeFileExts {
			if ext == want {
				supported = true
				break
			}
		}
		if !supported {
			continue
		}
		id := NormalizeLocaleID(strings.TrimSuffix(name, filepath.Ext(name)))
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		codes = append(codes, id)
	}
	sort.Strings(codes)
	return codes
}

func decodeLocaleFile(path string, raw []byte, out *localeFile) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return json.Unmarshal(raw, out)
	case ".yaml", ".yml":
		return yaml.Unmarshal(raw, out)
	default:
		return fmt.Errorf("unsupported extension %s", ext)
	}
}

// localeFile is the on disk schema, shared by JSON and YAML.
type localeFile struct {
	Code         string         `json:"code" yaml:"code"`
	Months       []string       `json:"months" yaml:"months"`
	MonthsAbbr   []string       `json:"months_abbr" yaml:"months_abbr"`
	Weekdays     []string       `json:"weekdays" yaml:"weekdays"`
	WeekdaysAbbr []string       `json:"weekdays_abbr" yaml:"weekdays_abbr"`
	DayPeriods   []string       `json:"day_periods" yaml:"day_periods"`
	ASCIICasing  bool           `json:"ascii_casing" yaml:"ascii_casing"`
	Casing       []caseRuleFile `json:"casing" yaml:"casing"`
	Collation    *collationFile `json:"collation" yaml:"collation"`
	Number       *numberFile    `json:"number" yaml:"number"`
}

type caseRuleFile struct {
	From  string `json:"from" yaml:"from"`
	Upper string `json:"upper" yaml:"upper"`
	Lower string `json:"lower" yaml:"lower"`
	Fold  string `json:"fold" yaml:"fold"`
}

type collationFile struct {
	Bytewise   bool            `json:"bytewise" yaml:"bytewise"`
	Tailorings []tailoringFile `json:"tailorings" yaml:"tailorings"`
}

type tailoringFile struct {
	Source string     `json:"source" yaml:"source"`
	Elems  []elemFile `json:"elems" yaml:"elems"`
}

// elemFile describes one collation element either symbolically, as a letter
// slotted after another or reusing a base letter's position, or as raw
// weights. Raw weights win when any is set.
type elemFile struct {
	After  string `json:"after" yaml:"after"`
	Slot   uint32 `json:"slot" yaml:"slot"`
	Base   string `json:"base" yaml:"base"`
	Accent uint16 `json:"accent" yaml:"accent"`
	Upper  bool   `json:"upper" yaml:"upper"`
	Expand bool   `json:"expand" yaml:"expand"`

	Primary   uint32 `json:"primary" yaml:"primary"`
	Secondary uint16 `json:"secondary" yaml:"secondary"`
	Tertiary  uint16 `json:"tertiary" yaml:"tertiary"`
}

func (f *localeFile) build(id string) (*LocaleData, error) {
	data := &LocaleData{Code: f.Code, ASCIICasing: f.ASCIICasing}
	if data.Code == "" {
		data.Code = id
	}

	if err := fillNames(data.Names.Months[:], f.Months, "months"); err != nil {
		return nil, err
	}
	if err := fillNames(data.Names.MonthsAbbr[:], f.MonthsAbbr, "months_abbr"); err != nil {
		return nil, err
	}
	if err := fillNames(data.Names.Weekdays[:], f.Weekdays, "weekdays"); err != nil {
		return nil, err
	}
	if err := fillNames(data.Names.WeekdaysAbbr[:], f.WeekdaysAbbr, "weekdays_abbr"); err != nil {
		return nil, err
	}
	if err := fillNames(data.Names.DayPeriods[:], f.DayPeriods, "day_periods"); err != nil {
		return nil, err
	}

	for _, rule := range f.Casing {
		data.Casing = append(data.Casing, CaseRule(rule))
	}

	if f.Collation != nil {
		data.Collation.Bytewise = f.Collation.Bytewise
		for _, t := range f.Collation.Tailorings {
			tailoring := Tailoring{Source: t.Source}
			for i, e := range t.Elems {
				elem, err := e.build()
				if err != nil {
					return nil, fmt.Errorf("tailoring %q element %d: %w", t.Source, i, err)
				}
				tailoring.Elems = append(tailoring.Elems, elem)
			}
			data.Collation.Tailorings = append(data.Collation.Tailorings, tailoring)
		}
	}

	data.Number = NumberFormat{DecimalSep: ".", Decimals: -1}
	if f.Number != nil {
		data.Number = f.Number.build()
	}

	if err := data.Validate(); err != nil {
		return nil, err
	}
	return data, nil
}

func fillNames(dst []string, src []string, field string) error {
	if len(src) != len(dst) {
		return fmt.Errorf("%s has %d entries, want %d", field, len(src), len(dst))
	}
	copy(dst, src)
	return nil
}

func (e elemFile) build() (CollationElem, error) {
	if e.Primary != 0 || e.Secondary != 0 || e.Tertiary != 0 {
		return CollationElem{Primary: e.Primary, Secondary: e.Secondary, Tertiary: e.Tertiary}, nil
	}

	var primary uint32
	switch {
	case e.After != "":
		r, _ := utf8.DecodeRuneInString(e.After)
		slot := e.Slot
		if slot == 0 {
			slot = 1
		}
		if slot > 3 {
			return CollationElem{}, fmt.Errorf("slot %d outside 1..3", slot)
		}
		primary = letterAfter(r, slot)
	case e.Base != "":
		r, _ := utf8.DecodeRuneInString(e.Base)
		primary = primaryFor(r)
	default:
		return CollationElem{}, fmt.Errorf("element needs after, base or raw weights")
	}

	elem := CollationElem{Primary: primary, Secondary: defaultSecondary + e.Accent, Tertiary: tertiaryLower}
	switch {
	case e.Upper:
		elem.Tertiary = tertiaryUpper
	case e.Expand:
		elem.Tertiary = tertiaryExpand
	}
	return elem, nil
}

// numberFile leaves decimals optional so "shortest form" needs no explicit
// -1 in every file.
type numberFile struct {
	DecimalSep string `json:"decimal_sep" yaml:"decimal_sep"`
	GroupSep   string `json:"group_sep" yaml:"group_sep"`
	Decimals   *int   `json:"decimals" yaml:"decimals"`
}

func (f *numberFile) build() NumberFormat {
	nf := NumberFormat{DecimalSep: f.DecimalSep, GroupSep: f.GroupSep, Decimals: -1}
	if nf.DecimalSep == "" {
		nf.DecimalSep = "."
	}
	if f.Decimals != nil {
		nf.Decimals = *f.Decimals
	}
	return nf
}
