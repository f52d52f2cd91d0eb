package locale

import (
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// NormalizeLocaleID canonicalizes a locale identifier by trimming whitespace
// and replacing underscores with hyphens, so "tr_TR" and "tr-TR" name the
// same data.
func NormalizeLocaleID(id string) string {
	return strings.ReplaceAll(strings.TrimSpace(id), "_", "-")
}

func normalizeLocaleIDs(ids []string) []string {
	if len(ids) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(ids))
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		normalized := NormalizeLocaleID(id)
		if normalized == "" {
			continue
		}
		if _, exists := seen[normalized]; exists {
			continue
		}
		seen[normalized] = struct{}{}
		result = append(result, normalized)
	}

	sort.Strings(result)
	return result
}

// ParentLocales returns the BCP 47 parent chain for the given id, ordered
// from closest parent to root. Callers use it to build an explicit
// Context.Fallback; the engine never walks parents on its own.
func ParentLocales(id string) []string {
	if id == "" {
		return nil
	}

	var chain []string
	seen := make(map[string]struct{}, 4)

	if tag, err := language.Parse(id); err == nil {
		for parent := tag.Parent(); parent != language.Und; parent = parent.Parent() {
			parentValue := parent.String()
			if parentValue == "" || parentValue == "und" {
				break
			}
			if _, exists := seen[parentValue]; exists {
				break
			}
			seen[parentValue] = struct{}{}
			chain = append(chain, parentValue)
		}
	}

	// ids the tag parser rejects still get their hyphen prefixes
	for current := localeParent(id); current != ""; current = localeParent(current) {
		if _, exists := seen[current]; exists {
			continue
		}
		seen[current] = struct{}{}
		chain = append(chain, current)
	}

	return chain
}

func localeParent(id string) string {
	if id == "" {
		return ""
	}

	tag, err := language.Parse(id)
	if err == nil {
		parent := tag.Parent()
		if parent == language.Und {
			return ""
		}
		value := parent.String()
		if value == "" || value == "und" {
			return ""
		}
		return value
	}

	if idx := strings.LastIndex(id, "-"); idx > 0 {
		return id[:idx]
	}

	return ""
}
