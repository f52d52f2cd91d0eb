package locale

import (
	"bytes"
	"sort"
	"testing"
)

func TestCompareTotalOrder(t *testing.T) {
	engine := builtinEngine(t)

	words := []string{"", "a", "A", "ab", "b", "Straße", "strasse", "öl", "zebra", "Zebra", "é", "e"}
	for _, locale := range []string{"C", "en", "de", "sv", "tr", "cs"} {
		ctx := Context{Locale: locale}
		for _, a := range words {
			for _, b := range words {
				got, err := engine.Compare(ctx, a, b)
				if err != nil {
					t.Fatalf("[%s] Compare(%q,%q): %v", locale, a, b, err)
				}
				back, err := engine.Compare(ctx, b, a)
				if err != nil {
					t.Fatalf("[%s] Compare(%q,%q): %v", locale, b, a, err)
				}
				if got != -back {
					t.Fatalf("[%s] Compare(%q,%q)=%d but Compare(%q,%q)=%d", locale, a, b, got, b, a, back)
				}
				if (a == b) != (got == 0) {
					t.Fatalf("[%s] Compare(%q,%q)=%d, identity tier broken", locale, a, b, got)
				}
			}
		}
	}
}

func TestSortKeyMatchesCompare(t *testing.T) {
	engine := builtinEngine(t)

	words := []string{"", "a", "A", "añejo", "anillo", "chata", "cena", "ılık", "ilk", "Istanbul", "örn", "ärla", "straße", "strasse"}
	for _, locale := range []string{"C", "en", "es", "tr", "sv", "cs", "de"} {
		ctx := Context{Locale: locale}
		for _, a := range words {
			for _, b := range words {
				cmp, err := engine.Compare(ctx, a, b)
				if err != nil {
					t.Fatalf("[%s] Compare: %v", locale, err)
				}
				ka, err := engine.SortKey(ctx, a)
				if err != nil {
					t.Fatalf("[%s] SortKey: %v", locale, err)
				}
				kb, err := engine.SortKey(ctx, b)
				if err != nil {
					t.Fatalf("[%s] SortKey: %v", locale, err)
				}
				if got := bytes.Compare(ka, kb); got != cmp {
					t.Fatalf("[%s] key order %d != compare %d for %q vs %q", locale, got, cmp, a, b)
				}
			}
		}
	}
}

func TestSwedishOrder(t *testing.T) {
	engine := builtinEngine(t)
	ctx := Context{Locale: "sv"}

	got, err := engine.Sort(ctx, []string{"örn", "ärla", "zebra", "åsna", "anka"})
	if err != nil {
		t.Fatalf("Sort: %v", err)
	}

	want := []string{"anka", "zebra", "åsna", "ärla", "örn"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Sort = %v, want %v", got, want)
		}
	}
}

func TestTurkishOrder(t *testing.T) {
	engine := builtinEngine(t)
	ctx := Context{Locale: "tr"}

	// c < ç < d, and dotless ı sits between h and i, dragging capital I
	// along with it.
	got, err := engine.Sort(ctx, []string{"dal", "çay", "cam", "ilk", "ılık", "hal", "Istanbul", "iğne"})
	if err != nil {
		t.Fatalf("Sort: %v", err)
	}

	want := []string{"cam", "çay", "dal", "hal", "ılık", "Istanbul", "iğne", "ilk"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Sort = %v, want %v", got, want)
		}
	}
}

func TestCzechChDigraph(t *testing.T) {
	engine := builtinEngine(t)
	ctx := Context{Locale: "cs"}

	tests := []struct {
		a, b string
	}{
		{"hmota", "chata"},
		{"chata", "ideál"},
		{"cena", "čaj"},
		{"čaj", "duha"},
		{"ruka", "řeka"},
		{"řeka", "sama"},
		{"Chata", "ideál"},
		{"CHata", "ideál"},
	}

	for _, tc := range tests {
		got, err := engine.Compare(ctx, tc.a, tc.b)
		if err != nil {
			t.Fatalf("Compare(%q,%q): %v", tc.a, tc.b, err)
		}
		if got != -1 {
			t.Fatalf("Compare(%q,%q) = %d, want -1", tc.a, tc.b, got)
		}
	}
}

func TestSpanishEnye(t *testing.T) {
	engine := builtinEngine(t)
	ctx := Context{Locale: "es"}

	got, err := engine.Sort(ctx, []string{"ñora", "nota", "obra", "Ñandú"})
	if err != nil {
		t.Fatalf("Sort: %v", err)
	}
	want := []string{"nota", "Ñandú", "ñora", "obra"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Sort = %v, want %v", got, want)
		}
	}
}

func TestFrenchAccentsAreSecondary(t *testing.T) {
	engine := builtinEngine(t)
	ctx := Context{Locale: "fr"}

	got, err := engine.Sort(ctx, []string{"côté", "côte", "coté", "cote"})
	if err != nil {
		t.Fatalf("Sort: %v", err)
	}
	want := []string{"cote", "coté", "côte", "côté"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Sort = %v, want %v", got, want)
		}
	}
}

func TestCollatorStrengths(t *testing.T) {
	engine := builtinEngine(t)

	tests := []struct {
		name     string
		locale   string
		strength Strength
		a, b     string
		want     int
	}{
		{name: "primary_ignores_case", locale: "en", strength: PrimaryStrength, a: "ABC", b: "abc", want: 0},
		{name: "primary_ignores_accents", locale: "fr", strength: PrimaryStrength, a: "côte", b: "cote", want: 0},
		{name: "secondary_sees_accents", locale: "fr", strength: SecondaryStrength, a: "côte", b: "cote", want: 1},
		{name: "secondary_ignores_case", locale: "en", strength: SecondaryStrength, a: "ABC", b: "abc", want: 0},
		{name: "tertiary_sees_case", locale: "en", strength: TertiaryStrength, a: "abc", b: "ABC", want: -1},
		{name: "secondary_equates_sharp_s", locale: "de", strength: SecondaryStrength, a: "straße", b: "strasse", want: 0},
		{name: "tertiary_splits_sharp_s", locale: "de", strength: TertiaryStrength, a: "strasse", b: "straße", want: -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			coll, err := engine.Collator(tc.locale, WithStrength(tc.strength))
			if err != nil {
				t.Fatalf("Collator: %v", err)
			}
			if got := coll.Compare(tc.a, tc.b); got != tc.want {
				t.Fatalf("Compare(%q,%q) = %d, want %d", tc.a, tc.b, got, tc.want)
			}
			if got := bytes.Compare(coll.Key(tc.a), coll.Key(tc.b)); got != tc.want {
				t.Fatalf("key order for %q vs %q = %d, want %d", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestCollatorInvalidStrength(t *testing.T) {
	engine := builtinEngine(t)

	if _, err := engine.Collator("en", WithStrength(0)); err == nil {
		t.Fatal("expected error for strength 0")
	}
	if _, err := engine.Collator("en", WithStrength(IdentityStrength+1)); err == nil {
		t.Fatal("expected error for out of range strength")
	}
}

func TestBytewiseCSort(t *testing.T) {
	engine := builtinEngine(t)
	ctx := Context{Locale: "C"}

	values := []string{"b", "B", "a", "A", "~", "0"}
	got, err := engine.Sort(ctx, values)
	if err != nil {
		t.Fatalf("Sort: %v", err)
	}

	want := append([]string(nil), values...)
	sort.Strings(want)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Sort = %v, want raw byte order %v", got, want)
		}
	}
}

func TestSortReturnsCopy(t *testing.T) {
	engine := builtinEngine(t)
	ctx := Context{Locale: "en"}

	values := []string{"b", "a", "c"}
	got, err := engine.Sort(ctx, values)
	if err != nil {
		t.Fatalf("Sort: %v", err)
	}

	if values[0] != "b" || values[1] != "a" || values[2] != "c" {
		t.Fatalf("input mutated: %v", values)
	}
	if got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Fatalf("Sort = %v, want [a b c]", got)
	}
}

func TestCompareNormalizesInput(t *testing.T) {
	engine := builtinEngine(t)
	ctx := Context{Locale: "sv"}

	// Composed and decomposed å collate identically up to the identity tier.
	composed := "å"
	decomposed := "å"

	coll, err := engine.Collator("sv", WithStrength(TertiaryStrength))
	if err != nil {
		t.Fatalf("Collator: %v", err)
	}
	if got := coll.Compare(composed, decomposed); got != 0 {
		t.Fatalf("Compare(composed, decomposed) = %d, want 0 at tertiary strength", got)
	}

	// At full strength the raw bytes still break the tie deterministically.
	got, err := engine.Compare(ctx, composed, decomposed)
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if got == 0 {
		t.Fatal("identity tier collapsed distinct strings")
	}
}
