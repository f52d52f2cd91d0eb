package locale

import "testing"

func TestNormalizeLocaleID(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "underscore", in: "tr_TR", want: "tr-TR"},
		{name: "already_canonical", in: "de-CH", want: "de-CH"},
		{name: "whitespace", in: "  en  ", want: "en"},
		{name: "both", in: " pt_BR ", want: "pt-BR"},
		{name: "empty", in: "", want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeLocaleID(tc.in); got != tc.want {
				t.Fatalf("NormalizeLocaleID(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizeLocaleIDsDedupeAndSort(t *testing.T) {
	got := normalizeLocaleIDs([]string{"tr_TR", "en", "tr-TR", "", " de "})
	want := []string{"de", "en", "tr-TR"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}

	if normalizeLocaleIDs(nil) != nil {
		t.Fatal("nil input should stay nil")
	}
}

func TestParentLocales(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "region", in: "de-CH", want: []string{"de"}},
		{name: "region_english", in: "en-US", want: []string{"en"}},
		{name: "underscore_form", in: "en_US", want: []string{"en"}},
		{name: "bare_language", in: "tr", want: nil},
		{name: "empty", in: "", want: nil},
		{
			name: "unparseable_walks_hyphens",
			in:   "abcdefghij-klmnop-qrs",
			want: []string{"abcdefghij-klmnop", "abcdefghij"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ParentLocales(tc.in)
			if len(got) != len(tc.want) {
				t.Fatalf("ParentLocales(%q) = %v, want %v", tc.in, got, tc.want)
			}
			for i := range tc.want {
				if got[i] != tc.want[i] {
					t.Fatalf("ParentLocales(%q) = %v, want %v", tc.in, got, tc.want)
				}
			}
		})
	}
}
