package locale

import (
	"errors"
	"testing"
	"time"
)

func TestFormatTime(t *testing.T) {
	engine := builtinEngine(t)
	when := time.Date(2027, time.January, 14, 9, 5, 7, 0, time.UTC)

	tests := []struct {
		name    string
		ctx     Context
		pattern string
		want    string
	}{
		{
			name:    "en_date",
			ctx:     Context{Locale: "en", TimeZone: "UTC"},
			pattern: "{month_name} {day}, {year}",
			want:    "January 14, 2027",
		},
		{
			name:    "de_weekday",
			ctx:     Context{Locale: "de", TimeZone: "UTC"},
			pattern: "{weekday}, {day}. {month_name} {year}",
			want:    "Donnerstag, 14. Januar 2027",
		},
		{
			name:    "tr_names",
			ctx:     Context{Locale: "tr", TimeZone: "UTC"},
			pattern: "{day} {month_name} {year} {weekday}",
			want:    "14 Ocak 2027 Perşembe",
		},
		{
			name:    "clock_24h",
			ctx:     Context{Locale: "en", TimeZone: "UTC"},
			pattern: "{hour}:{minute}:{second}",
			want:    "09:05:07",
		},
		{
			name:    "clock_12h",
			ctx:     Context{Locale: "en", TimeZone: "UTC"},
			pattern: "{hour12}:{minute} {ampm}",
			want:    "09:05 AM",
		},
		{
			name:    "zone_conversion",
			ctx:     Context{Locale: "tr", TimeZone: "Europe/Istanbul"},
			pattern: "{hour}:{minute} {offset}",
			want:    "12:05 +03:00",
		},
		{
			name:    "abbreviated",
			ctx:     Context{Locale: "es", TimeZone: "UTC"},
			pattern: "{weekday_abbr} {day} {month_abbr}",
			want:    "jue 14 ene",
		},
		{
			name:    "utc_offset",
			ctx:     Context{Locale: "en", TimeZone: "UTC"},
			pattern: "{offset}",
			want:    "+00:00",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := engine.FormatTime(tc.ctx, when, tc.pattern)
			if err != nil {
				t.Fatalf("FormatTime: %v", err)
			}
			if got != tc.want {
				t.Fatalf("FormatTime = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFormatTimeHour12Noon(t *testing.T) {
	engine := builtinEngine(t)
	ctx := Context{Locale: "en", TimeZone: "UTC"}

	tests := []struct {
		hour int
		want string
	}{
		{hour: 0, want: "12:00 AM"},
		{hour: 11, want: "11:00 AM"},
		{hour: 12, want: "12:00 PM"},
		{hour: 23, want: "11:00 PM"},
	}

	for _, tc := range tests {
		when := time.Date(2026, time.June, 1, tc.hour, 0, 0, 0, time.UTC)
		got, err := engine.FormatTime(ctx, when, "{hour12}:{minute} {ampm}")
		if err != nil {
			t.Fatalf("FormatTime: %v", err)
		}
		if got != tc.want {
			t.Fatalf("hour %d = %q, want %q", tc.hour, got, tc.want)
		}
	}
}

func TestParseTimeRoundTrip(t *testing.T) {
	engine := builtinEngine(t)

	tests := []struct {
		name    string
		ctx     Context
		pattern string
		when    time.Time
	}{
		{
			name:    "offset_full",
			ctx:     Context{Locale: "en", TimeZone: "UTC"},
			pattern: "{year}-{month}-{day} {hour}:{minute}:{second} {offset}",
			when:    time.Date(2026, time.August, 24, 18, 45, 9, 0, time.UTC),
		},
		{
			name:    "istanbul_offset",
			ctx:     Context{Locale: "tr", TimeZone: "Europe/Istanbul"},
			pattern: "{day} {month_name} {year} {hour}:{minute}:{second} {offset}",
			when:    time.Date(2027, time.January, 14, 9, 30, 0, 0, time.UTC),
		},
		{
			name:    "names_wall_clock",
			ctx:     Context{Locale: "de", TimeZone: "Europe/Berlin"},
			pattern: "{weekday}, {day}. {month_name} {year}, {hour}:{minute}:{second}",
			when:    time.Date(2026, time.December, 11, 7, 0, 30, 0, time.UTC),
		},
		{
			name:    "ampm_round_trip",
			ctx:     Context{Locale: "en", TimeZone: "UTC"},
			pattern: "{year}-{month}-{day} {hour12}:{minute}:{second} {ampm}",
			when:    time.Date(2026, time.February, 1, 0, 30, 15, 0, time.UTC),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			text, err := engine.FormatTime(tc.ctx, tc.when, tc.pattern)
			if err != nil {
				t.Fatalf("FormatTime: %v", err)
			}
			back, err := engine.ParseTime(tc.ctx, text, tc.pattern)
			if err != nil {
				t.Fatalf("ParseTime(%q): %v", text, err)
			}
			if !back.Equal(tc.when) {
				t.Fatalf("round trip %q: got %v, want %v", text, back, tc.when)
			}
		})
	}
}

func TestParseTimeCaseInsensitiveNames(t *testing.T) {
	engine := builtinEngine(t)

	tests := []struct {
		name    string
		ctx     Context
		input   string
		pattern string
		want    time.Time
	}{
		{
			name:    "tr_upper_month",
			ctx:     Context{Locale: "tr", TimeZone: "UTC"},
			input:   "14 OCAK 2027",
			pattern: "{day} {month_name} {year}",
			want:    time.Date(2027, time.January, 14, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "tr_dotted_capital",
			ctx:     Context{Locale: "tr", TimeZone: "UTC"},
			input:   "01 EKİM 2026",
			pattern: "{day} {month_name} {year}",
			want:    time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "en_mixed_case",
			ctx:     Context{Locale: "en", TimeZone: "UTC"},
			input:   "14 jAnUaRy 2027",
			pattern: "{day} {month_name} {year}",
			want:    time.Date(2027, time.January, 14, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "de_upper_weekday",
			ctx:     Context{Locale: "de", TimeZone: "UTC"},
			input:   "DONNERSTAG 14 01 2027",
			pattern: "{weekday} {day} {month} {year}",
			want:    time.Date(2027, time.January, 14, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := engine.ParseTime(tc.ctx, tc.input, tc.pattern)
			if err != nil {
				t.Fatalf("ParseTime: %v", err)
			}
			if !got.Equal(tc.want) {
				t.Fatalf("ParseTime = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestParseTimeLongestNameWins(t *testing.T) {
	engine := builtinEngine(t)
	ctx := Context{Locale: "tr", TimeZone: "UTC"}

	// Cuma is a prefix of Cumartesi; the longer name must win.
	got, err := engine.ParseTime(ctx, "Cumartesi 16 01 2027", "{weekday} {day} {month} {year}")
	if err != nil {
		t.Fatalf("ParseTime: %v", err)
	}
	want := time.Date(2027, time.January, 16, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("ParseTime = %v, want %v", got, want)
	}
}

func TestParseTimeWeekdayNotCrossChecked(t *testing.T) {
	engine := builtinEngine(t)
	ctx := Context{Locale: "de", TimeZone: "UTC"}

	// 2026-03-15 is a Sunday; a mismatched weekday name still parses.
	got, err := engine.ParseTime(ctx, "Montag, 15. März 2026", "{weekday}, {day}. {month_name} {year}")
	if err != nil {
		t.Fatalf("ParseTime: %v", err)
	}
	want := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("ParseTime = %v, want %v", got, want)
	}
}

func TestParseTimeDefaults(t *testing.T) {
	engine := builtinEngine(t)
	ctx := Context{Locale: "en", TimeZone: "UTC"}

	got, err := engine.ParseTime(ctx, "18:30", "{hour}:{minute}")
	if err != nil {
		t.Fatalf("ParseTime: %v", err)
	}
	want := time.Date(1970, time.January, 1, 18, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("ParseTime = %v, want epoch date %v", got, want)
	}
}

func TestParseTimeOffsetWins(t *testing.T) {
	engine := builtinEngine(t)
	// The context zone is Istanbul but the text carries its own offset.
	ctx := Context{Locale: "en", TimeZone: "Europe/Istanbul"}

	got, err := engine.ParseTime(ctx, "2026-06-01 12:00:00 -05:30", "{year}-{month}-{day} {hour}:{minute}:{second} {offset}")
	if err != nil {
		t.Fatalf("ParseTime: %v", err)
	}
	want := time.Date(2026, time.June, 1, 17, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("ParseTime = %v, want %v", got.UTC(), want)
	}
}

func TestParseTimeErrors(t *testing.T) {
	engine := builtinEngine(t)
	ctx := Context{Locale: "en", TimeZone: "UTC"}

	tests := []struct {
		name    string
		input   string
		pattern string
		wantPos int
	}{
		{name: "bad_digit", input: "20a7-01-14", pattern: "{year}-{month}-{day}", wantPos: 2},
		{name: "short_input", input: "202", pattern: "{year}", wantPos: 0},
		{name: "literal_mismatch", input: "2027/01/14", pattern: "{year}-{month}-{day}", wantPos: 4},
		{name: "trailing_input", input: "2027-01-14x", pattern: "{year}-{month}-{day}", wantPos: 10},
		{name: "month_range", input: "2027-13-01", pattern: "{year}-{month}-{day}", wantPos: 5},
		{name: "day_range", input: "2027-02-30", pattern: "{year}-{month}-{day}", wantPos: 8},
		{name: "no_name_match", input: "14 Brumaire 2027", pattern: "{day} {month_name} {year}", wantPos: 3},
		{name: "bad_offset_sign", input: "12:00 02:00", pattern: "{hour}:{minute} {offset}", wantPos: 6},
		{name: "hour_range", input: "25:00", pattern: "{hour}:{minute}", wantPos: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := engine.ParseTime(ctx, tc.input, tc.pattern)
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("ParseTime err = %v, want *ParseError", err)
			}
			if parseErr.Position != tc.wantPos {
				t.Fatalf("Position = %d, want %d (%v)", parseErr.Position, tc.wantPos, parseErr)
			}
			if parseErr.Input != tc.input {
				t.Fatalf("Input = %q, want %q", parseErr.Input, tc.input)
			}
		})
	}
}

func TestParseTimeAmbiguousNames(t *testing.T) {
	data := builtinLocaleData["en"].Clone()
	data.Code = "xx"
	// Two distinct abbreviations that fold to the same text.
	data.Names.MonthsAbbr[2] = "mar"
	data.Names.MonthsAbbr[4] = "MAR"

	engine, err := New(WithProvider(NewStaticProvider(map[string]*LocaleData{"xx": data})))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, err = engine.ParseTime(Context{Locale: "xx", TimeZone: "UTC"}, "14 mar 2027", "{day} {month_abbr} {year}")
	var ambiguous *AmbiguousFormatError
	if !errors.As(err, &ambiguous) {
		t.Fatalf("ParseTime err = %v, want *AmbiguousFormatError", err)
	}
	if ambiguous.Token != "month_abbr" || len(ambiguous.Candidates) != 2 {
		t.Fatalf("ambiguity = %+v, want month_abbr with two candidates", ambiguous)
	}
	if ambiguous.Position != 3 {
		t.Fatalf("Position = %d, want 3", ambiguous.Position)
	}
}

func TestPatternErrors(t *testing.T) {
	engine := builtinEngine(t)
	ctx := Context{Locale: "en", TimeZone: "UTC"}
	when := time.Date(2027, time.January, 14, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		pattern string
	}{
		{name: "unknown_token", pattern: "{epoch}"},
		{name: "unterminated", pattern: "{year"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := engine.FormatTime(ctx, when, tc.pattern); !errors.Is(err, ErrInvalidPattern) {
				t.Fatalf("FormatTime err = %v, want ErrInvalidPattern", err)
			}
			if _, err := engine.ParseTime(ctx, "x", tc.pattern); !errors.Is(err, ErrInvalidPattern) {
				t.Fatalf("ParseTime err = %v, want ErrInvalidPattern", err)
			}
		})
	}
}

func TestParseTimeHour12NeedsDayPeriod(t *testing.T) {
	engine := builtinEngine(t)
	ctx := Context{Locale: "en", TimeZone: "UTC"}

	// Formatting is fine, parsing would name two instants.
	when := time.Date(2027, time.January, 14, 15, 0, 0, 0, time.UTC)
	if _, err := engine.FormatTime(ctx, when, "{hour12}:{minute}"); err != nil {
		t.Fatalf("FormatTime: %v", err)
	}

	_, err := engine.ParseTime(ctx, "03:00", "{hour12}:{minute}")
	if !errors.Is(err, ErrInvalidPattern) {
		t.Fatalf("ParseTime err = %v, want ErrInvalidPattern", err)
	}
}

func TestTimeZoneHandling(t *testing.T) {
	engine := builtinEngine(t)
	when := time.Date(2027, time.January, 14, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		zone string
	}{
		{name: "empty", zone: ""},
		{name: "local", zone: "Local"},
		{name: "unknown", zone: "Mars/Olympus"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctx := Context{Locale: "en", TimeZone: tc.zone}
			if _, err := engine.FormatTime(ctx, when, "{year}"); !errors.Is(err, ErrUnknownTimeZone) {
				t.Fatalf("FormatTime err = %v, want ErrUnknownTimeZone", err)
			}
			if _, err := engine.ParseTime(ctx, "2027", "{year}"); !errors.Is(err, ErrUnknownTimeZone) {
				t.Fatalf("ParseTime err = %v, want ErrUnknownTimeZone", err)
			}
		})
	}
}

func TestLoadTimeZone(t *testing.T) {
	loc, err := LoadTimeZone("Europe/Istanbul")
	if err != nil {
		t.Fatalf("LoadTimeZone: %v", err)
	}
	if loc.String() != "Europe/Istanbul" {
		t.Fatalf("zone = %q, want Europe/Istanbul", loc)
	}

	if _, err := LoadTimeZone("Local"); !errors.Is(err, ErrUnknownTimeZone) {
		t.Fatalf("LoadTimeZone(Local) err = %v, want ErrUnknownTimeZone", err)
	}
}
