package locale

// Tailoring constructors for the common case of a letter collating as its
// own position in the alphabet rather than as an accented variant.

func letterElem(primary uint32) CollationElem {
	return CollationElem{Primary: primary, Secondary: defaultSecondary, Tertiary: tertiaryLower}
}

func upperLetterElem(primary uint32) CollationElem {
	return CollationElem{Primary: primary, Secondary: defaultSecondary, Tertiary: tertiaryUpper}
}

func letterTailoring(source string, primary uint32) Tailoring {
	return Tailoring{Source: source, Elems: []CollationElem{letterElem(primary)}}
}

func upperTailoring(source string, primary uint32) Tailoring {
	return Tailoring{Source: source, Elems: []CollationElem{upperLetterElem(primary)}}
}

// builtinLocaleData contains the hand maintained locale tables. Tailoring
// sources are in NFC form because input is NFC normalized before matching.
// Name only locales live in locales_gen.go and come from data/locales via
// cmd/locale-gen.
var builtinLocaleData = map[string]*LocaleData{
	// The portable pseudo locale: raw byte order, ASCII only casing,
	// English calendar names.
	"C": {
		Code: "C",
		Names: CalendarNames{
			Months: [12]string{
				"January", "February", "March", "April", "May", "June",
				"July", "August", "September", "October", "November", "December",
			},
			MonthsAbbr: [12]string{
				"Jan", "Feb", "Mar", "Apr", "May", "Jun",
				"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
			},
			Weekdays: [7]string{
				"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
			},
			WeekdaysAbbr: [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
			DayPeriods:   [2]string{"AM", "PM"},
		},
		ASCIICasing: true,
		Collation:   CollationTable{Bytewise: true},
		Number:      NumberFormat{DecimalSep: ".", Decimals: -1},
	},

	"cs": {
		Code: "cs",
		Names: CalendarNames{
			Months: [12]string{
				"leden", "únor", "březen", "duben", "květen", "červen",
				"červenec", "srpen", "září", "říjen", "listopad", "prosinec",
			},
			MonthsAbbr: [12]string{
				"led", "úno", "bře", "dub", "kvě", "čvn",
				"čvc", "srp", "zář", "říj", "lis", "pro",
			},
			Weekdays: [7]string{
				"neděle", "pondělí", "úterý", "středa", "čtvrtek", "pátek", "sobota",
			},
			WeekdaysAbbr: [7]string{"ne", "po", "út", "st", "čt", "pá", "so"},
			DayPeriods:   [2]string{"dop.", "odp."},
		},
		Collation: CollationTable{
			// č, ch, ř, š and ž are letters of their own; ch is a digraph
			// that sorts between h and i in any case mix. Other accents
			// stay secondary differences.
			Tailorings: []Tailoring{
				letterTailoring("č", letterAfter('c', 2)),
				upperTailoring("Č", letterAfter('c', 2)),
				letterTailoring("ch", letterAfter('h', 2)),
				letterTailoring("cH", letterAfter('h', 2)),
				upperTailoring("Ch", letterAfter('h', 2)),
				upperTailoring("CH", letterAfter('h', 2)),
				letterTailoring("ř", letterAfter('r', 2)),
				upperTailoring("Ř", letterAfter('r', 2)),
				letterTailoring("š", letterAfter('s', 2)),
				upperTailoring("Š", letterAfter('s', 2)),
				letterTailoring("ž", letterAfter('z', 2)),
				upperTailoring("Ž", letterAfter('z', 2)),
			},
		},
		Number: NumberFormat{DecimalSep: ",", GroupSep: " ", Decimals: -1},
	},

	"de": {
		Code: "de",
		Names: CalendarNames{
			Months: [12]string{
				"Januar", "Februar", "März", "April", "Mai", "Juni",
				"Juli", "August", "September", "Oktober", "November", "Dezember",
			},
			MonthsAbbr: [12]string{
				"Jan", "Feb", "Mär", "Apr", "Mai", "Jun",
				"Jul", "Aug", "Sep", "Okt", "Nov", "Dez",
			},
			Weekdays: [7]string{
				"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag",
			},
			WeekdaysAbbr: [7]string{"So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"},
			DayPeriods:   [2]string{"AM", "PM"},
		},
		Collation: CollationTable{
			// ß expands to a double s; umlauts derive as base plus mark and
			// need no tailoring in dictionary order.
			Tailorings: []Tailoring{
				{Source: "ß", Elems: []CollationElem{
					letterElem(primaryFor('s')),
					{Primary: primaryFor('s'), Secondary: defaultSecondary, Tertiary: tertiaryExpand},
				}},
				{Source: "ẞ", Elems: []CollationElem{
					upperLetterElem(primaryFor('s')),
					{Primary: primaryFor('s'), Secondary: defaultSecondary, Tertiary: tertiaryExpand},
				}},
			},
		},
		Number: NumberFormat{DecimalSep: ",", GroupSep: ".", Decimals: -1},
	},

	"en": {
		Code: "en",
		Names: CalendarNames{
			Months: [12]string{
				"January", "February", "March", "April", "May", "June",
				"July", "August", "September", "October", "November", "December",
			},
			MonthsAbbr: [12]string{
				"Jan", "Feb", "Mar", "Apr", "May", "Jun",
				"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
			},
			Weekdays: [7]string{
				"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
			},
			WeekdaysAbbr: [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
			DayPeriods:   [2]string{"AM", "PM"},
		},
		Number: NumberFormat{DecimalSep: ".", GroupSep: ",", Decimals: -1},
	},

	"es": {
		Code: "es",
		Names: CalendarNames{
			Months: [12]string{
				"enero", "febrero", "marzo", "abril", "mayo", "junio",
				"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
			},
			MonthsAbbr: [12]string{
				"ene", "feb", "mar", "abr", "may", "jun",
				"jul", "ago", "sep", "oct", "nov", "dic",
			},
			Weekdays: [7]string{
				"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado",
			},
			WeekdaysAbbr: [7]string{"dom", "lun", "mar", "mié", "jue", "vie", "sáb"},
			DayPeriods:   [2]string{"a. m.", "p. m."},
		},
		Collation: CollationTable{
			// ñ is its own letter between n and o.
			Tailorings: []Tailoring{
				letterTailoring("ñ", letterAfter('n', 2)),
				upperTailoring("Ñ", letterAfter('n', 2)),
			},
		},
		Number: NumberFormat{DecimalSep: ",", GroupSep: ".", Decimals: -1},
	},

	"fr": {
		Code: "fr",
		Names: CalendarNames{
			Months: [12]string{
				"janvier", "février", "mars", "avril", "mai", "juin",
				"juillet", "août", "septembre", "octobre", "novembre", "décembre",
			},
			MonthsAbbr: [12]string{
				"janv.", "févr.", "mars", "avr.", "mai", "juin",
				"juil.", "août", "sept.", "oct.", "nov.", "déc.",
			},
			Weekdays: [7]string{
				"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi",
			},
			WeekdaysAbbr: [7]string{"dim.", "lun.", "mar.", "mer.", "jeu.", "ven.", "sam."},
			DayPeriods:   [2]string{"AM", "PM"},
		},
		// Accents derive as secondary marks, so cote < coté < côte < côté.
		Number: NumberFormat{DecimalSep: ",", GroupSep: " ", Decimals: -1},
	},

	"sv": {
		Code: "sv",
		Names: CalendarNames{
			Months: [12]string{
				"januari", "februari", "mars", "april", "maj", "juni",
				"juli", "augusti", "september", "oktober", "november", "december",
			},
			MonthsAbbr: [12]string{
				"jan", "feb", "mar", "apr", "maj", "jun",
				"jul", "aug", "sep", "okt", "nov", "dec",
			},
			Weekdays: [7]string{
				"söndag", "måndag", "tisdag", "onsdag", "torsdag", "fredag", "lördag",
			},
			WeekdaysAbbr: [7]string{"sön", "mån", "tis", "ons", "tor", "fre", "lör"},
			DayPeriods:   [2]string{"fm", "em"},
		},
		Collation: CollationTable{
			// å, ä and ö follow z at the end of the alphabet.
			Tailorings: []Tailoring{
				letterTailoring("å", letterAfter('z', 1)),
				upperTailoring("Å", letterAfter('z', 1)),
				letterTailoring("ä", letterAfter('z', 2)),
				upperTailoring("Ä", letterAfter('z', 2)),
				letterTailoring("ö", letterAfter('z', 3)),
				upperTailoring("Ö", letterAfter('z', 3)),
			},
		},
		Number: NumberFormat{DecimalSep: ",", GroupSep: " ", Decimals: -1},
	},

	"tr": {
		Code: "tr",
		Names: CalendarNames{
			Months: [12]string{
				"Ocak", "Şubat", "Mart", "Nisan", "Mayıs", "Haziran",
				"Temmuz", "Ağustos", "Eylül", "Ekim", "Kasım", "Aralık",
			},
			MonthsAbbr: [12]string{
				"Oca", "Şub", "Mar", "Nis", "May", "Haz",
				"Tem", "Ağu", "Eyl", "Eki", "Kas", "Ara",
			},
			Weekdays: [7]string{
				"Pazar", "Pazartesi", "Salı", "Çarşamba", "Perşembe", "Cuma", "Cumartesi",
			},
			WeekdaysAbbr: [7]string{"Paz", "Pzt", "Sal", "Çar", "Per", "Cum", "Cmt"},
			DayPeriods:   [2]string{"ÖÖ", "ÖS"},
		},
		// The four way i: dotted and dotless pairs case and fold within
		// their own pair, never across.
		Casing: []CaseRule{
			{From: "I", Lower: "ı", Fold: "ı"},
			{From: "ı", Upper: "I"},
			{From: "İ", Lower: "i", Fold: "i"},
			{From: "i", Upper: "İ"},
		},
		Collation: CollationTable{
			// ç, ğ, ı, ö, ş and ü are letters of their own; ı sits between
			// h and i, which also moves the capital I away from i. İ
			// derives to the i position on its own.
			Tailorings: []Tailoring{
				letterTailoring("ç", letterAfter('c', 1)),
				upperTailoring("Ç", letterAfter('c', 1)),
				letterTailoring("ğ", letterAfter('g', 1)),
				upperTailoring("Ğ", letterAfter('g', 1)),
				letterTailoring("ı", letterAfter('h', 1)),
				upperTailoring("I", letterAfter('h', 1)),
				letterTailoring("ö", letterAfter('o', 1)),
				upperTailoring("Ö", letterAfter('o', 1)),
				letterTailoring("ş", letterAfter('s', 1)),
				upperTailoring("Ş", letterAfter('s', 1)),
				letterTailoring("ü", letterAfter('u', 1)),
				upperTailoring("Ü", letterAfter('u', 1)),
			},
		},
		Number: NumberFormat{DecimalSep: ",", GroupSep: ".", Decimals: -1},
	},
}
