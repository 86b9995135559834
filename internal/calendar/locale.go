package calendar

import (
	"strings"
	"time"

	"golang.org/x/text/language"
)

// DefaultLocale is used whenever a locale tag is empty, "default" or cannot be matched.
const DefaultLocale = "en"

// Locale holds the localized names a Day needs. Weekday arrays are indexed by time.Weekday.
type Locale struct {
	Tag           string
	Months        [12]string
	MonthsShort   [12]string
	Weekdays      [7]string
	WeekdaysShort [7]string
	FirstWeekday  time.Weekday
}

// Ordinal returns the 1-based position of wd within this locale's week.
func (l Locale) Ordinal(wd time.Weekday) int {
	return (int(wd)-int(l.FirstWeekday)+7)%7 + 1
}

// localeOrder fixes matcher indexes; the first entry is the fallback.
var localeOrder = []string{"en", "de", "fr", "es", "it", "nl", "pt", "ru"}

var locales = map[string]Locale{
	"en": {
		Tag:           "en",
		Months:        [12]string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
		MonthsShort:   [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
		Weekdays:      [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
		WeekdaysShort: [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
		FirstWeekday:  time.Sunday,
	},
	"de": {
		Tag:           "de",
		Months:        [12]string{"Januar", "Februar", "März", "April", "Mai", "Juni", "Juli", "August", "September", "Oktober", "November", "Dezember"},
		MonthsShort:   [12]string{"Jan.", "Feb.", "März", "Apr.", "Mai", "Juni", "Juli", "Aug.", "Sept.", "Okt.", "Nov.", "Dez."},
		Weekdays:      [7]string{"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag"},
		WeekdaysShort: [7]string{"So.", "Mo.", "Di.", "Mi.", "Do.", "Fr.", "Sa."},
		FirstWeekday:  time.Monday,
	},
	"fr": {
		Tag:           "fr",
		Months:        [12]string{"janvier", "février", "mars", "avril", "mai", "juin", "juillet", "août", "septembre", "octobre", "novembre", "décembre"},
		MonthsShort:   [12]string{"janv.", "févr.", "mars", "avr.", "mai", "juin", "juil.", "août", "sept.", "oct.", "nov.", "déc."},
		Weekdays:      [7]string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"},
		WeekdaysShort: [7]string{"dim.", "lun.", "mar.", "mer.", "jeu.", "ven.", "sam."},
		FirstWeekday:  time.Monday,
	},
	"es": {
		Tag:           "es",
		Months:        [12]string{"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
		MonthsShort:   [12]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sept", "oct", "nov", "dic"},
		Weekdays:      [7]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"},
		WeekdaysShort: [7]string{"dom", "lun", "mar", "mié", "jue", "vie", "sáb"},
		FirstWeekday:  time.Monday,
	},
	"it": {
		Tag:           "it",
		Months:        [12]string{"gennaio", "febbraio", "marzo", "aprile", "maggio", "giugno", "luglio", "agosto", "settembre", "ottobre", "novembre", "dicembre"},
		MonthsShort:   [12]string{"gen", "feb", "mar", "apr", "mag", "giu", "lug", "ago", "set", "ott", "nov", "dic"},
		Weekdays:      [7]string{"domenica", "lunedì", "martedì", "mercoledì", "giovedì", "venerdì", "sabato"},
		WeekdaysShort: [7]string{"dom", "lun", "mar", "mer", "gio", "ven", "sab"},
		FirstWeekday:  time.Monday,
	},
	"nl": {
		Tag:           "nl",
		Months:        [12]string{"januari", "februari", "maart", "april", "mei", "juni", "juli", "augustus", "september", "oktober", "november", "december"},
		MonthsShort:   [12]string{"jan", "feb", "mrt", "apr", "mei", "jun", "jul", "aug", "sep", "okt", "nov", "dec"},
		Weekdays:      [7]string{"zondag", "maandag", "dinsdag", "woensdag", "donderdag", "vrijdag", "zaterdag"},
		WeekdaysShort: [7]string{"zo", "ma", "di", "wo", "do", "vr", "za"},
		FirstWeekday:  time.Monday,
	},
	"pt": {
		Tag:           "pt",
		Months:        [12]string{"janeiro", "fevereiro", "março", "abril", "maio", "junho", "julho", "agosto", "setembro", "outubro", "novembro", "dezembro"},
		MonthsShort:   [12]string{"jan.", "fev.", "mar.", "abr.", "mai.", "jun.", "jul.", "ago.", "set.", "out.", "nov.", "dez."},
		Weekdays:      [7]string{"domingo", "segunda-feira", "terça-feira", "quarta-feira", "quinta-feira", "sexta-feira", "sábado"},
		WeekdaysShort: [7]string{"dom.", "seg.", "ter.", "qua.", "qui.", "sex.", "sáb."},
		FirstWeekday:  time.Sunday,
	},
	"ru": {
		Tag:           "ru",
		Months:        [12]string{"январь", "февраль", "март", "апрель", "май", "июнь", "июль", "август", "сентябрь", "октябрь", "ноябрь", "декабрь"},
		MonthsShort:   [12]string{"янв.", "февр.", "март", "апр.", "май", "июнь", "июль", "авг.", "сент.", "окт.", "нояб.", "дек."},
		Weekdays:      [7]string{"воскресенье", "понедельник", "вторник", "среда", "четверг", "пятница", "суббота"},
		WeekdaysShort: [7]string{"вс", "пн", "вт", "ср", "чт", "пт", "сб"},
		FirstWeekday:  time.Monday,
	},
}

var matcher = newMatcher()

func newMatcher() language.Matcher {
	tags := make([]language.Tag, 0, len(localeOrder))
	for _, code := range localeOrder {
		tags = append(tags, language.MustParse(code))
	}
	return language.NewMatcher(tags)
}

// ResolveLocale maps a BCP 47 or POSIX-style tag to a built-in locale.
// Anything unparsable or unsupported resolves to DefaultLocale.
func ResolveLocale(tag string) Locale {
	tag = strings.TrimSpace(tag)
	if i := strings.IndexAny(tag, ".@"); i >= 0 {
		tag = tag[:i]
	}
	tag = strings.ReplaceAll(tag, "_", "-")
	if tag == "" || strings.EqualFold(tag, "default") || strings.EqualFold(tag, "C") || strings.EqualFold(tag, "POSIX") {
		return locales[DefaultLocale]
	}
	parsed, err := language.Parse(tag)
	if err != nil {
		return locales[DefaultLocale]
	}
	_, idx, conf := matcher.Match(parsed)
	if conf == language.No || idx < 0 || idx >= len(localeOrder) {
		return locales[DefaultLocale]
	}
	return locales[localeOrder[idx]]
}

// SupportedLocales lists the built-in locale tags, fallback first.
func SupportedLocales() []string {
	out := make([]string, len(localeOrder))
	copy(out, localeOrder)
	return out
}
