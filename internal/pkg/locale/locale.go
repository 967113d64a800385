// Package locale renders dates and times for Spanish-speaking customers.
package locale

import (
	"fmt"
	"strings"
	"time"
)

var weekdays = [...]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"}

var weekdaysPlural = [...]string{"domingos", "lunes", "martes", "miércoles", "jueves", "viernes", "sábados"}

var months = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// LongDate formats t as "martes, 20 de octubre de 2026".
func LongDate(t time.Time) string {
	return fmt.Sprintf("%s, %d de %s de %d", weekdays[t.Weekday()], t.Day(), months[t.Month()-1], t.Year())
}

// WeekdayPlural returns "domingos" for time.Sunday, as in "Los domingos no hay atención".
func WeekdayPlural(d time.Weekday) string {
	return weekdaysPlural[d]
}

// ShortDate converts "2026-10-20" or "2026-10-20T03:00:00.000Z" into "20/10/2026".
// Unparseable input is returned untouched.
func ShortDate(raw string) string {
	datePart, _, _ := strings.Cut(raw, "T")
	parts := strings.Split(datePart, "-")
	if len(parts) != 3 {
		return raw
	}
	return parts[2] + "/" + parts[1] + "/" + parts[0]
}

// ClockTime trims "14:00:00" to "14:00" (24h format).
func ClockTime(raw string) string {
	if len(raw) > 5 {
		return raw[:5]
	}
	return raw
}
