package usecase

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jhoicas/tiyende-api/internal/domain"
)

// invalidf construye un error de validación que envuelve domain.ErrInvalidInput.
func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, fmt.Sprintf(format, args...))
}

// missingRef construye un error de referencia inexistente (vendor o ruta).
func missingRef(what string) error {
	return fmt.Errorf("%w: %s no encontrado", domain.ErrReferenceNotFound, what)
}

// validateClock valida horas en formato HH:MM (24h).
func validateClock(field, v string) error {
	if _, err := time.Parse("15:04", v); err != nil {
		return invalidf("%s debe tener formato HH:MM", field)
	}
	return nil
}

// NormalizeWeekdays normaliza nombres de día ("monday", "MONDAY" → "Monday"),
// elimina duplicados conservando el orden y rechaza nombres desconocidos.
func NormalizeWeekdays(days []string) ([]string, error) {
	valid := make(map[string]bool, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		valid[d.String()] = true
	}
	// un Caser guarda estado; no se comparte entre goroutines
	title := cases.Title(language.English)
	out := make([]string, 0, len(days))
	seen := make(map[string]bool, len(days))
	for _, raw := range days {
		d := title.String(strings.ToLower(strings.TrimSpace(raw)))
		if !valid[d] {
			return nil, invalidf("día de la semana inválido: %q", raw)
		}
		if !seen[d] {
			seen[d] = true
			out = append(out, d)
		}
	}
	return out, nil
}

// ParseTravelDate acepta YYYY-MM-DD o RFC3339.
func ParseTravelDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, invalidf("travelDate debe ser YYYY-MM-DD o RFC3339")
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

var referencePattern = regexp.MustCompile(`^[A-Za-z0-9-]+$`)

// validateReference acepta sólo letras, dígitos y guiones; la referencia
// termina en el nombre del PDF descargado.
func validateReference(ref string) error {
	if !referencePattern.MatchString(ref) {
		return invalidf("bookingReference sólo admite letras, dígitos y guiones")
	}
	return nil
}
