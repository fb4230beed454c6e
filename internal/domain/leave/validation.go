// Package leave contiene las reglas puras de validación de solicitudes de
// licencia: parseo del rango de fechas y sus invariantes de calendario.
package leave

import (
	"time"

	"github.com/jhoicas/leave-api/internal/domain"
)

// DateLayout es el único formato aceptado para fechas de solicitud.
const DateLayout = "2006-01-02"

// ParseDate parsea una fecha calendario en formato YYYY-MM-DD.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, domain.ErrInvalidDateFormat
	}
	return t, nil
}

// ValidateRange aplica los invariantes del rango contra la fecha calendario
// "today" (hora local del servidor, truncada a día por Truncate):
//   - end >= start
//   - start >= today (no se aceptan solicitudes retroactivas)
func ValidateRange(start, end, today time.Time) error {
	if end.Before(start) {
		return domain.ErrEndBeforeStart
	}
	if start.Before(Truncate(today)) {
		return domain.ErrStartInPast
	}
	return nil
}

// Truncate reduce un instante a su fecha calendario en UTC, comparable con
// las fechas parseadas por ParseDate.
func Truncate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
