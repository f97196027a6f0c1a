// Package reporting contiene el motor de reportes: resúmenes financieros por
// ventana de tiempo, resultado mensual y proyección de agotamiento de stock.
// Solo lee el libro; nunca escribe.
package reporting

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Window rango de tiempo semiabierto [Start, End).
type Window struct {
	Start time.Time
	End   time.Time
}

// Windows las ventanas de agregación del dashboard, derivadas de un instante "now".
type Windows struct {
	Today         Window // [inicio de hoy, now)
	Yesterday     Window // [inicio de hoy − 1d, inicio de hoy)
	Last7Days     Window // [inicio de hoy − 7d, now)
	Prev7Days     Window // [inicio de hoy − 14d, inicio de hoy − 7d)
	CurrentMonth  Window // [día 1 del mes, now)
	PreviousMonth Window // mes calendario anterior completo
	Last30Days    Window // [now − 30d, now)
	Last365Days   Window // [now − 365d, now)
	AllTime       Window // sin límite inferior
}

// WindowsAt deriva todas las ventanas del dashboard a partir de `now`.
func WindowsAt(now time.Time) Windows {
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	prevMonthStart := monthStart.AddDate(0, -1, 0)

	return Windows{
		Today:         Window{todayStart, now},
		Yesterday:     Window{todayStart.AddDate(0, 0, -1), todayStart},
		Last7Days:     Window{todayStart.AddDate(0, 0, -7), now},
		Prev7Days:     Window{todayStart.AddDate(0, 0, -14), todayStart.AddDate(0, 0, -7)},
		CurrentMonth:  Window{monthStart, now},
		PreviousMonth: Window{prevMonthStart, monthStart},
		Last30Days:    Window{now.AddDate(0, 0, -30), now},
		Last365Days:   Window{now.AddDate(0, 0, -365), now},
		AllTime:       Window{time.Time{}, now},
	}
}

// Growth tasa de crecimiento porcentual entre un período y su comparable anterior.
// Con base cero: 100 si el actual es positivo, 0 si ambos son cero.
func Growth(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		if current.GreaterThan(decimal.Zero) {
			return hundred
		}
		return decimal.Zero
	}
	return current.Sub(previous).Div(previous).Mul(hundred).Round(2)
}

// MonthBounds devuelve los límites del mes calendario que queda `offset`
// meses atrás de `now` (0 = mes en curso, 1 = mes anterior, ...), con
// rollover de año manual. End es el último instante del mes (rango cerrado).
func MonthBounds(now time.Time, offset int) (start, end time.Time) {
	year, month := now.Year(), int(now.Month())
	month -= offset
	for month < 1 {
		month += 12
		year--
	}
	start = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, now.Location())
	end = start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}

// MonthLabel etiqueta legible de un mes, ej: "Febrero 2024".
func MonthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
