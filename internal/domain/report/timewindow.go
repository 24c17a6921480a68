// Package report implementa el motor de agregación y reportes: ventanas de
// calendario, folds de pedidos/devoluciones a totales y agrupaciones, y la
// composición del dashboard y de la liquidación mensual por proveedor.
//
// Todo el paquete es puro: recibe registros ya traídos por los casos de uso,
// no consulta la base ni muta sus entradas, y cada llamada devuelve
// estructuras valor nuevas.
package report

import "time"

// dayLabelFormat etiqueta estable de un día para las series, ej: "Jan 02".
// No incluye el año: dos días distintos solo podrían compartir etiqueta si la
// ventana cruzara exactamente un año completo, cosa imposible con las ventanas
// rodantes de 7 días que usa el dashboard. Se deja sin año a propósito para no
// cambiar las etiquetas que ya consumen las gráficas.
const dayLabelFormat = "Jan 02"

// Window ventana de tiempo con extremos inclusivos.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains informa si t cae dentro de la ventana (ambos extremos incluidos).
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// DayWindow devuelve la ventana del día calendario que contiene now:
// 00:00:00.000000000 – 23:59:59.999999999 en la zona horaria de now.
func DayWindow(now time.Time) Window {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return Window{Start: start, End: start.Add(24*time.Hour - time.Nanosecond)}
}

// MonthWindow devuelve la ventana del mes calendario que contiene now:
// día 1 a las 00:00 – último instante del último día del mes.
func MonthWindow(now time.Time) Window {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return Window{Start: start, End: start.AddDate(0, 1, 0).Add(-time.Nanosecond)}
}

// DayLabel devuelve la etiqueta de bucket del día que contiene t.
func DayLabel(t time.Time) string {
	return t.Format(dayLabelFormat)
}

// RollingDays devuelve las etiquetas de los últimos n días, del más antiguo al
// más reciente; la última etiqueta corresponde al día de now.
func RollingDays(now time.Time, n int) []string {
	labels := make([]string, 0, n)
	for i := n - 1; i >= 0; i-- {
		labels = append(labels, DayLabel(now.AddDate(0, 0, -i)))
	}
	return labels
}
