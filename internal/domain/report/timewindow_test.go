package report_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/textil-ops/internal/domain/report"
)

func TestDayWindow_LimitesInclusivos(t *testing.T) {
	now := time.Date(2026, time.March, 15, 13, 45, 12, 0, time.UTC)
	w := report.DayWindow(now)

	assert.Equal(t, time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.Date(2026, time.March, 15, 23, 59, 59, 999999999, time.UTC), w.End)

	assert.True(t, w.Contains(w.Start), "el inicio del día pertenece a la ventana")
	assert.True(t, w.Contains(w.End), "el fin del día pertenece a la ventana")
	assert.False(t, w.Contains(w.End.Add(time.Nanosecond)), "el día siguiente queda fuera")
}

func TestMonthWindow_FinDeMes(t *testing.T) {
	cases := []struct {
		name    string
		now     time.Time
		lastDay int
	}{
		{"mes de 31 días", time.Date(2026, time.January, 10, 8, 0, 0, 0, time.UTC), 31},
		{"febrero no bisiesto", time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC), 28},
		{"febrero bisiesto", time.Date(2028, time.February, 29, 23, 0, 0, 0, time.UTC), 29},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := report.MonthWindow(tc.now)
			assert.Equal(t, 1, w.Start.Day())
			assert.Equal(t, tc.lastDay, w.End.Day())
			assert.Equal(t, tc.now.Month(), w.Start.Month())
			assert.Equal(t, tc.now.Month(), w.End.Month())
			assert.True(t, w.Contains(tc.now))
		})
	}
}

func TestRollingDays_SieteDias(t *testing.T) {
	now := time.Date(2026, time.March, 15, 18, 30, 0, 0, time.UTC)
	labels := report.RollingDays(now, 7)

	require.Len(t, labels, 7)
	assert.Equal(t, "Mar 09", labels[0], "el primer bucket es el más antiguo")
	assert.Equal(t, "Mar 15", labels[6], "el último bucket es el día de now")
	assert.Equal(t, report.DayLabel(now), labels[6])
}

func TestRollingDays_CruceDeMes(t *testing.T) {
	now := time.Date(2026, time.March, 2, 12, 0, 0, 0, time.UTC)
	labels := report.RollingDays(now, 7)

	assert.Equal(t, []string{
		"Feb 24", "Feb 25", "Feb 26", "Feb 27", "Feb 28", "Mar 01", "Mar 02",
	}, labels)
}

func TestRollingDays_SinColisiones(t *testing.T) {
	// Incluye el cruce de año: "Dec 29" … "Jan 02" siguen siendo 7 etiquetas
	// distintas (la colisión teórica exigiría una ventana de un año exacto).
	now := time.Date(2027, time.January, 2, 0, 0, 0, 0, time.UTC)
	labels := report.RollingDays(now, 7)

	seen := make(map[string]bool, len(labels))
	for _, l := range labels {
		assert.False(t, seen[l], "etiqueta repetida: %s", l)
		seen[l] = true
	}
}
