package view

import (
	"time"

	"github.com/javiermolinar/weekpick/internal/schedule"
)

// HeaderLabels builds column labels and marks today's column.
// The first label belongs to the time column and shows the month.
func HeaderLabels(days []time.Time, today time.Time) ([]string, map[int]bool) {
	labels := make([]string, 0, len(days)+1)
	todayCols := make(map[int]bool)

	month := ""
	if len(days) > 0 {
		month = days[0].Format("Jan 06")
	}
	labels = append(labels, month)

	for i, day := range days {
		label := string(schedule.NewDayKey(day))
		if sameDay(day, today) {
			label = "*" + label + "*"
			todayCols[i+1] = true
		}
		labels = append(labels, label)
	}

	return labels, todayCols
}

func sameDay(a, b time.Time) bool {
	ya, ma, da := a.Date()
	yb, mb, db := b.Date()
	return ya == yb && ma == mb && da == db
}
