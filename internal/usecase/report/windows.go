package report

import (
	"time"

	"github.com/dsousa/barber-ledger/internal/domain"
)

// Стандартные окна отчётов. Вычисляются на стороне вызывающего
// относительно переданного "сейчас" и передаются в Execute без изменений.

// Today окно в один календарный день
func Today(now time.Time) Window {
	day := domain.DateOnly(now)
	return Window{Start: day, End: day}
}

// ThisWeek окно с понедельника по воскресенье недели, содержащей now
func ThisWeek(now time.Time) Window {
	day := domain.DateOnly(now)

	// time.Weekday нумерует воскресенье нулём, неделя отчёта начинается с понедельника
	offset := int(day.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}

	start := day.AddDate(0, 0, -offset)
	return Window{Start: start, End: start.AddDate(0, 0, 6)}
}

// ThisMonth окно с первого по последний календарный день месяца now
func ThisMonth(now time.Time) Window {
	day := domain.DateOnly(now)
	start := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
	return Window{Start: start, End: start.AddDate(0, 1, -1)}
}
