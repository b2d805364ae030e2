package domain

import (
	"time"

	"github.com/dsousa/barber-ledger/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	// StatusScheduled запись создана, но клиент ещё не обслужен
	StatusScheduled AppointmentStatus = "scheduled"
	// StatusCompleted клиент обслужен, сумма учитывается в выручке.
	// Переход односторонний: обратного перехода в scheduled нет.
	StatusCompleted AppointmentStatus = "completed"
)

// Appointment represents a client booking: one client, one or more services,
// a date and a start time. Value and duration are denormalized at save time
// and are not recalculated when the catalog changes later.
type Appointment struct {
	ID         string
	ClientName string
	// ServiceIDs выбранные услуги в порядке выбора, дубликаты допустимы.
	// Ссылка на удалённую услугу не является ошибкой: такая позиция просто
	// не находит имени и не даёт вклада при пересчёте.
	ServiceIDs []string
	Date       time.Time // только календарная дата, без времени
	StartTime  types.TimeString
	// EndTime производное поле: StartTime + TotalDuration минут.
	// Переход через полночь не переносит запись на следующий день.
	EndTime       types.TimeString
	TotalValue    float64
	TotalDuration int // minutes
	Status        AppointmentStatus
}

// IsCompleted returns true if the appointment has been completed
func (a *Appointment) IsCompleted() bool {
	return a.Status == StatusCompleted
}

// Complete переводит запись в статус completed (идемпотентно)
func (a *Appointment) Complete() {
	a.Status = StatusCompleted
}

// IsOnDate returns true if the appointment falls on the given calendar day
func (a *Appointment) IsOnDate(date time.Time) bool {
	return SameDate(a.Date, date)
}

// SameDate сравнивает два момента времени по календарной дате
func SameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// DateOnly обнуляет компонент времени, оставляя календарную дату
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DateWithin returns true if date falls within [start, end] inclusive,
// compared at calendar-day granularity. Сравниваются календарные даты в
// собственных локациях аргументов, а не моменты времени: дата из снапшота
// (UTC) и окно от локальных часов должны попадать в один день.
func DateWithin(date, start, end time.Time) bool {
	d := date.Format(DateFormat)
	return d >= start.Format(DateFormat) && d <= end.Format(DateFormat)
}
