package client_history

import "github.com/dsousa/barber-ledger/internal/domain"

// ScheduleReader интерфейс расписания: полная коллекция бронирований
type ScheduleReader interface {
	All() []*domain.Appointment
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
