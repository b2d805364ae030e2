package report

import (
	"context"

	"github.com/dsousa/barber-ledger/internal/domain"
)

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

// UseCase отчёт по выручке за окно дат. Сам движок агрегации ничего не
// знает о "сегодня": стандартные окна (день, неделя, месяц) вычисляет
// вызывающий хелперами из windows.go и передаёт сюда как есть.
type UseCase struct {
	schedule ScheduleReader
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(schedule ScheduleReader, logger Logger) *UseCase {
	return &UseCase{
		schedule: schedule,
		logger:   logger,
	}
}

// Execute строит сводку выручки за окно
func (uc *UseCase) Execute(ctx context.Context, window Window) Summary {
	summary := Summarize(uc.schedule.All(), window)
	uc.logger.Info("Report: window=%s..%s total=%.2f count=%d average=%.2f",
		window.Start.Format(domain.DateFormat), window.End.Format(domain.DateFormat),
		summary.Total, summary.Count, summary.Average)
	return summary
}

// Summarize агрегирует завершённые бронирования с датой внутри окна
// (границы включительно): сумма, количество и средний чек
func Summarize(appointments []*domain.Appointment, window Window) Summary {
	var summary Summary
	for _, a := range appointments {
		if !a.IsCompleted() || !domain.DateWithin(a.Date, window.Start, window.End) {
			continue
		}
		summary.Total += a.TotalValue
		summary.Count++
	}
	if summary.Count > 0 {
		summary.Average = summary.Total / float64(summary.Count)
	}
	return summary
}
