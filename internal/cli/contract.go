package cli

import (
	"context"
	"time"

	"github.com/dsousa/barber-ledger/internal/domain"
	"github.com/dsousa/barber-ledger/internal/usecase/build_appointment"
	"github.com/dsousa/barber-ledger/internal/usecase/report"
	"github.com/dsousa/barber-ledger/pkg/types"
)

// Catalog интерфейс сервиса каталога услуг
type Catalog interface {
	All() []*domain.Service
	ByID(id string) (*domain.Service, bool)
	Create(ctx context.Context, name string, price float64, duration int) (*domain.Service, error)
	Update(ctx context.Context, id, name string, price float64, duration int) (*domain.Service, error)
	Delete(ctx context.Context, id string) error
}

// Schedule интерфейс сервиса расписания
type Schedule interface {
	Add(ctx context.Context, appointment *domain.Appointment) error
	Update(ctx context.Context, appointment *domain.Appointment) error
	Remove(ctx context.Context, id string) error
	Complete(ctx context.Context, id string) error
	ForDate(date time.Time) []*domain.Appointment
	DailyRevenue(date time.Time) float64
}

// AppointmentBuilder интерфейс use case сборки бронирования
type AppointmentBuilder interface {
	Execute(ctx context.Context, req *build_appointment.Request) (*domain.Appointment, error)
	SuggestStartTime(ctx context.Context, date time.Time) types.TimeString
}

// HistoryLookup интерфейс use case истории клиента
type HistoryLookup interface {
	Lookup(ctx context.Context, nameFragment string) (*domain.ClientHistory, bool)
}

// Reporter интерфейс use case отчётов по выручке
type Reporter interface {
	Execute(ctx context.Context, window report.Window) report.Summary
}

// MessageComposer интерфейс use case текста подтверждения
type MessageComposer interface {
	Compose(appointment *domain.Appointment) string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
