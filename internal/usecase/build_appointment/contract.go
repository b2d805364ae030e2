package build_appointment

import (
	"time"

	"github.com/dsousa/barber-ledger/internal/domain"
)

// CatalogProvider интерфейс каталога услуг.
// Отсутствие услуги не ошибка: второй результат false.
type CatalogProvider interface {
	ByID(id string) (*domain.Service, bool)
}

// ScheduleReader интерфейс расписания для подсказки времени начала
type ScheduleReader interface {
	ForDate(date time.Time) []*domain.Appointment
}

// IDGenerator интерфейс генератора идентификаторов бронирований
type IDGenerator interface {
	NewID() string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
