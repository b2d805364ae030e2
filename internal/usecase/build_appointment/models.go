package build_appointment

import (
	"time"

	"github.com/dsousa/barber-ledger/internal/domain"
	"github.com/dsousa/barber-ledger/pkg/types"
)

// Request входные данные для сборки бронирования
type Request struct {
	ClientName string
	// ServiceIDs выбранные услуги в порядке выбора, дубликаты допустимы
	ServiceIDs []string
	Date       time.Time
	StartTime  types.TimeString

	// Existing заполняется в режиме редактирования: идентификатор и статус
	// существующего бронирования сохраняются, остальные поля пересчитываются
	Existing *domain.Appointment
}
