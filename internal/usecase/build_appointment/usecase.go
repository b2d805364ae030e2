package build_appointment

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dsousa/barber-ledger/internal/domain"
	"github.com/dsousa/barber-ledger/pkg/types"
)

// UseCase use case сборки бронирования: из имени клиента, выбранных услуг,
// даты и времени начала собирает готовую запись с производными полями.
// Чистая операция: сохранение результата - обязанность вызывающего.
type UseCase struct {
	catalog  CatalogProvider
	schedule ScheduleReader
	idGen    IDGenerator
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(catalog CatalogProvider, schedule ScheduleReader, logger Logger) *UseCase {
	return &UseCase{
		catalog:  catalog,
		schedule: schedule,
		idGen:    &uuidGenerator{},
		logger:   logger,
	}
}

// uuidGenerator генератор идентификаторов по умолчанию
type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

// Execute собирает бронирование.
//
// Суммы считаются по услугам, найденным в каталоге на момент вызова:
// неразрешимые идентификаторы молча пропускаются и дают нулевой вклад
// (толерантный поиск, не ошибка). Время окончания = начало + суммарная
// длительность; при нулевой длительности остаётся пустым.
//
// В режиме редактирования (req.Existing != nil) идентификатор и статус
// существующего бронирования сохраняются; иначе генерируется новый
// идентификатор и статус scheduled.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.Appointment, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BuildAppointment: validation failed: %v", err)
		return nil, err
	}

	var totalValue float64
	var totalDuration int
	for _, id := range req.ServiceIDs {
		svc, ok := uc.catalog.ByID(id)
		if !ok {
			// висячая ссылка: услуга могла быть удалена из каталога
			uc.logger.Warn("BuildAppointment: service id=%s not found in catalog, skipping", id)
			continue
		}
		totalValue += svc.Price
		totalDuration += svc.Duration
	}

	var endTime types.TimeString
	if totalDuration > 0 {
		var err error
		endTime, err = req.StartTime.AddMinutes(totalDuration)
		if err != nil {
			return nil, ErrInvalidStartTime
		}
	}

	appointment := &domain.Appointment{
		ClientName:    strings.TrimSpace(req.ClientName),
		ServiceIDs:    append([]string(nil), req.ServiceIDs...),
		Date:          domain.DateOnly(req.Date),
		StartTime:     req.StartTime,
		EndTime:       endTime,
		TotalValue:    totalValue,
		TotalDuration: totalDuration,
		Status:        domain.StatusScheduled,
	}

	if req.Existing != nil {
		appointment.ID = req.Existing.ID
		appointment.Status = req.Existing.Status
	} else {
		appointment.ID = uc.idGen.NewID()
	}

	uc.logger.Info("BuildAppointment: built id=%s client=%q services=%d value=%.2f duration=%d end=%s",
		appointment.ID, appointment.ClientName, len(appointment.ServiceIDs),
		appointment.TotalValue, appointment.TotalDuration, appointment.EndTime)
	return appointment, nil
}

// SuggestStartTime подсказывает время начала для новой записи на дату:
// время окончания последней записи дня, либо время открытия, если записей
// нет. Только подсказка для оператора, не правило: значение можно заменить
// любым другим, и валидация его не проверяет.
func (uc *UseCase) SuggestStartTime(ctx context.Context, date time.Time) types.TimeString {
	existing := uc.schedule.ForDate(date)
	if len(existing) == 0 {
		return types.TimeString(domain.DefaultOpeningTime)
	}

	last := existing[len(existing)-1]
	if last.EndTime.IsZero() {
		return types.TimeString(domain.DefaultOpeningTime)
	}
	return last.EndTime
}
