package schedule

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/dsousa/barber-ledger/internal/domain"
	"github.com/dsousa/barber-ledger/internal/infra/storage/snapshot"
)

// Service хранилище расписания. Единственный владелец канонической коллекции
// бронирований: держит её в памяти в порядке добавления и синхронно
// перезаписывает слот appointments после каждой успешной мутации.
//
// Пересечения записей по времени намеренно не проверяются: исходное
// приложение допускает двойную запись, и это зафиксировано как осознанное
// поведение, а не как дефект.
type Service struct {
	store        SnapshotStore
	logger       Logger
	appointments []*domain.Appointment
}

// NewService создает новый экземпляр сервиса расписания
func NewService(store SnapshotStore, logger Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// Load загружает коллекцию из хранилища.
// Отсутствующий слот означает первый запуск: коллекция пуста.
func (s *Service) Load(ctx context.Context) error {
	payload, err := s.store.Load(ctx, snapshot.SlotAppointments)
	if errors.Is(err, snapshot.ErrSlotNotFound) {
		s.logger.Info("Schedule: appointments slot is empty, starting with empty collection")
		s.appointments = make([]*domain.Appointment, 0)
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: Load - storage error: %v", ErrInternal, err)
	}

	appointments, err := snapshot.DecodeAppointments(payload)
	if err != nil {
		return fmt.Errorf("%w: Load - decode appointments: %v", ErrInternal, err)
	}

	s.appointments = appointments
	s.logger.Info("Schedule: loaded %d appointments", len(appointments))
	return nil
}

// Add добавляет бронирование в коллекцию
func (s *Service) Add(ctx context.Context, appointment *domain.Appointment) error {
	if _, ok := s.indexOf(appointment.ID); ok {
		s.logger.Warn("Schedule: Add - duplicate id=%s", appointment.ID)
		return ErrDuplicateID
	}

	next := append(s.cloneAll(), cloneAppointment(appointment))
	if err := s.saveSnapshot(ctx, next); err != nil {
		return err
	}
	s.appointments = next

	s.logger.Info("Schedule: added appointment id=%s client=%q date=%s time=%s",
		appointment.ID, appointment.ClientName,
		appointment.Date.Format(domain.DateFormat), appointment.StartTime)
	return nil
}

// Update заменяет бронирование с тем же идентификатором, сохраняя его
// позицию в коллекции
func (s *Service) Update(ctx context.Context, appointment *domain.Appointment) error {
	idx, ok := s.indexOf(appointment.ID)
	if !ok {
		s.logger.Warn("Schedule: Update - appointment id=%s not found", appointment.ID)
		return ErrAppointmentNotFound
	}

	next := s.cloneAll()
	next[idx] = cloneAppointment(appointment)
	if err := s.saveSnapshot(ctx, next); err != nil {
		return err
	}
	s.appointments = next

	s.logger.Info("Schedule: updated appointment id=%s", appointment.ID)
	return nil
}

// Remove удаляет бронирование.
// Удаление несуществующего идентификатора считается ошибкой
// (ErrAppointmentNotFound), по аналогии с остальными мутациями.
func (s *Service) Remove(ctx context.Context, id string) error {
	idx, ok := s.indexOf(id)
	if !ok {
		s.logger.Warn("Schedule: Remove - appointment id=%s not found", id)
		return ErrAppointmentNotFound
	}

	next := s.cloneAll()
	next = append(next[:idx], next[idx+1:]...)
	if err := s.saveSnapshot(ctx, next); err != nil {
		return err
	}
	s.appointments = next

	s.logger.Info("Schedule: removed appointment id=%s", id)
	return nil
}

// Complete переводит бронирование в статус completed.
// Повторный вызов для уже завершённого бронирования - no-op без ошибки.
func (s *Service) Complete(ctx context.Context, id string) error {
	idx, ok := s.indexOf(id)
	if !ok {
		s.logger.Warn("Schedule: Complete - appointment id=%s not found", id)
		return ErrAppointmentNotFound
	}

	if s.appointments[idx].IsCompleted() {
		s.logger.Info("Schedule: Complete - appointment id=%s already completed", id)
		return nil
	}

	next := s.cloneAll()
	next[idx].Complete()
	if err := s.saveSnapshot(ctx, next); err != nil {
		return err
	}
	s.appointments = next

	s.logger.Info("Schedule: completed appointment id=%s value=%.2f", id, s.appointments[idx].TotalValue)
	return nil
}

// ByID возвращает копию бронирования по идентификатору
func (s *Service) ByID(id string) (*domain.Appointment, error) {
	idx, ok := s.indexOf(id)
	if !ok {
		return nil, ErrAppointmentNotFound
	}
	return cloneAppointment(s.appointments[idx]), nil
}

// All возвращает копию всей коллекции в порядке добавления
func (s *Service) All() []*domain.Appointment {
	return s.cloneAll()
}

// ForDate возвращает бронирования на указанную дату,
// отсортированные по возрастанию времени начала
func (s *Service) ForDate(date time.Time) []*domain.Appointment {
	result := make([]*domain.Appointment, 0)
	for _, a := range s.appointments {
		if a.IsOnDate(date) {
			result = append(result, cloneAppointment(a))
		}
	}
	// HH:MM фиксированной ширины: строковое сравнение эквивалентно хронологическому
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].StartTime.IsBefore(result[j].StartTime)
	})
	return result
}

// ForWindow возвращает завершённые бронирования с датой в пределах
// [start, end] включительно, в порядке добавления
func (s *Service) ForWindow(start, end time.Time) []*domain.Appointment {
	result := make([]*domain.Appointment, 0)
	for _, a := range s.appointments {
		if a.IsCompleted() && domain.DateWithin(a.Date, start, end) {
			result = append(result, cloneAppointment(a))
		}
	}
	return result
}

// DailyRevenue возвращает выручку за день: сумму завершённых бронирований
// на указанную дату (заголовок агенды)
func (s *Service) DailyRevenue(date time.Time) float64 {
	var total float64
	for _, a := range s.appointments {
		if a.IsCompleted() && a.IsOnDate(date) {
			total += a.TotalValue
		}
	}
	return total
}

// saveSnapshot перезаписывает слот appointments полной коллекцией.
// Мутации применяются к копии и фиксируются в памяти только после
// успешного сохранения, поэтому неудавшийся вызов ничего не меняет.
func (s *Service) saveSnapshot(ctx context.Context, appointments []*domain.Appointment) error {
	payload, err := snapshot.EncodeAppointments(appointments)
	if err != nil {
		return fmt.Errorf("%w: saveSnapshot - encode appointments: %v", ErrInternal, err)
	}
	if err := s.store.Save(ctx, snapshot.SlotAppointments, payload); err != nil {
		s.logger.Error("Schedule: saveSnapshot - storage error: %v", err)
		return fmt.Errorf("%w: saveSnapshot - storage error: %v", ErrInternal, err)
	}
	return nil
}

func (s *Service) indexOf(id string) (int, bool) {
	for i, a := range s.appointments {
		if a.ID == id {
			return i, true
		}
	}
	return 0, false
}

func (s *Service) cloneAll() []*domain.Appointment {
	next := make([]*domain.Appointment, 0, len(s.appointments))
	for _, a := range s.appointments {
		next = append(next, cloneAppointment(a))
	}
	return next
}

func cloneAppointment(a *domain.Appointment) *domain.Appointment {
	copied := *a
	copied.ServiceIDs = append([]string(nil), a.ServiceIDs...)
	return &copied
}
