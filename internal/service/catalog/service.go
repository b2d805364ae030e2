package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dsousa/barber-ledger/internal/domain"
	"github.com/dsousa/barber-ledger/internal/infra/storage/snapshot"
)

// Service сервис каталога услуг. Владеет полным списком услуг в памяти
// и синхронно перезаписывает слот services при каждой мутации.
type Service struct {
	store    SnapshotStore
	idGen    IDGenerator
	logger   Logger
	services []*domain.Service
}

// NewService создает новый экземпляр сервиса каталога
func NewService(store SnapshotStore, logger Logger) *Service {
	return &Service{
		store:  store,
		idGen:  &uuidGenerator{},
		logger: logger,
	}
}

// uuidGenerator генератор идентификаторов по умолчанию
type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

// seedServices стартовый каталог для первого запуска
func seedServices() []*domain.Service {
	return []*domain.Service{
		{ID: "1", Name: "Corte Social", Price: 30, Duration: 30},
		{ID: "2", Name: "Barba", Price: 20, Duration: 20},
		{ID: "3", Name: "Corte + Barba", Price: 45, Duration: 50},
	}
}

// Load загружает каталог из хранилища.
// Если слот отсутствует (первый запуск), инициализирует каталог стартовым
// набором услуг и сразу сохраняет его.
func (s *Service) Load(ctx context.Context) error {
	payload, err := s.store.Load(ctx, snapshot.SlotServices)
	if errors.Is(err, snapshot.ErrSlotNotFound) {
		s.logger.Info("Catalog: services slot is empty, seeding default catalog")
		s.services = seedServices()
		return s.saveSnapshot(ctx, s.services)
	}
	if err != nil {
		return fmt.Errorf("%w: Load - storage error: %v", ErrInternal, err)
	}

	services, err := snapshot.DecodeServices(payload)
	if err != nil {
		return fmt.Errorf("%w: Load - decode services: %v", ErrInternal, err)
	}

	s.services = services
	s.logger.Info("Catalog: loaded %d services", len(services))
	return nil
}

// All возвращает копию списка услуг в порядке добавления
func (s *Service) All() []*domain.Service {
	result := make([]*domain.Service, 0, len(s.services))
	for _, svc := range s.services {
		copied := *svc
		result = append(result, &copied)
	}
	return result
}

// ByID возвращает услугу по идентификатору.
// Отсутствие услуги не является ошибкой: ссылки на удалённые услуги
// допустимы и обрабатываются толерантно (второй результат false).
func (s *Service) ByID(id string) (*domain.Service, bool) {
	for _, svc := range s.services {
		if svc.ID == id {
			copied := *svc
			return &copied, true
		}
	}
	return nil, false
}

// Create добавляет новую услугу в каталог
func (s *Service) Create(ctx context.Context, name string, price float64, duration int) (*domain.Service, error) {
	if err := validateService(name, price, duration); err != nil {
		s.logger.Warn("Catalog: Create - validation failed: %v", err)
		return nil, err
	}

	svc := &domain.Service{
		ID:       s.idGen.NewID(),
		Name:     strings.TrimSpace(name),
		Price:    price,
		Duration: duration,
	}

	next := append(s.cloneAll(), svc)
	if err := s.saveSnapshot(ctx, next); err != nil {
		return nil, err
	}
	s.services = next

	s.logger.Info("Catalog: created service id=%s name=%q price=%.2f duration=%d",
		svc.ID, svc.Name, svc.Price, svc.Duration)
	copied := *svc
	return &copied, nil
}

// Update изменяет существующую услугу. Идентификатор неизменяем.
// Уже созданные бронирования не пересчитываются: их суммы зафиксированы
// на момент сохранения.
func (s *Service) Update(ctx context.Context, id, name string, price float64, duration int) (*domain.Service, error) {
	if err := validateService(name, price, duration); err != nil {
		s.logger.Warn("Catalog: Update - validation failed for id=%s: %v", id, err)
		return nil, err
	}

	next := s.cloneAll()
	var updated *domain.Service
	for _, svc := range next {
		if svc.ID == id {
			svc.Name = strings.TrimSpace(name)
			svc.Price = price
			svc.Duration = duration
			updated = svc
			break
		}
	}
	if updated == nil {
		s.logger.Warn("Catalog: Update - service id=%s not found", id)
		return nil, ErrServiceNotFound
	}

	if err := s.saveSnapshot(ctx, next); err != nil {
		return nil, err
	}
	s.services = next

	s.logger.Info("Catalog: updated service id=%s", id)
	copied := *updated
	return &copied, nil
}

// Delete удаляет услугу из каталога.
// Бронирования, ссылающиеся на удалённую услугу, не изменяются и не
// чинятся: их ссылка остаётся висячей и дальше отображается как
// неизвестная услуга.
func (s *Service) Delete(ctx context.Context, id string) error {
	next := make([]*domain.Service, 0, len(s.services))
	found := false
	for _, svc := range s.services {
		if svc.ID == id {
			found = true
			continue
		}
		copied := *svc
		next = append(next, &copied)
	}
	if !found {
		s.logger.Warn("Catalog: Delete - service id=%s not found", id)
		return ErrServiceNotFound
	}

	if err := s.saveSnapshot(ctx, next); err != nil {
		return err
	}
	s.services = next

	s.logger.Info("Catalog: deleted service id=%s", id)
	return nil
}

// saveSnapshot перезаписывает слот services полным списком услуг.
// Пустой список не сохраняется: после удаления последней услуги на диске
// остаётся прежний снапшот, и следующий запуск вернёт его (поведение
// исходного приложения, сохранено осознанно).
func (s *Service) saveSnapshot(ctx context.Context, services []*domain.Service) error {
	if len(services) == 0 {
		return nil
	}

	payload, err := snapshot.EncodeServices(services)
	if err != nil {
		return fmt.Errorf("%w: saveSnapshot - encode services: %v", ErrInternal, err)
	}
	if err := s.store.Save(ctx, snapshot.SlotServices, payload); err != nil {
		s.logger.Error("Catalog: saveSnapshot - storage error: %v", err)
		return fmt.Errorf("%w: saveSnapshot - storage error: %v", ErrInternal, err)
	}
	return nil
}

func (s *Service) cloneAll() []*domain.Service {
	next := make([]*domain.Service, 0, len(s.services))
	for _, svc := range s.services {
		copied := *svc
		next = append(next, &copied)
	}
	return next
}

func validateService(name string, price float64, duration int) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	if price < 0 {
		return ErrNegativePrice
	}
	if duration < domain.MinServiceDurationMinutes {
		return ErrInvalidDuration
	}
	return nil
}
