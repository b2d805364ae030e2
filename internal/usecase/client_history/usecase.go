package client_history

import (
	"context"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dsousa/barber-ledger/internal/domain"
)

// UseCase поиск истории клиента по фрагменту имени. Используется при
// записи: пока оператор набирает имя, подсказывает последний визит и
// средний чек. Чистая операция, пересчитывается при каждом запросе;
// объёмы одной барбершопной книги этого не замечают.
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

// Lookup ищет историю по фрагменту имени клиента.
//
// Фрагменты короче domain.MinClientFragmentLength не ищутся: возвращается
// (nil, false). Совпадение - это завершённое бронирование, имя клиента
// которого содержит фрагмент без учёта регистра. Если совпадений нет,
// возвращается (nil, false).
func (uc *UseCase) Lookup(ctx context.Context, nameFragment string) (*domain.ClientHistory, bool) {
	// порог считается в символах, а не в байтах: акцентованные имена
	// не должны активировать поиск раньше времени
	if utf8.RuneCountInString(nameFragment) < domain.MinClientFragmentLength {
		return nil, false
	}

	fragment := strings.ToLower(nameFragment)
	matches := make([]*domain.Appointment, 0)
	for _, a := range uc.schedule.All() {
		if a.IsCompleted() && strings.Contains(strings.ToLower(a.ClientName), fragment) {
			matches = append(matches, a)
		}
	}

	if len(matches) == 0 {
		return nil, false
	}

	history := &domain.ClientHistory{
		LastVisit:        lastVisit(matches),
		AverageTicket:    averageTicket(matches),
		TotalVisits:      len(matches),
		FrequentServices: frequentServices(matches),
	}

	uc.logger.Info("ClientHistory: fragment=%q matched %d completed visits, last=%s avg=%.2f",
		nameFragment, history.TotalVisits, history.LastVisit.Format(domain.DateFormat), history.AverageTicket)
	return history, true
}

// lastVisit возвращает дату последнего визита по календарному сравнению:
// даты из снапшота и даты, набранные оператором, могут жить в разных локациях
func lastVisit(matches []*domain.Appointment) time.Time {
	last := matches[0].Date
	for _, a := range matches[1:] {
		if a.Date.Format(domain.DateFormat) > last.Format(domain.DateFormat) {
			last = a.Date
		}
	}
	return last
}

func averageTicket(matches []*domain.Appointment) float64 {
	var total float64
	for _, a := range matches {
		total += a.TotalValue
	}
	return total / float64(len(matches))
}

// frequentServices возвращает идентификаторы услуг по убыванию частоты
// в завершённых визитах; при равенстве частот раньше идёт услуга,
// встретившаяся первой
func frequentServices(matches []*domain.Appointment) []string {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, a := range matches {
		for _, id := range a.ServiceIDs {
			if _, seen := counts[id]; !seen {
				order = append(order, id)
			}
			counts[id]++
		}
	}

	firstSeen := make(map[string]int, len(order))
	for i, id := range order {
		firstSeen[id] = i
	}

	sort.SliceStable(order, func(i, j int) bool {
		if counts[order[i]] != counts[order[j]] {
			return counts[order[i]] > counts[order[j]]
		}
		return firstSeen[order[i]] < firstSeen[order[j]]
	})
	return order
}
