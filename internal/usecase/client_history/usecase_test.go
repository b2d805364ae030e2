package client_history

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsousa/barber-ledger/internal/domain"
)

type fakeSchedule struct {
	appointments []*domain.Appointment
}

func (f *fakeSchedule) All() []*domain.Appointment {
	return f.appointments
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func visit(client string, day time.Time, value float64, status domain.AppointmentStatus, serviceIDs ...string) *domain.Appointment {
	return &domain.Appointment{
		ID:         client + day.Format(domain.DateFormat),
		ClientName: client,
		ServiceIDs: serviceIDs,
		Date:       day,
		TotalValue: value,
		Status:     status,
	}
}

func TestLookup_FragmentTooShort(t *testing.T) {
	schedule := &fakeSchedule{appointments: []*domain.Appointment{
		visit("João Pereira", date(2025, time.October, 1), 30, domain.StatusCompleted, "1"),
	}}
	uc := NewUseCase(schedule, nopLogger{})

	history, ok := uc.Lookup(context.Background(), "Jo")
	assert.False(t, ok)
	assert.Nil(t, history)
}

func TestLookup_AggregatesCompletedVisits(t *testing.T) {
	schedule := &fakeSchedule{appointments: []*domain.Appointment{
		visit("João Pereira", date(2025, time.September, 10), 30, domain.StatusCompleted, "1"),
		visit("João Pereira", date(2025, time.October, 20), 45, domain.StatusCompleted, "3"),
		visit("João Pereira", date(2025, time.October, 5), 75, domain.StatusCompleted, "1", "2"),
		// запланированные визиты не считаются
		visit("João Pereira", date(2025, time.November, 1), 100, domain.StatusScheduled, "3"),
		// другой клиент
		visit("Pedro Santos", date(2025, time.October, 25), 20, domain.StatusCompleted, "2"),
	}}
	uc := NewUseCase(schedule, nopLogger{})

	history, ok := uc.Lookup(context.Background(), "Joã")
	require.True(t, ok)
	assert.Equal(t, date(2025, time.October, 20), history.LastVisit)
	assert.Equal(t, 3, history.TotalVisits)
	assert.InDelta(t, 50.0, history.AverageTicket, 1e-9)
}

func TestLookup_FragmentThresholdCountsRunes(t *testing.T) {
	schedule := &fakeSchedule{appointments: []*domain.Appointment{
		visit("Jãnio Silva", date(2025, time.October, 1), 30, domain.StatusCompleted, "1"),
	}}
	uc := NewUseCase(schedule, nopLogger{})

	// два символа, четыре байта: порог должен считаться в символах
	history, ok := uc.Lookup(context.Background(), "Jã")
	assert.False(t, ok)
	assert.Nil(t, history)

	_, ok = uc.Lookup(context.Background(), "Jãn")
	assert.True(t, ok)
}

func TestLookup_LastVisitComparesCalendarDates(t *testing.T) {
	brt := time.FixedZone("BRT", -3*60*60)
	// поздний вечер 19-го в BRT это уже 20-е в UTC как момент времени,
	// но календарно визит 20-го (из снапшота, UTC) всё равно позже
	schedule := &fakeSchedule{appointments: []*domain.Appointment{
		visit("João", time.Date(2025, time.October, 19, 23, 0, 0, 0, brt), 30, domain.StatusCompleted, "1"),
		visit("João", date(2025, time.October, 20), 45, domain.StatusCompleted, "2"),
	}}
	uc := NewUseCase(schedule, nopLogger{})

	history, ok := uc.Lookup(context.Background(), "João")
	require.True(t, ok)
	assert.Equal(t, "2025-10-20", history.LastVisit.Format(domain.DateFormat))
}

func TestLookup_CaseInsensitive(t *testing.T) {
	schedule := &fakeSchedule{appointments: []*domain.Appointment{
		visit("João Pereira", date(2025, time.October, 1), 30, domain.StatusCompleted, "1"),
	}}
	uc := NewUseCase(schedule, nopLogger{})

	_, ok := uc.Lookup(context.Background(), "joã")
	assert.True(t, ok)

	_, ok = uc.Lookup(context.Background(), "PEREIRA")
	assert.True(t, ok)
}

func TestLookup_NoMatches(t *testing.T) {
	schedule := &fakeSchedule{appointments: []*domain.Appointment{
		visit("Pedro Santos", date(2025, time.October, 1), 20, domain.StatusCompleted, "2"),
		// единственное совпадение по имени ещё не завершено
		visit("Marcos Lima", date(2025, time.October, 2), 30, domain.StatusScheduled, "1"),
	}}
	uc := NewUseCase(schedule, nopLogger{})

	history, ok := uc.Lookup(context.Background(), "Marcos")
	assert.False(t, ok)
	assert.Nil(t, history)
}

func TestLookup_FrequentServicesRanking(t *testing.T) {
	schedule := &fakeSchedule{appointments: []*domain.Appointment{
		visit("João", date(2025, time.October, 1), 50, domain.StatusCompleted, "1", "2"),
		visit("João", date(2025, time.October, 8), 20, domain.StatusCompleted, "2"),
		visit("João", date(2025, time.October, 15), 75, domain.StatusCompleted, "2", "3"),
		visit("João", date(2025, time.October, 22), 30, domain.StatusCompleted, "1"),
	}}
	uc := NewUseCase(schedule, nopLogger{})

	history, ok := uc.Lookup(context.Background(), "João")
	require.True(t, ok)
	// "2" трижды, "1" дважды, "3" один раз; равных частот нет
	assert.Equal(t, []string{"2", "1", "3"}, history.FrequentServices)
}

func TestLookup_FrequentServicesTieKeepsFirstSeen(t *testing.T) {
	schedule := &fakeSchedule{appointments: []*domain.Appointment{
		visit("João", date(2025, time.October, 1), 50, domain.StatusCompleted, "3", "1"),
		visit("João", date(2025, time.October, 8), 50, domain.StatusCompleted, "1", "3"),
	}}
	uc := NewUseCase(schedule, nopLogger{})

	history, ok := uc.Lookup(context.Background(), "João")
	require.True(t, ok)
	assert.Equal(t, []string{"3", "1"}, history.FrequentServices)
}
