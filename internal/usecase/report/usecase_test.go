package report

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

func completed(day time.Time, value float64) *domain.Appointment {
	return &domain.Appointment{Date: day, TotalValue: value, Status: domain.StatusCompleted}
}

func scheduled(day time.Time, value float64) *domain.Appointment {
	return &domain.Appointment{Date: day, TotalValue: value, Status: domain.StatusScheduled}
}

func TestExecute_SumsCompletedWithinWindow(t *testing.T) {
	schedule := &fakeSchedule{appointments: []*domain.Appointment{
		completed(date(2025, time.October, 13), 30),
		completed(date(2025, time.October, 15), 45),
		completed(date(2025, time.October, 19), 20),
		// за пределами окна
		completed(date(2025, time.October, 20), 100),
		// не завершено
		scheduled(date(2025, time.October, 15), 100),
	}}
	uc := NewUseCase(schedule, nopLogger{})

	summary := uc.Execute(context.Background(), Window{
		Start: date(2025, time.October, 13),
		End:   date(2025, time.October, 19),
	})

	assert.Equal(t, 95.0, summary.Total)
	assert.Equal(t, 3, summary.Count)
	assert.InDelta(t, 95.0/3.0, summary.Average, 1e-9)
}

func TestExecute_EmptyWindow(t *testing.T) {
	uc := NewUseCase(&fakeSchedule{}, nopLogger{})

	summary := uc.Execute(context.Background(), Window{
		Start: date(2025, time.October, 13),
		End:   date(2025, time.October, 19),
	})

	assert.Equal(t, Summary{}, summary)
	assert.Equal(t, 0.0, summary.Average)
}

func TestSummarize_BoundsAreInclusive(t *testing.T) {
	appointments := []*domain.Appointment{
		completed(date(2025, time.October, 13), 10),
		completed(date(2025, time.October, 19), 20),
	}
	window := Window{Start: date(2025, time.October, 13), End: date(2025, time.October, 19)}

	summary := Summarize(appointments, window)
	assert.Equal(t, 30.0, summary.Total)
	assert.Equal(t, 2, summary.Count)
}

func TestSummarize_SingleDayWindow(t *testing.T) {
	appointments := []*domain.Appointment{
		completed(date(2025, time.October, 15), 45),
		completed(date(2025, time.October, 16), 30),
	}

	summary := Summarize(appointments, Today(date(2025, time.October, 15)))
	assert.Equal(t, 45.0, summary.Total)
	assert.Equal(t, 1, summary.Count)
	assert.Equal(t, 45.0, summary.Average)
}

func TestSummarize_WindowFromLocalClockMatchesStoredDates(t *testing.T) {
	// даты из снапшота парсятся в UTC, окна строятся от локальных часов:
	// сравнение должно идти по календарным дням, а не по моментам времени
	brt := time.FixedZone("BRT", -3*60*60)
	stored, err := time.Parse(domain.DateFormat, "2025-10-15")
	require.NoError(t, err)
	appointments := []*domain.Appointment{
		{Date: stored, TotalValue: 30, Status: domain.StatusCompleted},
	}

	now := time.Date(2025, time.October, 15, 10, 0, 0, 0, brt)
	summary := Summarize(appointments, Today(now))
	assert.Equal(t, 1, summary.Count)
	assert.Equal(t, 30.0, summary.Total)

	// граничные дни недельного окна тоже держатся в своём дне
	monday, err := time.Parse(domain.DateFormat, "2025-10-13")
	require.NoError(t, err)
	sunday, err := time.Parse(domain.DateFormat, "2025-10-19")
	require.NoError(t, err)
	weekly := Summarize([]*domain.Appointment{
		{Date: monday, TotalValue: 10, Status: domain.StatusCompleted},
		{Date: sunday, TotalValue: 20, Status: domain.StatusCompleted},
	}, ThisWeek(now))
	assert.Equal(t, 2, weekly.Count)
	assert.Equal(t, 30.0, weekly.Total)
}

func TestToday(t *testing.T) {
	now := time.Date(2025, time.October, 15, 18, 42, 7, 0, time.UTC)
	window := Today(now)
	assert.Equal(t, date(2025, time.October, 15), window.Start)
	assert.Equal(t, window.Start, window.End)
}

func TestThisWeek(t *testing.T) {
	cases := []struct {
		name string
		now  time.Time
		want Window
	}{
		{
			"wednesday",
			date(2025, time.October, 15),
			Window{Start: date(2025, time.October, 13), End: date(2025, time.October, 19)},
		},
		{
			"monday is its own start",
			date(2025, time.October, 13),
			Window{Start: date(2025, time.October, 13), End: date(2025, time.October, 19)},
		},
		{
			"sunday belongs to the preceding monday",
			date(2025, time.October, 19),
			Window{Start: date(2025, time.October, 13), End: date(2025, time.October, 19)},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ThisWeek(tc.now))
		})
	}
}

func TestThisMonth(t *testing.T) {
	window := ThisMonth(date(2025, time.October, 15))
	assert.Equal(t, date(2025, time.October, 1), window.Start)
	assert.Equal(t, date(2025, time.October, 31), window.End)

	// февраль високосного года
	window = ThisMonth(date(2024, time.February, 10))
	require.Equal(t, date(2024, time.February, 1), window.Start)
	assert.Equal(t, date(2024, time.February, 29), window.End)
}
