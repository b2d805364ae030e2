package snapshot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsousa/barber-ledger/internal/domain"
	"github.com/dsousa/barber-ledger/pkg/types"
)

func TestAppointmentsRoundTrip(t *testing.T) {
	original := []*domain.Appointment{
		{
			ID:            "a1",
			ClientName:    "João Pereira",
			ServiceIDs:    []string{"1", "2"},
			Date:          time.Date(2025, time.October, 15, 0, 0, 0, 0, time.UTC),
			StartTime:     types.TimeString("09:00"),
			EndTime:       types.TimeString("09:50"),
			TotalValue:    50,
			TotalDuration: 50,
			Status:        domain.StatusCompleted,
		},
		{
			ID:         "a2",
			ClientName: "Pedro",
			ServiceIDs: []string{"ghost"},
			Date:       time.Date(2025, time.October, 16, 0, 0, 0, 0, time.UTC),
			StartTime:  types.TimeString("14:00"),
			// EndTime пустой: все услуги висячие, длительность нулевая
			Status: domain.StatusScheduled,
		},
	}

	payload, err := EncodeAppointments(original)
	require.NoError(t, err)

	decoded, err := DecodeAppointments(payload)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestDecodeAppointments_InvalidPayload(t *testing.T) {
	cases := []struct {
		name    string
		payload string
	}{
		{"not json", "{broken"},
		{"bad date", `[{"id":"a1","date":"15/10/2025","startTime":"09:00","status":"scheduled"}]`},
		{"bad start time", `[{"id":"a1","date":"2025-10-15","startTime":"9am","status":"scheduled"}]`},
		{"bad end time", `[{"id":"a1","date":"2025-10-15","startTime":"09:00","endTime":"25:99","status":"scheduled"}]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeAppointments([]byte(tc.payload))
			assert.ErrorIs(t, err, ErrDecode)
		})
	}
}

func TestServicesRoundTrip(t *testing.T) {
	original := []*domain.Service{
		{ID: "1", Name: "Corte Social", Price: 30, Duration: 30},
		{ID: "2", Name: "Barba", Price: 20, Duration: 20},
	}

	payload, err := EncodeServices(original)
	require.NoError(t, err)
	// формат читается глазами
	assert.Contains(t, string(payload), "\"name\": \"Corte Social\"")

	decoded, err := DecodeServices(payload)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestDecodeServices_InvalidPayload(t *testing.T) {
	_, err := DecodeServices([]byte(`{"not":"a list"}`))
	assert.ErrorIs(t, err, ErrDecode)
}
