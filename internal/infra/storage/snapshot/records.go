package snapshot

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dsousa/barber-ledger/internal/domain"
	"github.com/dsousa/barber-ledger/pkg/types"
)

// Записи слотов. Формат текстовый (JSON с отступами), пригодный для ручного
// просмотра, и обратимый без потерь для всех полей доменных моделей.

// ServiceRecord запись услуги в слоте services
type ServiceRecord struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Duration int     `json:"duration"`
}

// AppointmentRecord запись бронирования в слоте appointments
type AppointmentRecord struct {
	ID            string   `json:"id"`
	ClientName    string   `json:"clientName"`
	ServiceIDs    []string `json:"serviceIds"`
	Date          string   `json:"date"`      // YYYY-MM-DD
	StartTime     string   `json:"startTime"` // HH:MM
	EndTime       string   `json:"endTime"`   // HH:MM, пустая строка если не вычислено
	TotalValue    float64  `json:"totalValue"`
	TotalDuration int      `json:"totalDuration"`
	Status        string   `json:"status"`
}

// EncodeServices сериализует каталог в содержимое слота services
func EncodeServices(services []*domain.Service) ([]byte, error) {
	records := make([]ServiceRecord, 0, len(services))
	for _, s := range services {
		records = append(records, ServiceRecord{
			ID:       s.ID,
			Name:     s.Name,
			Price:    s.Price,
			Duration: s.Duration,
		})
	}

	payload, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: EncodeServices: %v", ErrEncode, err)
	}
	return payload, nil
}

// DecodeServices восстанавливает каталог из содержимого слота services
func DecodeServices(payload []byte) ([]*domain.Service, error) {
	var records []ServiceRecord
	if err := json.Unmarshal(payload, &records); err != nil {
		return nil, fmt.Errorf("%w: DecodeServices: %v", ErrDecode, err)
	}

	services := make([]*domain.Service, 0, len(records))
	for _, r := range records {
		services = append(services, &domain.Service{
			ID:       r.ID,
			Name:     r.Name,
			Price:    r.Price,
			Duration: r.Duration,
		})
	}
	return services, nil
}

// EncodeAppointments сериализует коллекцию бронирований в содержимое слота appointments
func EncodeAppointments(appointments []*domain.Appointment) ([]byte, error) {
	records := make([]AppointmentRecord, 0, len(appointments))
	for _, a := range appointments {
		records = append(records, AppointmentRecord{
			ID:            a.ID,
			ClientName:    a.ClientName,
			ServiceIDs:    append([]string(nil), a.ServiceIDs...),
			Date:          a.Date.Format(domain.DateFormat),
			StartTime:     a.StartTime.String(),
			EndTime:       a.EndTime.String(),
			TotalValue:    a.TotalValue,
			TotalDuration: a.TotalDuration,
			Status:        string(a.Status),
		})
	}

	payload, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: EncodeAppointments: %v", ErrEncode, err)
	}
	return payload, nil
}

// DecodeAppointments восстанавливает коллекцию бронирований из содержимого слота
func DecodeAppointments(payload []byte) ([]*domain.Appointment, error) {
	var records []AppointmentRecord
	if err := json.Unmarshal(payload, &records); err != nil {
		return nil, fmt.Errorf("%w: DecodeAppointments: %v", ErrDecode, err)
	}

	appointments := make([]*domain.Appointment, 0, len(records))
	for _, r := range records {
		date, err := time.Parse(domain.DateFormat, r.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: DecodeAppointments - invalid date %q: %v", ErrDecode, r.Date, err)
		}

		startTime, err := types.NewTimeStringFromString(r.StartTime)
		if err != nil {
			return nil, fmt.Errorf("%w: DecodeAppointments - invalid startTime %q: %v", ErrDecode, r.StartTime, err)
		}

		// endTime может отсутствовать (нулевая суммарная длительность)
		var endTime types.TimeString
		if r.EndTime != "" {
			endTime, err = types.NewTimeStringFromString(r.EndTime)
			if err != nil {
				return nil, fmt.Errorf("%w: DecodeAppointments - invalid endTime %q: %v", ErrDecode, r.EndTime, err)
			}
		}

		appointments = append(appointments, &domain.Appointment{
			ID:            r.ID,
			ClientName:    r.ClientName,
			ServiceIDs:    r.ServiceIDs,
			Date:          date,
			StartTime:     startTime,
			EndTime:       endTime,
			TotalValue:    r.TotalValue,
			TotalDuration: r.TotalDuration,
			Status:        domain.AppointmentStatus(r.Status),
		})
	}
	return appointments, nil
}
