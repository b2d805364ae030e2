package build_appointment

import (
	"strings"

	"github.com/dsousa/barber-ledger/internal/domain"
)

// validateRequest проверяет минимальную полноту ввода.
// Некорректный ввод отклоняется ошибкой, частичное применение невозможно.
func validateRequest(req *Request) error {
	name := strings.TrimSpace(req.ClientName)
	if name == "" {
		return ErrEmptyClientName
	}
	if len(name) > domain.MaxClientNameLength {
		return ErrClientNameTooLong
	}
	if len(req.ServiceIDs) == 0 {
		return ErrNoServices
	}
	if req.StartTime.IsZero() {
		return ErrNoStartTime
	}
	if err := req.StartTime.Validate(); err != nil {
		return ErrInvalidStartTime
	}
	return nil
}
