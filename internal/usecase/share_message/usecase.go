package share_message

import (
	"fmt"
	"strings"

	"github.com/dsousa/barber-ledger/internal/domain"
)

// UseCase составление текста подтверждения записи для отправки клиенту.
// Чистая шаблонная операция: никакой отправки здесь нет, готовая строка
// передаётся внешнему механизму шаринга.
type UseCase struct {
	catalog CatalogProvider
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(catalog CatalogProvider) *UseCase {
	return &UseCase{catalog: catalog}
}

// Compose собирает текст сообщения: имя клиента, время начала, названия
// услуг через " + " и сумма с двумя знаками. Услуги, отсутствующие в
// каталоге, пропускаются без ошибки.
func (uc *UseCase) Compose(appointment *domain.Appointment) string {
	names := make([]string, 0, len(appointment.ServiceIDs))
	for _, id := range appointment.ServiceIDs {
		if svc, ok := uc.catalog.ByID(id); ok {
			names = append(names, svc.Name)
		}
	}

	return fmt.Sprintf(
		"Olá %s! Passando para confirmar seu horário na Barbearia Sousa!\n\n"+
			"⏰ Hora: %s\n"+
			"💈 Serviços: %s\n"+
			"💰 Valor: R$ %.2f\n\n"+
			"Até logo!",
		appointment.ClientName,
		appointment.StartTime,
		strings.Join(names, " + "),
		appointment.TotalValue,
	)
}
