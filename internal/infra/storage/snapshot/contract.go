package snapshot

import "context"

// Слоты внешнего key-value хранилища. Каждый слот хранит полную
// сериализованную коллекцию и перезаписывается целиком при каждой мутации.
const (
	SlotServices     = "services"
	SlotAppointments = "appointments"
)

// Store контракт хранилища снапшотов: два независимых слота,
// полная перезапись при сохранении, синхронные операции
type Store interface {
	// Load возвращает содержимое слота.
	// Если слот отсутствует, возвращает ErrSlotNotFound.
	Load(ctx context.Context, slot string) ([]byte, error)

	// Save полностью перезаписывает слот новым содержимым
	Save(ctx context.Context, slot string, payload []byte) error
}
