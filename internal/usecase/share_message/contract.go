package share_message

import "github.com/dsousa/barber-ledger/internal/domain"

// CatalogProvider интерфейс каталога для разрешения названий услуг
type CatalogProvider interface {
	ByID(id string) (*domain.Service, bool)
}
