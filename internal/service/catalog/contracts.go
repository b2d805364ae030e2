package catalog

import "context"

// SnapshotStore интерфейс хранилища снапшотов
type SnapshotStore interface {
	Load(ctx context.Context, slot string) ([]byte, error)
	Save(ctx context.Context, slot string, payload []byte) error
}

// IDGenerator интерфейс генератора идентификаторов услуг
type IDGenerator interface {
	NewID() string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
