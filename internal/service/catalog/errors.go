package catalog

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("catalog: service not found")

	// ErrEmptyName возвращается при пустом названии услуги
	ErrEmptyName = errors.New("catalog: service name must not be empty")

	// ErrNegativePrice возвращается при отрицательной цене
	ErrNegativePrice = errors.New("catalog: service price must not be negative")

	// ErrInvalidDuration возвращается при неположительной длительности
	ErrInvalidDuration = errors.New("catalog: service duration must be positive")

	// ErrInternal возвращается при ошибках хранилища
	ErrInternal = errors.New("catalog: internal error")
)
