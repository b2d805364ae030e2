package schedule

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда бронирование не найдено
	ErrAppointmentNotFound = errors.New("schedule: appointment not found")

	// ErrDuplicateID возвращается при вставке с уже существующим идентификатором.
	// При корректной генерации идентификаторов не должно возникать, но коллекция
	// защищается от этого явно.
	ErrDuplicateID = errors.New("schedule: appointment id already exists")

	// ErrInternal возвращается при ошибках хранилища
	ErrInternal = errors.New("schedule: internal error")
)
