package jsonfile

import "errors"

var (
	// ErrReadFile возвращается при ошибке чтения файла слота
	ErrReadFile = errors.New("jsonfile.store: failed to read slot file")

	// ErrWriteFile возвращается при ошибке записи файла слота
	ErrWriteFile = errors.New("jsonfile.store: failed to write slot file")
)
