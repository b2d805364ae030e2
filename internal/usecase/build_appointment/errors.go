package build_appointment

import "errors"

// Ошибки валидации: неполный ввод отклоняется до каких-либо вычислений

var (
	// ErrEmptyClientName возвращается, когда имя клиента пустое после trim
	ErrEmptyClientName = errors.New("build_appointment: client name must not be empty")

	// ErrClientNameTooLong возвращается, когда имя клиента длиннее допустимого
	ErrClientNameTooLong = errors.New("build_appointment: client name is too long")

	// ErrNoServices возвращается, когда не выбрано ни одной услуги
	ErrNoServices = errors.New("build_appointment: at least one service must be selected")

	// ErrNoStartTime возвращается, когда не указано время начала
	ErrNoStartTime = errors.New("build_appointment: start time must be set")

	// ErrInvalidStartTime возвращается при некорректном формате времени начала
	ErrInvalidStartTime = errors.New("build_appointment: invalid start time format")
)
