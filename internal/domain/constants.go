package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Default values
const (
	// DefaultOpeningTime с этого времени предлагается первый слот дня,
	// если на дату ещё нет записей. Подсказка, а не правило: оператор
	// может назначить любое время.
	DefaultOpeningTime = "09:00"

	// MinClientFragmentLength минимальная длина фрагмента имени для поиска
	// истории клиента. Короткие фрагменты дают шумные совпадения по инициалам.
	MinClientFragmentLength = 3
)

// Business validation constants
const (
	MinServiceDurationMinutes = 1
	MaxClientNameLength       = 200
)
