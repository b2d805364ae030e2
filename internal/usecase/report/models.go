package report

import "time"

// Window включительный диапазон дат для агрегации выручки
type Window struct {
	Start time.Time
	End   time.Time
}

// Summary агрегированная выручка за окно
type Summary struct {
	Total float64
	Count int
	// Average средний чек: Total / Count, либо 0 для пустого окна.
	// Пустое окно - валидное, отображаемое состояние, а не ошибка.
	Average float64
}
