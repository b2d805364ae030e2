package domain

import "time"

// Service represents a catalog entry: a service offered by the shop
type Service struct {
	ID       string
	Name     string
	Price    float64 // денежная сумма, два знака фиксируются на уровне представления
	Duration int     // minutes
}

// ClientHistory агрегированная история посещений клиента,
// выводится из завершённых записей по подстроке имени
type ClientHistory struct {
	LastVisit     time.Time
	AverageTicket float64
	TotalVisits   int
	// FrequentServices идентификаторы услуг по убыванию частоты
	FrequentServices []string
}
