package snapshot

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот ещё не был сохранён
	ErrSlotNotFound = errors.New("snapshot: slot not found")

	// ErrEncode возвращается при ошибке сериализации коллекции
	ErrEncode = errors.New("snapshot: failed to encode payload")

	// ErrDecode возвращается при ошибке десериализации слота
	ErrDecode = errors.New("snapshot: failed to decode payload")
)
