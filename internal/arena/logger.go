package arena

import "github.com/google/uuid"

// Logger абстракция логирования событий арены.
// Реализация логирования должна делаться пользователями библиотеки.
type Logger interface {
	// ArenaGrown арена выделила ещё один блок слотов. chunks число блоков после
	// выделения, capacity общее число слотов.
	ArenaGrown(arena uuid.UUID, chunks, capacity int)

	// InvariantViolated нарушение инварианта структуры поверх арены. Вызывается
	// непосредственно перед паникой с этой ошибкой.
	InvariantViolated(arena uuid.UUID, err error)
}

type nopLogger struct{}

func (nopLogger) ArenaGrown(uuid.UUID, int, int) {}

func (nopLogger) InvariantViolated(uuid.UUID, error) {}
