// Package arena хранилище узлов с адресацией целочисленными ручками.
//
// Узлы живут в блоках фиксированного размера, блоки никогда не перемещаются,
// поэтому указатель на значение полученный по живой ручке остаётся валидным
// до освобождения слота. Каждая ручка несёт поколение слота: после освобождения
// поколение увеличивается и все прежние ручки на этот слот становятся
// недействительными, даже если слот уже занят другим узлом.
package arena

import (
	"fmt"
	"math/bits"

	"github.com/google/uuid"
	"github.com/sirkon/errors"

	"github.com/sirkon/chains/internal/invariant"
)

// Handle ручка узла в арене. Нулевое значение означает отсутствие узла.
type Handle struct {
	index uint32 // номер слота + 1
	gen   uint32
}

// IsNil проверка на отсутствие узла.
func (h Handle) IsNil() bool {
	return h.index == 0
}

func (h Handle) String() string {
	if h.IsNil() {
		return "nil"
	}

	return fmt.Sprintf("%d#%d", h.index-1, h.gen)
}

// New конструктор арены.
func New[T any](opts ...Option) (*Arena[T], error) {
	c := config{
		chunkSize: DefaultChunkSize,
		logger:    nopLogger{},
	}
	for _, opt := range opts {
		if err := opt.apply(&c); err != nil {
			return nil, errors.Wrap(err, opt.String())
		}
	}

	return &Arena[T]{
		id:     uuid.New(),
		shift:  uint(bits.TrailingZeros(uint(c.chunkSize))),
		mask:   uint32(c.chunkSize - 1),
		logger: c.logger,
	}, nil
}

// Arena хранилище узлов типа T.
// WARNING: Не предоставляет гарантий безопасности при многопоточном доступе.
type Arena[T any] struct {
	id     uuid.UUID
	chunks [][]slot[T]
	shift  uint
	mask   uint32

	used uint32 // слоты, которые выдавались хотя бы раз
	free uint32 // голова списка свободных слотов, номер + 1
	live int

	logger Logger
}

type slot[T any] struct {
	value T
	gen   uint32
	busy  bool
	next  uint32
}

// ID идентификатор арены.
func (a *Arena[T]) ID() uuid.UUID {
	return a.id
}

// Alloc размещение нового узла.
func (a *Arena[T]) Alloc(v T) Handle {
	var index uint32
	if a.free != 0 {
		index = a.free - 1
		s := a.slot(index)
		a.free = s.next
		s.next = 0
	} else {
		if int(a.used) == a.Cap() {
			a.grow()
		}
		index = a.used
		a.used++
	}

	s := a.slot(index)
	s.value = v
	s.busy = true
	a.live++

	return Handle{
		index: index + 1,
		gen:   s.gen,
	}
}

// Get указатель на узел по ручке. Паникует с invariant.ErrorStaleHandle,
// если ручка не указывает на живой узел.
func (a *Arena[T]) Get(h Handle) *T {
	return &a.lookup(h, "get").value
}

// Free освобождение узла с возвратом его содержимого.
func (a *Arena[T]) Free(h Handle) T {
	s := a.lookup(h, "free")

	v := s.value
	var zero T
	s.value = zero
	s.busy = false
	s.gen++
	s.next = a.free
	a.free = h.index
	a.live--

	return v
}

// Valid проверка, что ручка указывает на живой узел.
func (a *Arena[T]) Valid(h Handle) bool {
	if h.IsNil() || h.index-1 >= a.used {
		return false
	}

	s := a.slot(h.index - 1)
	return s.busy && s.gen == h.gen
}

// Len число живых узлов.
func (a *Arena[T]) Len() int {
	return a.live
}

// Cap число слотов во всех выделенных блоках.
func (a *Arena[T]) Cap() int {
	return len(a.chunks) << a.shift
}

// Violation сообщает логгеру о нарушении инварианта структуры поверх арены
// и возвращает ту же ошибку. Вызывающая сторона должна запаниковать с результатом.
func (a *Arena[T]) Violation(err error) error {
	a.logger.InvariantViolated(a.id, err)
	return err
}

func (a *Arena[T]) lookup(h Handle, op string) *slot[T] {
	if h.IsNil() {
		panic(a.Violation(
			errors.Wrap(invariant.New(invariant.ErrorStaleHandle), "access node by nil handle").
				Str("arena-id", a.id.String()).
				Str("operation", op),
		))
	}

	index := h.index - 1
	if index >= a.used {
		panic(a.Violation(
			errors.Wrap(invariant.New(invariant.ErrorStaleHandle), "handle points out of arena").
				Str("arena-id", a.id.String()).
				Str("operation", op).
				Str("handle", h.String()).
				Int("slots-used", int(a.used)),
		))
	}

	s := a.slot(index)
	if !s.busy || s.gen != h.gen {
		panic(a.Violation(
			errors.Wrap(invariant.New(invariant.ErrorStaleHandle), "node was released").
				Str("arena-id", a.id.String()).
				Str("operation", op).
				Str("handle", h.String()).
				Int("slot-generation", int(s.gen)).
				Bool("slot-busy", s.busy),
		))
	}

	return s
}

func (a *Arena[T]) slot(index uint32) *slot[T] {
	return &a.chunks[index>>a.shift][index&a.mask]
}

func (a *Arena[T]) grow() {
	a.chunks = append(a.chunks, make([]slot[T], 1<<a.shift))
	a.logger.ArenaGrown(a.id, len(a.chunks), a.Cap())
}
