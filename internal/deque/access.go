package deque

import (
	"github.com/sirkon/errors"

	"github.com/sirkon/chains/internal/arena"
	"github.com/sirkon/chains/internal/invariant"
)

// PeekFront доступ на чтение к первому значению. Возвращает false, если
// очередь пуста. Доступ должен быть освобождён до любого изменения очереди.
func (d *Deque[T]) PeekFront() (*Ref[T], bool) {
	if d.head.IsNil() {
		return nil, false
	}

	return d.borrow(d.head, "peek front"), true
}

// PeekBack доступ на чтение к последнему значению.
func (d *Deque[T]) PeekBack() (*Ref[T], bool) {
	if d.tail.IsNil() {
		return nil, false
	}

	return d.borrow(d.tail, "peek back"), true
}

// PeekFrontMut доступ на запись к первому значению. Возвращает false, если
// очередь пуста. Доступ должен быть освобождён до любого изменения очереди.
func (d *Deque[T]) PeekFrontMut() (*RefMut[T], bool) {
	if d.head.IsNil() {
		return nil, false
	}

	return d.borrowMut(d.head, "peek front mut"), true
}

// PeekBackMut доступ на запись к последнему значению.
func (d *Deque[T]) PeekBackMut() (*RefMut[T], bool) {
	if d.tail.IsNil() {
		return nil, false
	}

	return d.borrowMut(d.tail, "peek back mut"), true
}

// Front копия первого значения. Доступ берётся и освобождается внутри вызова.
func (d *Deque[T]) Front() (T, bool) {
	r, ok := d.PeekFront()
	if !ok {
		var zero T
		return zero, false
	}
	defer r.Release()

	return r.Value(), true
}

// Back копия последнего значения.
func (d *Deque[T]) Back() (T, bool) {
	r, ok := d.PeekBack()
	if !ok {
		var zero T
		return zero, false
	}
	defer r.Release()

	return r.Value(), true
}

// Ref действующий доступ на чтение к значению узла.
type Ref[T any] struct {
	d        *Deque[T]
	h        arena.Handle
	released bool
}

// Value значение узла.
func (r *Ref[T]) Value() T {
	r.d.held(r.released, r.h, "read")
	return r.d.nodes.Get(r.h).value
}

// Release освобождение доступа.
func (r *Ref[T]) Release() {
	r.d.held(r.released, r.h, "release")

	r.d.nodes.Get(r.h).borrow--
	r.d.borrows--
	r.released = true
}

// RefMut действующий доступ на запись к значению узла.
type RefMut[T any] struct {
	d        *Deque[T]
	h        arena.Handle
	released bool
}

// Value значение узла.
func (r *RefMut[T]) Value() T {
	r.d.held(r.released, r.h, "read")
	return r.d.nodes.Get(r.h).value
}

// Set замена значения узла.
func (r *RefMut[T]) Set(v T) {
	r.d.held(r.released, r.h, "write")
	r.d.nodes.Get(r.h).value = v
}

// Update изменение значения узла на месте. Указатель нельзя сохранять
// за пределами f.
func (r *RefMut[T]) Update(f func(v *T)) {
	r.d.held(r.released, r.h, "update")
	f(&r.d.nodes.Get(r.h).value)
}

// Release освобождение доступа.
func (r *RefMut[T]) Release() {
	r.d.held(r.released, r.h, "release")

	r.d.nodes.Get(r.h).borrow = 0
	r.d.borrows--
	r.d.writers--
	r.released = true
}

func (d *Deque[T]) borrow(h arena.Handle, op string) *Ref[T] {
	n := d.nodes.Get(h)
	if n.borrow < 0 {
		panic(d.nodes.Violation(
			errors.Wrap(invariant.New(invariant.ErrorBorrowConflict), "node is borrowed for writing").
				Str("arena-id", d.nodes.ID().String()).
				Str("operation", op).
				Str("node", h.String()),
		))
	}

	n.borrow++
	d.borrows++
	return &Ref[T]{
		d: d,
		h: h,
	}
}

func (d *Deque[T]) borrowMut(h arena.Handle, op string) *RefMut[T] {
	if d.iters > 0 {
		panic(d.nodes.Violation(
			errors.Wrap(invariant.New(invariant.ErrorBorrowConflict), "deque is being iterated").
				Str("arena-id", d.nodes.ID().String()).
				Str("operation", op).
				Int("active-iterators", d.iters),
		))
	}

	n := d.nodes.Get(h)
	if n.borrow != 0 {
		panic(d.nodes.Violation(
			errors.Wrap(invariant.New(invariant.ErrorBorrowConflict), "node is already borrowed").
				Str("arena-id", d.nodes.ID().String()).
				Str("operation", op).
				Str("node", h.String()).
				Int("node-borrows", n.borrow),
		))
	}

	n.borrow = -1
	d.borrows++
	d.writers++
	return &RefMut[T]{
		d: d,
		h: h,
	}
}

func (d *Deque[T]) held(released bool, h arena.Handle, op string) {
	if !released {
		return
	}

	panic(d.nodes.Violation(
		errors.Wrap(invariant.New(invariant.ErrorNotBorrowed), "use released accessor").
			Str("arena-id", d.nodes.ID().String()).
			Str("operation", op).
			Str("node", h.String()),
	))
}
