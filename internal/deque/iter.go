package deque

import (
	"github.com/sirkon/errors"

	"github.com/sirkon/chains/internal/arena"
	"github.com/sirkon/chains/internal/invariant"
)

// Iter итератор по значениям от первого к последнему. Пока итератор не
// исчерпан или не закрыт, он считается действующим доступом на чтение ко
// всем узлам: очередь нельзя изменять и нельзя получать RefMut.
func (d *Deque[T]) Iter() *Iter[T] {
	if d.writers > 0 {
		panic(d.nodes.Violation(
			errors.Wrap(invariant.New(invariant.ErrorBorrowConflict), "iterate over deque with active writer").
				Str("arena-id", d.nodes.ID().String()).
				Int("active-writers", d.writers),
		))
	}

	d.borrows++
	d.iters++
	return &Iter[T]{
		d:    d,
		next: d.head,
	}
}

// IntoIter забирает все значения в итератор, очередь становится пустой.
// Итератор отдаёт значения с обоих концов.
func (d *Deque[T]) IntoIter() *IntoIter[T] {
	d.mutable("into iter")

	it := &IntoIter[T]{
		rest: d.chain,
	}
	d.head = arena.Handle{}
	d.tail = arena.Handle{}
	d.len = 0

	return it
}

// Iter итератор по значениям.
type Iter[T any] struct {
	d    *Deque[T]
	next arena.Handle
	done bool
}

// Next следующее значение. После исчерпания доступ освобождается
// и итератор всегда отдаёт false.
func (it *Iter[T]) Next() (T, bool) {
	if it.done || it.next.IsNil() {
		it.Close()
		var zero T
		return zero, false
	}

	n := it.d.nodes.Get(it.next)
	if n.borrow < 0 {
		it.Close()
		panic(it.d.nodes.Violation(
			errors.Wrap(invariant.New(invariant.ErrorBorrowConflict), "iterate over node borrowed for writing").
				Str("arena-id", it.d.nodes.ID().String()).
				Str("node", it.next.String()),
		))
	}

	it.next = n.next
	return n.value, true
}

// Close освобождение доступа до исчерпания. Повторный вызов ничего не делает.
func (it *Iter[T]) Close() {
	if it.done {
		return
	}

	it.done = true
	it.d.borrows--
	it.d.iters--
}

// IntoIter итератор владеющий значениями.
type IntoIter[T any] struct {
	rest chain[T]
}

// Next следующее значение с начала. После исчерпания всегда отдаёт false.
func (it *IntoIter[T]) Next() (T, bool) {
	return it.rest.popFront()
}

// NextBack следующее значение с конца. После исчерпания всегда отдаёт false.
func (it *IntoIter[T]) NextBack() (T, bool) {
	return it.rest.popBack()
}

// Len число оставшихся значений.
func (it *IntoIter[T]) Len() int {
	return it.rest.len
}
