// Package deque двусвязная очередь с доступом к узлам через проверяемые
// при вызове средства доступа.
//
// Узлы живут в арене, prev и next это ручки арены. Для любых двух соседних
// живых узлов A и B верно A.next == B и B.prev == A, у головы нет prev,
// у хвоста нет next.
//
// Доступ к значениям на концах выдаётся средствами доступа Ref (чтение) и
// RefMut (запись): на узел может одновременно действовать либо сколько угодно
// Ref, либо один RefMut. Пока действует хоть одно средство доступа очередь
// нельзя изменять. Нарушение этих правил логическая ошибка: операция
// завершается паникой с invariant.ErrorBorrowConflict.
package deque

import (
	"github.com/sirkon/errors"

	"github.com/sirkon/chains/internal/arena"
	"github.com/sirkon/chains/internal/invariant"
)

// New конструктор пустой очереди. Опции передаются арене узлов.
func New[T any](opts ...arena.Option) (*Deque[T], error) {
	nodes, err := arena.New[node[T]](opts...)
	if err != nil {
		return nil, errors.Wrap(err, "create nodes arena")
	}

	return &Deque[T]{
		chain: chain[T]{
			nodes: nodes,
		},
	}, nil
}

// Deque двусвязная очередь.
// WARNING: Не предоставляет гарантий безопасности при многопоточном доступе.
type Deque[T any] struct {
	chain[T]
	borrows int // действующие средства доступа и итераторы
	iters   int // действующие итераторы Iter
	writers int // действующие RefMut
}

// PushFront добавление значения в начало.
func (d *Deque[T]) PushFront(v T) {
	d.mutable("push front")
	d.pushFront(v)
}

// PushBack добавление значения в конец.
func (d *Deque[T]) PushBack(v T) {
	d.mutable("push back")
	d.pushBack(v)
}

// PopFront извлечение первого значения. Возвращает false, если очередь пуста.
func (d *Deque[T]) PopFront() (T, bool) {
	d.mutable("pop front")
	return d.popFront()
}

// PopBack извлечение последнего значения. Возвращает false, если очередь пуста.
func (d *Deque[T]) PopBack() (T, bool) {
	d.mutable("pop back")
	return d.popBack()
}

// Len длина очереди.
func (d *Deque[T]) Len() int {
	return d.len
}

// Clear извлечение всех значений.
func (d *Deque[T]) Clear() {
	d.mutable("clear")
	for {
		if _, ok := d.popFront(); !ok {
			return
		}
	}
}

func (d *Deque[T]) mutable(op string) {
	if d.borrows == 0 {
		return
	}

	panic(d.nodes.Violation(
		errors.Wrap(invariant.New(invariant.ErrorBorrowConflict), "modify deque with active accessors").
			Str("arena-id", d.nodes.ID().String()).
			Str("operation", op).
			Int("active-accessors", d.borrows),
	))
}

type node[T any] struct {
	value  T
	prev   arena.Handle
	next   arena.Handle
	borrow int // > 0 число читателей, -1 писатель
}

// chain цепочка узлов с концами. Сама по себе не проверяет доступ.
type chain[T any] struct {
	nodes *arena.Arena[node[T]]
	head  arena.Handle
	tail  arena.Handle
	len   int
}

func (c *chain[T]) pushFront(v T) {
	h := c.nodes.Alloc(node[T]{
		value: v,
		next:  c.head,
	})

	if c.head.IsNil() {
		c.tail = h
	} else {
		c.nodes.Get(c.head).prev = h
	}
	c.head = h
	c.len++
}

func (c *chain[T]) pushBack(v T) {
	h := c.nodes.Alloc(node[T]{
		value: v,
		prev:  c.tail,
	})

	if c.tail.IsNil() {
		c.head = h
	} else {
		c.nodes.Get(c.tail).next = h
	}
	c.tail = h
	c.len++
}

func (c *chain[T]) popFront() (T, bool) {
	if c.head.IsNil() {
		var zero T
		return zero, false
	}

	h := c.head
	next := c.owned(h).next
	if next.IsNil() {
		c.tail = arena.Handle{}
	} else {
		c.nodes.Get(next).prev = arena.Handle{}
	}
	c.head = next
	c.len--

	return c.nodes.Free(h).value, true
}

func (c *chain[T]) popBack() (T, bool) {
	if c.tail.IsNil() {
		var zero T
		return zero, false
	}

	h := c.tail
	prev := c.owned(h).prev
	if prev.IsNil() {
		c.head = arena.Handle{}
	} else {
		c.nodes.Get(prev).next = arena.Handle{}
	}
	c.tail = prev
	c.len--

	return c.nodes.Free(h).value, true
}

// owned узел, который можно отцепить: к нему нет средств доступа, после
// сброса ссылки соседа им владеет только цепочка.
func (c *chain[T]) owned(h arena.Handle) *node[T] {
	n := c.nodes.Get(h)
	if n.borrow != 0 {
		panic(c.nodes.Violation(
			errors.Wrap(invariant.New(invariant.ErrorBorrowConflict), "detach borrowed node").
				Str("arena-id", c.nodes.ID().String()).
				Str("node", h.String()).
				Int("node-borrows", n.borrow),
		))
	}

	return n
}
