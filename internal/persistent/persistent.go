// Package persistent неизменяемый односвязный список с разделяемыми хвостами.
//
// Prepend и Tail не копируют цепочку и не меняют исходный список: новые списки
// ссылаются на те же узлы. Узел после создания не меняется. Каждый узел ведёт
// счётчик ссылок на себя (от списков и от предшествующих узлов), Release
// освобождает узлы начиная с головы и останавливается на первом узле,
// который ещё кем-то используется.
package persistent

import (
	"github.com/sirkon/errors"

	"github.com/sirkon/chains/internal/invariant"
)

// New конструктор пустого списка.
func New[T any]() *List[T] {
	return &List[T]{}
}

// List неизменяемый список. Значение *List это одна доля владения цепочкой:
// после Release список использовать нельзя.
// WARNING: Не предоставляет гарантий безопасности при многопоточном доступе.
type List[T any] struct {
	head     *node[T]
	released bool
}

type node[T any] struct {
	value T
	next  *node[T]
	refs  int
}

// Prepend новый список с данным значением в голове и цепочкой этого списка
// в качестве продолжения.
func (l *List[T]) Prepend(v T) *List[T] {
	l.check("prepend")

	return &List[T]{
		head: &node[T]{
			value: v,
			next:  l.head.share(),
			refs:  1,
		},
	}
}

// Tail новый список без первого элемента. Хвост пустого списка пуст.
func (l *List[T]) Tail() *List[T] {
	l.check("tail")

	if l.head == nil {
		return New[T]()
	}

	return &List[T]{
		head: l.head.next.share(),
	}
}

// Head первый элемент списка.
func (l *List[T]) Head() (T, bool) {
	l.check("head")

	if l.head == nil {
		var zero T
		return zero, false
	}

	return l.head.value, true
}

// IsEmpty проверка на пустоту.
func (l *List[T]) IsEmpty() bool {
	l.check("is empty")

	return l.head == nil
}

// Clone ещё одна доля владения той же цепочкой.
func (l *List[T]) Clone() *List[T] {
	l.check("clone")

	return &List[T]{
		head: l.head.share(),
	}
}

// Release отказ от владения цепочкой. Узлы, на которые больше никто
// не ссылается, разбираются в цикле от головы, разбор останавливается на
// первом узле с оставшимися ссылками: он и всё после него ещё достижимы
// из других списков.
func (l *List[T]) Release() {
	if l.released {
		panic(errors.Wrap(invariant.New(invariant.ErrorDoubleRelease), "release list"))
	}

	n := l.head
	l.head = nil
	l.released = true

	for n != nil {
		n.refs--
		switch {
		case n.refs > 0:
			return
		case n.refs < 0:
			panic(errors.Wrap(invariant.New(invariant.ErrorDoubleRelease), "release node").
				Int("node-refs", n.refs))
		}

		next := n.next
		var zero T
		n.next = nil
		n.value = zero
		n = next
	}
}

func (l *List[T]) check(op string) {
	if l.released {
		panic(errors.Wrap(invariant.New(invariant.ErrorUseAfterRelease), "access released list").
			Str("operation", op))
	}
}

func (n *node[T]) share() *node[T] {
	if n != nil {
		n.refs++
	}

	return n
}
