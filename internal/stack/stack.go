// Package stack односвязный стек, каждый узел которого принадлежит
// исключительно предшественнику (первый узел принадлежит самому стеку).
package stack

// New конструктор пустого стека.
func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Stack стек (LIFO) поверх односвязной цепочки узлов.
// WARNING: Не предоставляет гарантий безопасности при многопоточном доступе.
type Stack[T any] struct {
	head *node[T]
	len  int
}

type node[T any] struct {
	value T
	next  *node[T]
}

// Push добавление значения на вершину стека.
func (s *Stack[T]) Push(v T) {
	s.head = &node[T]{
		value: v,
		next:  s.head,
	}
	s.len++
}

// Pop снятие значения с вершины стека. Возвращает false, если стек пуст.
func (s *Stack[T]) Pop() (T, bool) {
	if s.head == nil {
		var zero T
		return zero, false
	}

	n := s.head
	s.head = n.next
	s.len--

	n.next = nil // для упрощения работы GC
	return n.value, true
}

// Peek значение на вершине стека без его снятия.
func (s *Stack[T]) Peek() (T, bool) {
	if s.head == nil {
		var zero T
		return zero, false
	}

	return s.head.value, true
}

// PeekMut указатель на значение на вершине стека. Указатель остаётся
// валидным пока значение не снято со стека.
func (s *Stack[T]) PeekMut() (*T, bool) {
	if s.head == nil {
		return nil, false
	}

	return &s.head.value, true
}

// Len число элементов в стеке.
func (s *Stack[T]) Len() int {
	return s.len
}

// Clear удаление всех элементов. Узлы отцепляются по одному в цикле,
// глубина разбора не зависит от длины цепочки.
func (s *Stack[T]) Clear() {
	n := s.head
	for n != nil {
		next := n.next
		n.next = nil
		n = next
	}

	s.head = nil
	s.len = 0
}
