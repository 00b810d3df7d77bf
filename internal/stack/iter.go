package stack

// IntoIter забирает все элементы стека в итератор, сам стек становится пустым.
// Итератор отдаёт элементы от вершины ко дну.
func (s *Stack[T]) IntoIter() *IntoIter[T] {
	it := &IntoIter[T]{
		rest: Stack[T]{
			head: s.head,
			len:  s.len,
		},
	}
	s.head = nil
	s.len = 0

	return it
}

// Iter итератор по значениям стека от вершины ко дну. Стек не должен
// изменяться пока итератор используется.
func (s *Stack[T]) Iter() *Iter[T] {
	return &Iter[T]{next: s.head}
}

// IterMut итератор по указателям на значения стека от вершины ко дну.
// Каждый элемент отдаётся ровно один раз.
func (s *Stack[T]) IterMut() *IterMut[T] {
	return &IterMut[T]{next: s.head}
}

// IntoIter итератор владеющий элементами.
type IntoIter[T any] struct {
	rest Stack[T]
}

// Next следующий элемент. После исчерпания всегда отдаёт false.
func (it *IntoIter[T]) Next() (T, bool) {
	return it.rest.Pop()
}

// Len число оставшихся элементов.
func (it *IntoIter[T]) Len() int {
	return it.rest.Len()
}

// Iter итератор по значениям.
type Iter[T any] struct {
	next *node[T]
}

// Next следующее значение. После исчерпания всегда отдаёт false.
func (it *Iter[T]) Next() (T, bool) {
	if it.next == nil {
		var zero T
		return zero, false
	}

	n := it.next
	it.next = n.next
	return n.value, true
}

// IterMut итератор по указателям на значения.
type IterMut[T any] struct {
	next *node[T]
}

// Next указатель на следующее значение. После исчерпания всегда отдаёт false.
func (it *IterMut[T]) Next() (*T, bool) {
	if it.next == nil {
		return nil, false
	}

	n := it.next
	it.next = n.next
	return &n.value, true
}
