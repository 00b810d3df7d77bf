package queue

// IntoIter забирает все элементы очереди в итератор, очередь становится пустой.
func (q *Queue[T]) IntoIter() *IntoIter[T] {
	it := &IntoIter[T]{
		rest: *q,
	}
	*q = Queue[T]{}

	return it
}

// Iter итератор по значениям от первого к последнему. Очередь не должна
// изменяться пока итератор используется.
func (q *Queue[T]) Iter() *Iter[T] {
	return &Iter[T]{next: q.first}
}

// IterMut итератор по указателям на значения от первого к последнему,
// каждый элемент отдаётся ровно один раз.
func (q *Queue[T]) IterMut() *IterMut[T] {
	return &IterMut[T]{next: q.first}
}

// IntoIter итератор владеющий элементами.
type IntoIter[T any] struct {
	rest Queue[T]
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
