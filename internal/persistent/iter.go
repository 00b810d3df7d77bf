package persistent

// Iter итератор по значениям списка от головы. Итератор действителен
// пока список не освобождён.
func (l *List[T]) Iter() *Iter[T] {
	l.check("iter")

	return &Iter[T]{
		list: l,
		next: l.head,
	}
}

// Iter итератор по значениям.
type Iter[T any] struct {
	list *List[T]
	next *node[T]
}

// Next следующее значение. После исчерпания всегда отдаёт false.
func (it *Iter[T]) Next() (T, bool) {
	it.list.check("iterate")

	if it.next == nil {
		var zero T
		return zero, false
	}

	n := it.next
	it.next = n.next
	return n.value, true
}
