package rawqueue

import "github.com/sirkon/chains/internal/arena"

// IntoIter забирает цепочку очереди в итератор, очередь становится пустой.
// Узлы остаются в той же арене, так что очередь можно продолжать
// использовать независимо от итератора.
func (q *Queue[T]) IntoIter() *IntoIter[T] {
	it := &IntoIter[T]{
		rest: *q,
	}
	q.head = arena.Handle{}
	q.tail = arena.Handle{}
	q.len = 0

	return it
}

// Iter итератор по значениям от первого к последнему. Извлечение узла,
// до которого итератор ещё не дошёл, приводит к панике при обращении к нему.
func (q *Queue[T]) Iter() *Iter[T] {
	return &Iter[T]{
		nodes: q.nodes,
		next:  q.head,
	}
}

// IterMut итератор по указателям на значения, каждый элемент отдаётся ровно один раз.
func (q *Queue[T]) IterMut() *IterMut[T] {
	return &IterMut[T]{
		nodes: q.nodes,
		next:  q.head,
	}
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
	nodes *arena.Arena[node[T]]
	next  arena.Handle
}

// Next следующее значение. После исчерпания всегда отдаёт false.
func (it *Iter[T]) Next() (T, bool) {
	if it.next.IsNil() {
		var zero T
		return zero, false
	}

	n := it.nodes.Get(it.next)
	it.next = n.next
	return n.value, true
}

// IterMut итератор по указателям на значения.
type IterMut[T any] struct {
	nodes *arena.Arena[node[T]]
	next  arena.Handle
}

// Next указатель на следующее значение. После исчерпания всегда отдаёт false.
func (it *IterMut[T]) Next() (*T, bool) {
	if it.next.IsNil() {
		return nil, false
	}

	n := it.nodes.Get(it.next)
	it.next = n.next
	return &n.value, true
}
