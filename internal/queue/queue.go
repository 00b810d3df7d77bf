// Package queue односвязная очередь с указателями на первый и последний узлы.
//
// Владение цепочкой идёт от первого узла. Указатель на последний узел
// ничем не владеет и служит только для добавления за O(1): он всегда
// получается через next предыдущего хвоста, то есть указывает внутрь той же
// цепочки, либо оба указателя пусты одновременно.
package queue

// New конструктор пустой очереди.
func New[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Queue очередь (FIFO).
// WARNING: Не предоставляет гарантий безопасности при многопоточном доступе.
type Queue[T any] struct {
	first *node[T]
	last  *node[T]
	len   int
}

// Push добавление нового значения в конец очереди.
func (q *Queue[T]) Push(v T) {
	n := &node[T]{
		value: v,
	}

	if q.last == nil {
		q.first = n
		q.last = n
		q.len = 1
		return
	}

	q.last.next = n
	q.last = q.last.next
	q.len++
}

// Pop извлечение первого значения очереди. Возвращает false, если очередь пуста.
func (q *Queue[T]) Pop() (T, bool) {
	if q.first == nil {
		var zero T
		return zero, false
	}

	f := q.first
	q.first = f.next
	if f.next == nil {
		// в очереди был только один элемент
		q.last = nil
	}
	q.len--

	v := f.value
	f.cleanup()
	return v, true
}

// Peek первое значение очереди без его извлечения.
func (q *Queue[T]) Peek() (T, bool) {
	if q.first == nil {
		var zero T
		return zero, false
	}

	return q.first.value, true
}

// PeekMut указатель на первое значение очереди. Указатель остаётся
// валидным пока значение не извлечено.
func (q *Queue[T]) PeekMut() (*T, bool) {
	if q.first == nil {
		return nil, false
	}

	return &q.first.value, true
}

// Len длина очереди.
func (q *Queue[T]) Len() int {
	return q.len
}

// Clear удаление всех элементов очереди с поузловым разбором цепочки.
func (q *Queue[T]) Clear() {
	for q.first != nil {
		f := q.first
		q.first = f.next
		f.cleanup()
	}

	q.last = nil
	q.len = 0
}
