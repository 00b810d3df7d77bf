// Package rawqueue односвязная очередь, узлы которой размещены в арене.
//
// Связи между узлами и позиция хвоста это ручки арены, а не ссылки,
// отслеживаемые сборщиком мусора: согласованность хвоста с цепочкой от головы
// поддерживается вручную при каждой операции. Ошибка в этом месте не может
// привести к порче памяти: обращение по устаревшей ручке проверяется ареной
// и завершается паникой с invariant.ErrorStaleHandle.
package rawqueue

import (
	"github.com/sirkon/errors"

	"github.com/sirkon/chains/internal/arena"
)

// New конструктор пустой очереди. Опции передаются арене узлов.
func New[T any](opts ...arena.Option) (*Queue[T], error) {
	nodes, err := arena.New[node[T]](opts...)
	if err != nil {
		return nil, errors.Wrap(err, "create nodes arena")
	}

	return &Queue[T]{
		nodes: nodes,
	}, nil
}

// Queue очередь (FIFO).
// WARNING: Не предоставляет гарантий безопасности при многопоточном доступе.
type Queue[T any] struct {
	nodes *arena.Arena[node[T]]
	head  arena.Handle
	tail  arena.Handle
	len   int
}

type node[T any] struct {
	value T
	next  arena.Handle
}

// Push добавление значения в конец очереди.
func (q *Queue[T]) Push(v T) {
	h := q.nodes.Alloc(node[T]{value: v})

	if q.tail.IsNil() {
		// Цепочка была пуста: новый узел одновременно голова и хвост.
		q.head = h
	} else {
		q.nodes.Get(q.tail).next = h
	}
	q.tail = h
	q.len++
}

// Pop извлечение первого значения. Возвращает false, если очередь пуста.
func (q *Queue[T]) Pop() (T, bool) {
	if q.head.IsNil() {
		var zero T
		return zero, false
	}

	n := q.nodes.Free(q.head)
	q.head = n.next
	if q.head.IsNil() {
		// Извлечён хвост, ручка на него больше недействительна.
		q.tail = arena.Handle{}
	}
	q.len--

	return n.value, true
}

// Peek первое значение без извлечения.
func (q *Queue[T]) Peek() (T, bool) {
	if q.head.IsNil() {
		var zero T
		return zero, false
	}

	return q.nodes.Get(q.head).value, true
}

// PeekMut указатель на первое значение. Остаётся валидным пока значение
// не извлечено: слоты арены не перемещаются.
func (q *Queue[T]) PeekMut() (*T, bool) {
	if q.head.IsNil() {
		return nil, false
	}

	return &q.nodes.Get(q.head).value, true
}

// Len длина очереди.
func (q *Queue[T]) Len() int {
	return q.len
}

// Clear извлечение всех элементов.
func (q *Queue[T]) Clear() {
	for {
		if _, ok := q.Pop(); !ok {
			return
		}
	}
}
