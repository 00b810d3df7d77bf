package queue

// node узел очереди, владеющий следующим узлом.
type node[T any] struct {
	next *node[T]

	value T
}

// cleanup отцепление узла от цепочки и сброс значения, для упрощения работы GC.
func (n *node[T]) cleanup() {
	var zero T
	n.next = nil
	n.value = zero
}
