package rawqueue

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sirkon/deepequal"
	"github.com/sirkon/errors"

	"github.com/sirkon/chains/internal/arena"
	"github.com/sirkon/chains/internal/invariant"
	"github.com/sirkon/chains/internal/mocks"
	"github.com/sirkon/chains/internal/tlog"
)

func TestQueue(t *testing.T) {
	t.Run("basics", func(t *testing.T) {
		q := newQueue[int](t)
		q.expectPop(t, 0, false)

		q.Push(1)
		q.Push(2)
		q.Push(3)

		q.expectPop(t, 1, true)
		q.expectPop(t, 2, true)

		q.Push(4)
		q.Push(5)

		q.expectPop(t, 3, true)
		q.expectPop(t, 4, true)
		q.expectPop(t, 5, true)
		q.expectPop(t, 0, false)
		q.checkEmpty(t)

		q.Push(6)
		q.Push(7)
		q.checkTail(t)

		q.expectPop(t, 6, true)
		q.expectPop(t, 7, true)
		q.expectPop(t, 0, false)
		q.checkEmpty(t)
	})

	t.Run("mixed", func(t *testing.T) {
		q := newQueue[int](t, arena.WithChunkSize(2))
		q.Push(1)
		q.Push(2)
		q.Push(3)

		q.expectPop(t, 1, true)
		q.Push(4)
		q.expectPop(t, 2, true)
		q.Push(5)

		if v, ok := q.Peek(); !ok || v != 3 {
			t.Errorf("3 expected at the head, got (%d, %v)", v, ok)
		}
		q.Push(6)
		if p, ok := q.PeekMut(); ok {
			*p *= 10
		}
		if v, _ := q.Peek(); v != 30 {
			t.Errorf("change through peek must be visible, got %d", v)
		}
		q.expectPop(t, 30, true)

		for it := q.IterMut(); ; {
			p, ok := it.Next()
			if !ok {
				break
			}
			*p *= 100
		}

		got := collect(q.Iter())
		if !deepequal.Equal([]int{400, 500, 600}, got) {
			t.Error("iteration mismatch")
			deepequal.SideBySide(t, "values", []int{400, 500, 600}, got)
		}

		q.expectPop(t, 400, true)
		if p, ok := q.PeekMut(); ok {
			*p *= 10
		}
		if v, _ := q.Peek(); v != 5000 {
			t.Errorf("5000 expected at the head, got %d", v)
		}
		q.Push(7)
		q.checkTail(t)

		q.Clear()
		q.checkEmpty(t)
		if q.nodes.Len() != 0 {
			t.Errorf("all nodes must be released, %d are alive", q.nodes.Len())
		}
	})

	t.Run("slots-reused", func(t *testing.T) {
		q := newQueue[int](t, arena.WithChunkSize(4))
		for i := 0; i < 1000; i++ {
			q.Push(i)
			q.Push(i)
			q.expectPop(t, i, true)
			q.expectPop(t, i, true)
		}

		if q.nodes.Cap() != 4 {
			t.Errorf("freed slots must be reused, arena capacity is %d", q.nodes.Cap())
		}
	})

	t.Run("into-iter", func(t *testing.T) {
		q := newQueue[string](t)
		q.Push("a")
		q.Push("b")

		it := q.IntoIter()
		q.checkEmpty(t)

		q.Push("c")
		v, _ := it.Next()
		q.expectPop(t, "c", true)
		w, _ := it.Next()
		if _, ok := it.Next(); ok {
			t.Error("exhausted iterator must not resurrect elements")
		}

		if !deepequal.Equal([]string{"a", "b"}, []string{v, w}) {
			t.Error("drained values mismatch")
			deepequal.SideBySide(t, "drained", []string{"a", "b"}, []string{v, w})
		}
		if q.nodes.Len() != 0 {
			t.Errorf("all nodes must be released, %d are alive", q.nodes.Len())
		}
	})

	t.Run("invalid-options", func(t *testing.T) {
		_, err := New[int](arena.WithChunkSize(3))
		if err == nil {
			t.Error("invalid chunk size must be rejected")
			return
		}
		tlog.Log(t, err)
	})
}

func TestQueueStaleIteration(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewArenaLoggerMock(ctrl)
	logger.EXPECT().ArenaGrown(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	logger.EXPECT().InvariantViolated(gomock.Any(), gomock.Any()).Times(1)

	q := newQueue[int](t, arena.WithLogger(logger))
	q.Push(1)
	q.Push(2)

	it := q.Iter()
	if v, _ := it.Next(); v != 1 {
		t.Errorf("1 expected, got %d", v)
	}

	// Узел, до которого не дошёл итератор, извлекается и его слот занимается заново.
	q.Pop()
	q.Pop()
	q.Push(3)

	tlog.Violation(t, invariant.ErrorStaleHandle, func() {
		it.Next()
	})
}

func newQueue[T any](t *testing.T, opts ...arena.Option) *Queue[T] {
	t.Helper()

	q, err := New[T](opts...)
	if err != nil {
		tlog.Error(t, errors.Wrap(err, "create queue"))
		t.FailNow()
	}

	return q
}

func collect[T any](it *Iter[T]) []T {
	var res []T
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		res = append(res, v)
	}

	return res
}

func (q *Queue[T]) expectPop(t *testing.T, want T, wantOK bool) {
	t.Helper()

	v, ok := q.Pop()
	if ok != wantOK || !deepequal.Equal(v, want) {
		t.Errorf("pop: (%v, %v) expected, got (%v, %v)", want, wantOK, v, ok)
	}
}

func (q *Queue[T]) checkEmpty(t *testing.T) {
	t.Helper()

	if !q.head.IsNil() || !q.tail.IsNil() || q.len != 0 {
		t.Error("both head and tail must be absent in an empty queue")
	}
}

// checkTail проверяет, что хвост это последний узел достижимый от головы.
func (q *Queue[T]) checkTail(t *testing.T) {
	t.Helper()

	var last arena.Handle
	var count int
	for h := q.head; !h.IsNil(); h = q.nodes.Get(h).next {
		last = h
		count++
	}

	if last != q.tail {
		t.Error("tail must be the last node reachable from the head")
	}
	if count != q.len {
		t.Errorf("length %d does not match the chain of %d nodes", q.len, count)
	}
}
