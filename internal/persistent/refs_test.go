package persistent

import (
	"testing"

	"github.com/sirkon/deepequal"
)

func TestListRefs(t *testing.T) {
	// Два списка с общим хвостом:
	//   a: 3 → 2 → 1
	//   b: 4 ↗
	single := New[int]().Prepend(1)
	base := single.Prepend(2)
	single.Release()
	n2 := base.head
	n1 := n2.next

	a := base.Prepend(3)
	b := base.Prepend(4)
	base.Release()

	checkRefs(t, "after base release", map[string]int{"n2": n2.refs, "n1": n1.refs}, map[string]int{
		"n2": 2, // ссылки из узлов 3 и 4
		"n1": 1,
	})

	a.Release()
	checkRefs(t, "after a release", map[string]int{"n2": n2.refs, "n1": n1.refs}, map[string]int{
		"n2": 1,
		"n1": 1,
	})
	if n2.next != n1 {
		t.Error("shared node must not be taken apart while it is still referenced")
	}

	tail := b.Tail()
	checkRefs(t, "after b tail", map[string]int{"n2": n2.refs}, map[string]int{"n2": 2})

	b.Release()
	checkRefs(t, "after b release", map[string]int{"n2": n2.refs, "n1": n1.refs}, map[string]int{
		"n2": 1,
		"n1": 1,
	})

	tail.Release()
	checkRefs(t, "after tail release", map[string]int{"n2": n2.refs, "n1": n1.refs}, map[string]int{
		"n2": 0,
		"n1": 0,
	})
	if n2.next != nil || n1.next != nil || n2.value != 0 || n1.value != 0 {
		t.Error("unreferenced nodes must be taken apart")
	}
}

func TestListClone(t *testing.T) {
	l := New[string]().Prepend("a")
	n := l.head

	c := l.Clone()
	if n.refs != 2 {
		t.Errorf("clone must add a share, got %d", n.refs)
	}

	l.Release()
	if v, ok := c.Head(); !ok || v != "a" {
		t.Errorf("clone must keep the chain alive, got (%q, %v)", v, ok)
	}

	c.Release()
	if n.refs != 0 || n.value != "" {
		t.Error("node must be taken apart after the last share is gone")
	}
}

func checkRefs(t *testing.T, title string, got, want map[string]int) {
	t.Helper()

	if !deepequal.Equal(want, got) {
		t.Errorf("%s: reference counters mismatch", title)
		deepequal.SideBySide(t, title, want, got)
	}
}
