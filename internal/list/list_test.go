package list_test

import (
	"testing"

	"github.com/opencl-go/clblas/internal/list"
)

func TestPushFindRemove(t *testing.T) {
	t.Parallel()
	l := list.New[string]()
	l.PushBack("a")
	h := l.PushBack("b")
	l.PushBack("c")

	found, ok := l.Find(func(v string) bool { return v == "b" })
	if !ok || l.Value(found) != "b" {
		t.Fatalf("expected to find b")
	}

	l.Remove(h)
	if l.Len() != 2 {
		t.Fatalf("expected len 2, got %d", l.Len())
	}
	var seen []string
	l.Each(func(v string) bool {
		seen = append(seen, v)
		return true
	})
	if len(seen) != 2 || seen[0] != "a" || seen[1] != "c" {
		t.Fatalf("unexpected order: %v", seen)
	}
}

func TestCountedMutex(t *testing.T) {
	t.Parallel()
	var m list.CountedMutex
	m.Lock()
	m.Unlock()
	m.Lock()
	m.Unlock()
	if m.Count() != 2 {
		t.Fatalf("expected count 2, got %d", m.Count())
	}
}
