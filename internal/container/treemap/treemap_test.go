package treemap

import (
	"reflect"
	"testing"
)

func TestTreeMapKeysAreSortedAscending(t *testing.T) {
	m := New[int, string]()
	for _, k := range []int{5, 1, 9, 3, 7} {
		m.Put(k, "v")
	}
	want := []int{1, 3, 5, 7, 9}
	if got := m.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	if m.Size() != 5 {
		t.Errorf("Size() = %d, want 5", m.Size())
	}
}

func TestTreeMapPutOverwritesExistingKey(t *testing.T) {
	m := New[int, string]()
	m.Put(1, "first")
	m.Put(1, "second")

	if m.Size() != 1 {
		t.Errorf("Size() = %d, want 1", m.Size())
	}
	got, ok := m.Get(1)
	if !ok || got != "second" {
		t.Errorf("Get(1) = (%q, %v), want (\"second\", true)", got, ok)
	}
}

func TestTreeMapGetMissingKey(t *testing.T) {
	m := New[int, string]()
	if _, ok := m.Get(42); ok {
		t.Errorf("Get(42) on empty map should report ok=false")
	}
}
