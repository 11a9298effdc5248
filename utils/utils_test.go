package utils

import (
	"slices"
	"testing"

	"github.com/elliotchance/orderedmap/v2"
)

func TestCircularQueueOverwritesOldest(t *testing.T) {
	q := NewCircularQueue[int](3)
	for i := 1; i <= 5; i++ {
		q.Append(i)
	}
	if got := slices.Collect(q.Iter()); !slices.Equal(got, []int{3, 4, 5}) {
		t.Fatalf("got %v, want [3 4 5]", got)
	}
	q.Clear()
	if q.Len() != 0 {
		t.Fatalf("len = %d after clear", q.Len())
	}
}

func TestOrderedMapToString(t *testing.T) {
	m := orderedmap.NewOrderedMap[string, any]()
	m.Set("type", "speed")
	m.Set("height", 1.25)
	if got := OrderedMapToString(m); got != "[type=speed height=1.25]" {
		t.Fatalf("got %q", got)
	}
	if got := OrderedMapToString(nil); got != "[]" {
		t.Fatalf("got %q", got)
	}
}
