package containers

import (
	"errors"
	"testing"
)

func TestRingQueueFIFO(t *testing.T) {
	rq := NewRingQueue[int](3)
	for i := 1; i <= 3; i++ {
		if err := rq.Enqueue(i); err != nil {
			t.Fatalf("Enqueue(%d): %v", i, err)
		}
	}
	if err := rq.Enqueue(4); !errors.Is(err, ErrQueueFull) {
		t.Fatalf("Enqueue on full queue = %v, want ErrQueueFull", err)
	}
	for want := 1; want <= 3; want++ {
		got, err := rq.Dequeue()
		if err != nil || got != want {
			t.Fatalf("Dequeue() = %d, %v; want %d", got, err, want)
		}
	}
	if _, err := rq.Peek(); !errors.Is(err, ErrQueueEmpty) {
		t.Fatalf("Peek on empty queue = %v, want ErrQueueEmpty", err)
	}
}

func TestRingQueuePushDropsOldest(t *testing.T) {
	rq := NewRingQueue[float64](2)
	rq.Push(1)
	rq.Push(2)
	rq.Push(3)

	var got []float64
	rq.Each(func(v float64) { got = append(got, v) })
	if len(got) != 2 || got[0] != 2 || got[1] != 3 {
		t.Fatalf("Each() = %v, want [2 3]", got)
	}
	if rq.Len() != 2 || !rq.IsFull() {
		t.Fatalf("Len() = %d, IsFull() = %v", rq.Len(), rq.IsFull())
	}
}
