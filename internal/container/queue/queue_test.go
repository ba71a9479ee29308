package queue

import "testing"

func TestQueueFIFOOrder(t *testing.T) {
	q := New[int]()
	if !q.IsEmpty() {
		t.Fatalf("new queue should be empty")
	}
	q.Enqueue(1)
	q.Enqueue(4)
	q.Enqueue(79)

	if size := q.Size(); size != 3 {
		t.Errorf("Size() = %d, want 3", size)
	}
	val, err := q.Dequeue()
	if err != nil || val != 1 {
		t.Errorf("Dequeue() = (%v, %v), want (1, nil)", val, err)
	}
}

func TestQueueGrowsPastInitialCapacity(t *testing.T) {
	q := New[int]()
	for i := 0; i < 50; i++ {
		q.Enqueue(i)
	}
	if q.Size() != 50 {
		t.Fatalf("Size() = %d, want 50", q.Size())
	}
	for i := 0; i < 50; i++ {
		val, err := q.Dequeue()
		if err != nil || val != i {
			t.Fatalf("Dequeue() = (%v, %v), want (%d, nil)", val, err, i)
		}
	}
	if !q.IsEmpty() {
		t.Fatalf("queue should be empty after draining")
	}
}

func TestQueueDequeueEmpty(t *testing.T) {
	q := New[int]()
	if _, err := q.Dequeue(); err != ErrEmpty {
		t.Errorf("Dequeue() error = %v, want ErrEmpty", err)
	}
}

func TestBoundedQueueEvictsOldest(t *testing.T) {
	q := NewBounded[int](3)
	q.Enqueue(10)
	q.Enqueue(20)
	q.Enqueue(30)
	q.Enqueue(40) // evicts 10

	if q.Size() != 3 {
		t.Fatalf("Size() = %d, want 3", q.Size())
	}
	val, err := q.Dequeue()
	if err != nil || val != 20 {
		t.Errorf("Dequeue() = (%v, %v), want (20, nil)", val, err)
	}
}

func TestBoundedQueuePeekFromRear(t *testing.T) {
	q := NewBounded[int](4)
	for _, v := range []int{100, 200, 300} {
		q.Enqueue(v)
	}

	cases := []struct {
		k    int
		want int
	}{
		{0, 300},
		{1, 200},
		{2, 100},
	}
	for _, tt := range cases {
		got, err := q.PeekFromRear(tt.k)
		if err != nil || got != tt.want {
			t.Errorf("PeekFromRear(%d) = (%v, %v), want (%d, nil)", tt.k, got, err, tt.want)
		}
	}

	if _, err := q.PeekFromRear(3); err != ErrOutOfRange {
		t.Errorf("PeekFromRear(3) error = %v, want ErrOutOfRange", err)
	}

	q.Enqueue(400) // fills the fourth slot, window now [100,200,300,400]
	got, err := q.PeekFromRear(2)
	if err != nil || got != 200 {
		t.Errorf("PeekFromRear(2) after fourth enqueue = (%v, %v), want (200, nil)", got, err)
	}
}
