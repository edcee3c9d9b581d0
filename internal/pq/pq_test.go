package pq

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQueuePopOrder(t *testing.T) {
	q := New[int]()
	q.Push(3, 3.0)
	q.Push(1, 1.0)
	q.Push(2, 2.0)

	var order []int
	for !q.IsEmpty() {
		k, _, ok := q.Pop()
		require.True(t, ok)
		order = append(order, k)
	}
	require.Equal(t, []int{1, 2, 3}, order)
}

func TestQueueDecreaseKey(t *testing.T) {
	q := New[string]()
	q.Push("a", 10)
	q.Push("b", 5)
	// Decrease "a" below "b".
	q.Push("a", 1)

	k, p, ok := q.Pop()
	require.True(t, ok)
	require.Equal(t, "a", k)
	require.Equal(t, 1.0, p)
}

func TestQueueIgnoresIncrease(t *testing.T) {
	q := New[string]()
	q.Push("a", 1)
	q.Push("a", 5) // must not raise priority
	_, p, _ := q.Pop()
	require.Equal(t, 1.0, p)
}

func TestQueueTieBreakIsStableInsertionOrder(t *testing.T) {
	q := New[int]()
	q.Push(5, 1.0)
	q.Push(1, 1.0)
	q.Push(3, 1.0)

	k, _, _ := q.Pop()
	require.Equal(t, 5, k)
}
