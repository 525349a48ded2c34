package pairheap_test

import (
	"testing"

	"github.com/lvlath-labs/pcstfast/internal/pairheap"
	"github.com/stretchr/testify/assert"
)

func drain(h *pairheap.Heap) []int {
	var order []int
	for h.Len() > 0 {
		_, p, _ := h.DeleteMin()
		order = append(order, p)
	}

	return order
}

func TestInsertAndMinOrder(t *testing.T) {
	h := pairheap.New()
	h.Insert(3.0, 30)
	h.Insert(1.0, 10)
	h.Insert(2.0, 20)

	key, payload, ok := h.Min()
	assert.True(t, ok)
	assert.Equal(t, 1.0, key)
	assert.Equal(t, 10, payload)

	assert.Equal(t, []int{10, 20, 30}, drain(h))
}

func TestTieBrokenByPayloadDeterministically(t *testing.T) {
	h := pairheap.New()
	h.Insert(5.0, 7)
	h.Insert(5.0, 3)
	h.Insert(5.0, 9)

	assert.Equal(t, []int{3, 7, 9}, drain(h))
}

func TestAddToHeapShiftsEveryKey(t *testing.T) {
	h := pairheap.New()
	h.Insert(1.0, 1)
	h.Insert(5.0, 2)

	h.AddToHeap(10.0)

	key, payload, ok := h.Min()
	assert.True(t, ok)
	assert.Equal(t, 11.0, key)
	assert.Equal(t, 1, payload)

	_, _, _ = h.DeleteMin()
	key, payload, ok = h.Min()
	assert.True(t, ok)
	assert.Equal(t, 15.0, key)
	assert.Equal(t, 2, payload)
}

func TestMeldCombinesBothHeaps(t *testing.T) {
	a := pairheap.New()
	a.Insert(2.0, 1)
	a.Insert(4.0, 2)

	b := pairheap.New()
	b.Insert(1.0, 3)
	b.Insert(3.0, 4)

	m := pairheap.Meld(a, b)
	assert.Equal(t, 4, m.Len())
	assert.Equal(t, []int{3, 1, 4, 2}, drain(m))
}

func TestMeldWithOffsetsPreservesAbsoluteKeys(t *testing.T) {
	a := pairheap.New()
	a.Insert(1.0, 1)
	a.AddToHeap(5.0) // absolute key of payload 1 is now 6.0

	b := pairheap.New()
	b.Insert(2.0, 2)
	b.AddToHeap(1.0) // absolute key of payload 2 is now 3.0

	m := pairheap.Meld(a, b)
	key, payload, ok := m.Min()
	assert.True(t, ok)
	assert.Equal(t, 3.0, key)
	assert.Equal(t, 2, payload)

	_, _, _ = m.DeleteMin()
	key, payload, ok = m.Min()
	assert.True(t, ok)
	assert.Equal(t, 6.0, key)
	assert.Equal(t, 1, payload)
}

func TestEmptyHeap(t *testing.T) {
	h := pairheap.New()
	_, _, ok := h.Min()
	assert.False(t, ok)
	_, _, ok = h.DeleteMin()
	assert.False(t, ok)
}

func TestValueReadsNonMinimalEntry(t *testing.T) {
	h := pairheap.New()
	_ = h.Insert(1.0, 1)
	hd2 := h.Insert(5.0, 2)
	hd3 := h.Insert(9.0, 3)

	assert.Equal(t, 5.0, h.Value(hd2))
	assert.Equal(t, 9.0, h.Value(hd3))

	h.AddToHeap(2.0)
	assert.Equal(t, 7.0, h.Value(hd2))
	assert.Equal(t, 11.0, h.Value(hd3))
}

func TestValueSurvivesMeld(t *testing.T) {
	a := pairheap.New()
	hdA := a.Insert(4.0, 1)
	a.AddToHeap(3.0) // payload 1 now worth 7.0

	b := pairheap.New()
	hdB := b.Insert(2.0, 2)
	b.AddToHeap(1.0) // payload 2 now worth 3.0

	m := pairheap.Meld(a, b)
	assert.Equal(t, 7.0, m.Value(hdA))
	assert.Equal(t, 3.0, m.Value(hdB))

	m.AddToHeap(10.0)
	assert.Equal(t, 17.0, m.Value(hdA))
	assert.Equal(t, 13.0, m.Value(hdB))
}
