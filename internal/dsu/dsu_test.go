package dsu_test

import (
	"testing"

	"github.com/lvlath-labs/pcstfast/internal/dsu"
	"github.com/stretchr/testify/assert"
)

func TestNewSingletons(t *testing.T) {
	d := dsu.New(4)
	for i := 0; i < 4; i++ {
		assert.Equal(t, i, d.Find(i), "singleton %d should be its own representative", i)
	}
	assert.Equal(t, 4, d.Len())
}

func TestMergeCreatesNewRepresentative(t *testing.T) {
	d := dsu.New(3)
	k := d.Merge(0, 1)
	assert.Equal(t, 3, k, "first merge mints id 3")
	assert.Equal(t, k, d.Find(0))
	assert.Equal(t, k, d.Find(1))
	assert.Equal(t, 2, d.Find(2), "untouched singleton keeps its own id")
	assert.Equal(t, 4, d.Len())
}

func TestChainedMergesAndPathCompression(t *testing.T) {
	d := dsu.New(4)
	k1 := d.Merge(0, 1)     // 4
	k2 := d.Merge(2, 3)     // 5
	root := d.Merge(k1, k2) // 6

	for i := 0; i < 4; i++ {
		assert.Equal(t, root, d.Find(i), "vertex %d should resolve to the final super-cluster", i)
	}
	assert.Equal(t, root, d.Find(k1))
	assert.Equal(t, root, d.Find(k2))
}

func TestFindIsIdempotent(t *testing.T) {
	d := dsu.New(2)
	k := d.Merge(0, 1)
	first := d.Find(0)
	second := d.Find(0)
	assert.Equal(t, first, second)
	assert.Equal(t, k, first)
}
