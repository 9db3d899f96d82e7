package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLcmAll(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(1, LcmAll[int]())
	assert.Equal(6, LcmAll(2, 3))
	assert.Equal(12, LcmAll(2, 3, 4))
}

func TestGetKeysSorted(t *testing.T) {
	m := map[int]string{3: "c", 1: "a", 2: "b"}
	assert.Equal(t, []int{1, 2, 3}, GetKeysSorted(m))
}

func TestIsPowerOfTwo(t *testing.T) {
	assert := assert.New(t)
	assert.True(IsPowerOfTwo(1))
	assert.True(IsPowerOfTwo(64))
	assert.False(IsPowerOfTwo(0))
	assert.False(IsPowerOfTwo(12))
}
