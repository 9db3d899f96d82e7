package bucket

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notelab/partwise/model"
)

func TestObjectKey(t *testing.T) {
	assert := assert.New(t)

	key := ObjectKey(&model.Score{Title: "My Little Etude"})
	assert.True(strings.HasSuffix(key, ".musicxml"))
	assert.Contains(key, "my-little-etude-")

	untitled := ObjectKey(&model.Score{})
	assert.Contains(untitled, "untitled-")

	// the random suffix keeps republished scores from colliding
	assert.NotEqual(key, ObjectKey(&model.Score{Title: "My Little Etude"}))
}
