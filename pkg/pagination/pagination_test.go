package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	params := Normalize(0, 4)
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 0, params.Offset())

	params = Normalize(3, 4)
	assert.Equal(t, 8, params.Offset())

	params = Normalize(-5, 0)
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 1, params.PageSize)
}

func TestParsePage(t *testing.T) {
	assert.Equal(t, 1, ParsePage(""))
	assert.Equal(t, 1, ParsePage("abc"))
	assert.Equal(t, 1, ParsePage("0"))
	assert.Equal(t, 1, ParsePage("-2"))
	assert.Equal(t, 7, ParsePage("7"))
}

func TestPages(t *testing.T) {
	assert.Equal(t, 1, Pages(0, 4))
	assert.Equal(t, 1, Pages(4, 4))
	assert.Equal(t, 2, Pages(5, 4))
	assert.Equal(t, 3, Pages(9, 4))
	// page size clamps to 1, same as Normalize
	assert.Equal(t, 10, Pages(10, 0))
}
