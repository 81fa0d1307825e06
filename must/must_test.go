package must

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMust2(t *testing.T) {
	assert.Equal(t, 42, Must2(strconv.Atoi("42")))

	var r1 int
	assert.PanicsWithError(t, `strconv.Atoi: parsing "x": invalid syntax`, func() {
		r1 = Must2(strconv.Atoi("x"))
	})
	assert.Equal(t, 0, r1)
}
