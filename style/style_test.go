package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRowStyler(t *testing.T) {

	selected := func(row int) bool { return row == 2 }

	styler := RowStyler(1, selected, false)
	assert.Equal(t, UnStyle, styler(-1, 0), "header")
	assert.Equal(t, HlRowStyle, styler(1, 0))
	assert.Equal(t, SelRowStyle, styler(2, 1))
	assert.Equal(t, UnStyle, styler(3, 0))

	dimmed := RowStyler(1, selected, true)
	assert.Equal(t, DisabledStyle, dimmed(1, 0))
	assert.Equal(t, DisabledStyle, dimmed(2, 0))
}
