package message

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrorCmd(t *testing.T) {

	assert.Nil(t, ErrorCmd(nil))

	err := errors.New("oops")
	cmd := ErrorCmd(err)
	assert.Equal(t, ErrorMsg{Err: err}, cmd())
}

func TestStatusCmd(t *testing.T) {

	cmd := StatusCmd("removed %d", 2)
	assert.Equal(t, StatusMsg{Text: "removed 2"}, cmd())
}
