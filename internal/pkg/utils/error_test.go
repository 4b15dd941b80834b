package utils

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiErrorEmpty(t *testing.T) {
	t.Parallel()
	e := NewMultiError()
	assert.Equal(t, 0, e.Len())
	assert.NoError(t, e.ErrorOrNil())
}

func TestMultiErrorBulletList(t *testing.T) {
	t.Parallel()
	e := NewMultiError()
	e.Add(fmt.Errorf("first problem"))
	e.Add(fmt.Errorf("second problem"))
	e.SetPrefix("2 item(s) failed")

	err := e.ErrorOrNil()
	require.Error(t, err)
	assert.Equal(t, "2 item(s) failed\n- first problem\n- second problem", err.Error())
}

func TestMultiErrorFlattensNested(t *testing.T) {
	t.Parallel()
	inner := NewMultiError()
	inner.Add(fmt.Errorf("inner problem"))

	e := NewMultiError()
	e.Add(fmt.Errorf("outer problem"))
	e.Add(inner)

	assert.Equal(t, 2, e.Len())
	assert.Equal(t, []string{"- outer problem", "- inner problem"}, e.Errors())
}
