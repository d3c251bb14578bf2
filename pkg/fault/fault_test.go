package fault

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRaise(t *testing.T) {
	defer func() {
		f, ok := As(recover())
		require.True(t, ok)
		assert.Equal(t, Unwrap, f.Kind)
		assert.Equal(t, "bad thing 42", f.Message)
		assert.Equal(t, "Unwrap: bad thing 42", f.Error())
	}()

	Raise(Unwrap, "bad thing %d", 42)
}

func TestAs_ForeignPanic(t *testing.T) {
	_, ok := As("some other panic")
	assert.False(t, ok)

	_, ok = As(nil)
	assert.False(t, ok)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "Unwrap", Unwrap.String())
	assert.Equal(t, "Kind(200)", Kind(200).String())
}
