package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	t.Run("splits on the first hyphen only", func(t *testing.T) {
		id := Parse("42-ana-maria@example.com")
		assert.Equal(t, "42", id.UserID)
		assert.Equal(t, "ana-maria@example.com", id.Email)
		assert.True(t, id.Recognized())
	})

	t.Run("payload without hyphen is unrecognized", func(t *testing.T) {
		id := Parse("justsomenoise")
		assert.Equal(t, "justsomenoise", id.UserID)
		assert.Empty(t, id.Email)
		assert.False(t, id.Recognized())
	})

	t.Run("empty payload", func(t *testing.T) {
		id := Parse("")
		assert.Empty(t, id.UserID)
		assert.Empty(t, id.Email)
		assert.False(t, id.Recognized())
	})

	t.Run("hyphen with empty email is unrecognized", func(t *testing.T) {
		id := Parse("42-")
		assert.Equal(t, "42", id.UserID)
		assert.False(t, id.Recognized())
	})
}
