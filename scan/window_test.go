package scan

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWindow(t *testing.T) {
	t.Run("scan closes the window and parses the payload", func(t *testing.T) {
		var reason atomic.Value
		w := OpenWindow(time.Minute, func(r CloseReason) { reason.Store(r) })

		id, err := w.Scan("7-tourist@example.com")
		assert.NoError(t, err)
		assert.Equal(t, "7", id.UserID)
		assert.False(t, w.IsOpen())
		assert.Equal(t, CloseReasonScanned, reason.Load())
	})

	t.Run("scan after close fails", func(t *testing.T) {
		w := OpenWindow(time.Minute, nil)
		w.Close()

		_, err := w.Scan("7-tourist@example.com")
		assert.ErrorIs(t, err, ErrWindowClosed)
	})

	t.Run("window times out on its own", func(t *testing.T) {
		done := make(chan CloseReason, 1)
		w := OpenWindow(10*time.Millisecond, func(r CloseReason) { done <- r })

		select {
		case r := <-done:
			assert.Equal(t, CloseReasonTimeout, r)
		case <-time.After(time.Second):
			t.Fatal("window never timed out")
		}
		assert.False(t, w.IsOpen())
	})

	t.Run("onClose fires exactly once", func(t *testing.T) {
		var calls atomic.Int32
		w := OpenWindow(10*time.Millisecond, func(CloseReason) { calls.Add(1) })

		w.Close()
		w.Close()
		time.Sleep(30 * time.Millisecond)
		assert.Equal(t, int32(1), calls.Load())
	})
}
