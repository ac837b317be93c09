package redemption

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"turipass.io/terminal/models"
	"turipass.io/terminal/models/enum"
	"turipass.io/terminal/scan"
)

func scannedSession(t *testing.T) *Session {
	t.Helper()
	s := NewSession()
	assert.NoError(t, s.ApplyScan(scan.Parse("42-tourist@example.com")))
	return s
}

func selectedSession(t *testing.T, promotion models.Promotion) *Session {
	t.Helper()
	s := scannedSession(t)
	assert.NoError(t, s.SelectPromotion(promotion))
	return s
}

func limitedPromotion(stock int) models.Promotion {
	return models.Promotion{ID: 10, Title: "2x1 menu", AvailableQuantity: &stock}
}

func TestSessionStateMachine(t *testing.T) {
	t.Run("new session starts idle", func(t *testing.T) {
		s := NewSession()
		assert.Equal(t, enum.SessionStateIdle, s.State())
		assert.NotEmpty(t, s.ID())
	})

	t.Run("scan moves idle to scanned", func(t *testing.T) {
		s := scannedSession(t)
		assert.Equal(t, enum.SessionStateScanned, s.State())

		view := s.View()
		assert.Equal(t, "42", view.UserID)
		assert.Equal(t, "tourist@example.com", view.Email)
		assert.True(t, view.Recognized)
	})

	t.Run("second scan without reset is rejected", func(t *testing.T) {
		s := scannedSession(t)
		err := s.ApplyScan(scan.Parse("7-other@example.com"))
		assert.ErrorIs(t, err, ErrInvalidState)
		assert.Equal(t, "42", s.View().UserID)
	})

	t.Run("selecting before scanning is rejected", func(t *testing.T) {
		s := NewSession()
		err := s.SelectPromotion(limitedPromotion(5))
		assert.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("reselecting keeps form fields", func(t *testing.T) {
		s := selectedSession(t, limitedPromotion(5))
		assert.NoError(t, s.SetQuantity("2"))
		assert.NoError(t, s.SetAmount("30.50"))

		assert.NoError(t, s.SelectPromotion(models.Promotion{ID: 11}))
		view := s.View()
		assert.Equal(t, int64(11), view.Promotion.ID)
		assert.Equal(t, "2", view.Quantity)
		assert.Equal(t, "30.50", view.Amount)
	})
}

func TestSessionQuantityBound(t *testing.T) {
	t.Run("quantity above stock is rejected and field keeps its value", func(t *testing.T) {
		s := selectedSession(t, limitedPromotion(3))
		assert.NoError(t, s.SetQuantity("2"))

		err := s.SetQuantity("4")
		assert.ErrorIs(t, err, ErrQuantityExceeds)
		assert.Equal(t, "2", s.View().Quantity)
	})

	t.Run("quantity equal to stock is accepted", func(t *testing.T) {
		s := selectedSession(t, limitedPromotion(3))
		assert.NoError(t, s.SetQuantity("3"))
	})

	t.Run("nil stock means unlimited", func(t *testing.T) {
		s := selectedSession(t, models.Promotion{ID: 10})
		assert.NoError(t, s.SetQuantity("99999"))
	})

	t.Run("non-numeric text passes the bound check and fails later at submit", func(t *testing.T) {
		s := selectedSession(t, limitedPromotion(3))
		assert.NoError(t, s.SetQuantity("abc"))
		assert.NoError(t, s.SetAmount("10"))

		_, err := s.BeginSubmit(time.Now())
		assert.ErrorIs(t, err, ErrInvalidQuantity)
		assert.Equal(t, enum.SessionStatePromotionSelected, s.State())
	})
}

func TestSessionSubmit(t *testing.T) {
	fill := func(t *testing.T) *Session {
		s := selectedSession(t, limitedPromotion(5))
		assert.NoError(t, s.SetQuantity("2"))
		assert.NoError(t, s.SetAmount("30.50"))
		assert.NoError(t, s.SetDescription("lunch"))
		return s
	}

	t.Run("begin submit captures a validated draft", func(t *testing.T) {
		s := fill(t)
		now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

		draft, err := s.BeginSubmit(now)
		assert.NoError(t, err)
		assert.Equal(t, int64(42), draft.UserID)
		assert.Equal(t, int64(10), draft.PromotionID)
		assert.Equal(t, 2, draft.Quantity)
		assert.Equal(t, 30.50, draft.Amount)
		assert.Equal(t, "lunch", draft.Description)
		assert.Equal(t, now, draft.Date)
		assert.Equal(t, enum.SessionStateSubmitting, s.State())
	})

	t.Run("incomplete form never takes the submitting state", func(t *testing.T) {
		s := selectedSession(t, limitedPromotion(5))
		assert.NoError(t, s.SetQuantity("2"))

		_, err := s.BeginSubmit(time.Now())
		assert.ErrorIs(t, err, ErrIncompleteForm)
		assert.Equal(t, enum.SessionStatePromotionSelected, s.State())
	})

	t.Run("second confirm while in flight is rejected", func(t *testing.T) {
		s := fill(t)
		_, err := s.BeginSubmit(time.Now())
		assert.NoError(t, err)

		_, err = s.BeginSubmit(time.Now())
		assert.ErrorIs(t, err, ErrSubmissionInFlight)
	})

	t.Run("success clears the session back to idle", func(t *testing.T) {
		s := fill(t)
		_, err := s.BeginSubmit(time.Now())
		assert.NoError(t, err)

		s.CompleteSubmit()
		view := s.View()
		assert.Equal(t, enum.SessionStateIdle, view.State)
		assert.False(t, view.Recognized)
		assert.Nil(t, view.Promotion)
		assert.Empty(t, view.Quantity)
		assert.Empty(t, view.Amount)
		assert.Empty(t, view.Description)
	})

	t.Run("failure keeps the form for a retry", func(t *testing.T) {
		s := fill(t)
		_, err := s.BeginSubmit(time.Now())
		assert.NoError(t, err)

		s.FailSubmit()
		view := s.View()
		assert.Equal(t, enum.SessionStatePromotionSelected, view.State)
		assert.Equal(t, "2", view.Quantity)
		assert.Equal(t, "30.50", view.Amount)
		assert.Equal(t, "lunch", view.Description)

		_, err = s.BeginSubmit(time.Now())
		assert.NoError(t, err)
	})

	t.Run("unrecognized payload fails validation before any submission", func(t *testing.T) {
		s := NewSession()
		assert.NoError(t, s.ApplyScan(scan.Parse("not-a-number-code")))
		assert.NoError(t, s.SelectPromotion(limitedPromotion(5)))
		assert.NoError(t, s.SetQuantity("1"))
		assert.NoError(t, s.SetAmount("5"))

		_, err := s.BeginSubmit(time.Now())
		assert.ErrorIs(t, err, ErrInvalidUserID)
		assert.Equal(t, enum.SessionStatePromotionSelected, s.State())
	})

	t.Run("cancel resets from any state", func(t *testing.T) {
		s := fill(t)
		_, err := s.BeginSubmit(time.Now())
		assert.NoError(t, err)

		s.Cancel()
		assert.Equal(t, enum.SessionStateIdle, s.State())
	})
}
