package terms

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.uber.org/zap"

	"turipass.io/terminal/models"
)

func TestOutstanding(t *testing.T) {
	svc := NewService(nil, nil, zap.NewNop())
	current := &models.Terms{ID: 1, Version: "2.1"}

	t.Run("partner without any acceptance is outstanding", func(t *testing.T) {
		p := &models.Partner{ID: 7}
		assert.True(t, svc.Outstanding(p, current))
	})

	t.Run("older accepted version is outstanding", func(t *testing.T) {
		p := &models.Partner{ID: 7, Terms: &models.TermsAcceptance{Version: "1.0"}}
		assert.True(t, svc.Outstanding(p, current))
	})

	t.Run("matching version is settled", func(t *testing.T) {
		p := &models.Partner{ID: 7, Terms: &models.TermsAcceptance{Version: "2.1"}}
		assert.False(t, svc.Outstanding(p, current))
	})

	t.Run("missing data never blocks", func(t *testing.T) {
		assert.False(t, svc.Outstanding(nil, current))
		assert.False(t, svc.Outstanding(&models.Partner{ID: 7}, nil))
	})
}
