package redemption

import (
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"turipass.io/terminal/models"
	"turipass.io/terminal/models/enum"
	"turipass.io/terminal/scan"
)

var (
	ErrInvalidState       = errors.New("operation not allowed in current session state")
	ErrIncompleteForm     = errors.New("promotion, quantity and amount are all required")
	ErrInvalidUserID      = errors.New("scanned payload did not carry a valid user id")
	ErrInvalidQuantity    = errors.New("quantity must be a whole number")
	ErrInvalidAmount      = errors.New("amount must be a number")
	ErrQuantityExceeds    = errors.New("quantity exceeds the promotion's available stock")
	ErrSubmissionInFlight = errors.New("a submission is already in flight")
)

// Session is one redemption workflow: scan → select → form → submit.
// The whole workflow is a single enumerated state guarded by one mutex,
// so invalid flag combinations are unreachable and a second confirm
// press cannot start a second submission.
type Session struct {
	id string

	mu          sync.Mutex
	state       enum.SessionState
	identity    scan.Identity
	promotion   *models.Promotion
	quantity    string
	amount      string
	description string
}

// View is a read-only copy of the session handed to the UI layer.
type View struct {
	ID          string            `json:"session_id"`
	State       enum.SessionState `json:"state"`
	UserID      string            `json:"user_id,omitempty"`
	Email       string            `json:"email,omitempty"`
	Recognized  bool              `json:"recognized"`
	Promotion   *models.Promotion `json:"promotion,omitempty"`
	Quantity    string            `json:"quantity"`
	Amount      string            `json:"amount"`
	Description string            `json:"description"`
}

// Draft is the validated form content captured when a submission
// begins.
type Draft struct {
	UserID      int64
	PromotionID int64
	Quantity    int
	Amount      float64
	Description string
	Date        time.Time
}

func NewSession() *Session {
	return &Session{
		id:    uuid.NewString(),
		state: enum.SessionStateIdle,
	}
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) State() enum.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	view := View{
		ID:          s.id,
		State:       s.state,
		UserID:      s.identity.UserID,
		Email:       s.identity.Email,
		Recognized:  s.identity.Recognized(),
		Quantity:    s.quantity,
		Amount:      s.amount,
		Description: s.description,
	}
	if s.promotion != nil {
		promotion := *s.promotion
		view.Promotion = &promotion
	}
	return view
}

// ApplyScan moves an idle session to Scanned. A scan while a submission
// is in flight is rejected; re-scanning is done by resetting first,
// which discards the previous identity.
func (s *Session) ApplyScan(identity scan.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != enum.SessionStateIdle {
		return ErrInvalidState
	}
	s.identity = identity
	s.state = enum.SessionStateScanned
	return nil
}

// SelectPromotion attaches an eligible promotion to the session.
// Reselecting replaces the previous choice and keeps the form fields.
func (s *Session) SelectPromotion(promotion models.Promotion) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != enum.SessionStateScanned && s.state != enum.SessionStatePromotionSelected {
		return ErrInvalidState
	}
	s.promotion = &promotion
	s.state = enum.SessionStatePromotionSelected
	return nil
}

// SetQuantity applies one quantity edit. When the selected promotion
// has finite stock and the entered value exceeds it, the edit is
// rejected and the field keeps its previous value. A nil
// available_quantity means unlimited and no bound is enforced.
func (s *Session) SetQuantity(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != enum.SessionStatePromotionSelected {
		return ErrInvalidState
	}
	if quantity, err := strconv.Atoi(text); err == nil {
		if s.promotion.AvailableQuantity != nil && quantity > *s.promotion.AvailableQuantity {
			return ErrQuantityExceeds
		}
	}
	s.quantity = text
	return nil
}

func (s *Session) SetAmount(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != enum.SessionStatePromotionSelected {
		return ErrInvalidState
	}
	s.amount = text
	return nil
}

func (s *Session) SetDescription(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != enum.SessionStatePromotionSelected {
		return ErrInvalidState
	}
	s.description = text
	return nil
}

// BeginSubmit validates the form and takes the Submitting state under
// the lock, so the first confirm press wins and later presses fail with
// ErrSubmissionInFlight until the outcome lands. No network call has
// happened when BeginSubmit returns an error.
func (s *Session) BeginSubmit(now time.Time) (Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == enum.SessionStateSubmitting {
		return Draft{}, ErrSubmissionInFlight
	}
	if s.state != enum.SessionStatePromotionSelected {
		return Draft{}, ErrInvalidState
	}
	if s.promotion == nil || s.quantity == "" || s.amount == "" {
		return Draft{}, ErrIncompleteForm
	}

	userID, err := strconv.ParseInt(s.identity.UserID, 10, 64)
	if err != nil {
		return Draft{}, ErrInvalidUserID
	}
	quantity, err := strconv.Atoi(s.quantity)
	if err != nil {
		return Draft{}, ErrInvalidQuantity
	}
	amount, err := strconv.ParseFloat(s.amount, 64)
	if err != nil {
		return Draft{}, ErrInvalidAmount
	}

	s.state = enum.SessionStateSubmitting
	return Draft{
		UserID:      userID,
		PromotionID: s.promotion.ID,
		Quantity:    quantity,
		Amount:      amount,
		Description: s.description,
		Date:        now,
	}, nil
}

// CompleteSubmit finishes a successful submission: every transient
// field is cleared and the session returns to Idle.
func (s *Session) CompleteSubmit() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != enum.SessionStateSubmitting {
		return
	}
	s.reset()
}

// FailSubmit finishes a failed submission: the form fields stay
// untouched so the operator can retry without re-entering them.
// Retrying is an explicit new confirm press, never automatic.
func (s *Session) FailSubmit() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != enum.SessionStateSubmitting {
		return
	}
	s.state = enum.SessionStatePromotionSelected
}

// Cancel clears everything from any state.
func (s *Session) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
}

func (s *Session) reset() {
	s.state = enum.SessionStateIdle
	s.identity = scan.Identity{}
	s.promotion = nil
	s.quantity = ""
	s.amount = ""
	s.description = ""
}
