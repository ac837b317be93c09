package enum

// SessionState is the explicit redemption workflow state. Exactly one
// state is held per session; there are no independent boolean flags.
type SessionState string

const (
	SessionStateIdle              SessionState = "IDLE"
	SessionStateScanned           SessionState = "SCANNED"
	SessionStatePromotionSelected SessionState = "PROMOTION_SELECTED"
	SessionStateSubmitting        SessionState = "SUBMITTING"
)
