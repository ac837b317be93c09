package scan

import "strings"

// Identity is the transient result of decoding one QR payload. It lives
// only for the duration of a redemption session. UserID stays a raw
// string; it is parsed to an integer at submission time.
type Identity struct {
	UserID string
	Email  string
}

// Recognized reports whether the payload carried an email part. An
// unrecognized identity is still presented to the operator; the missing
// user id blocks submission later instead of rejecting the scan here.
func (i Identity) Recognized() bool {
	return i.Email != ""
}

// Parse splits a raw QR payload of the form "<user_id>-<email>" on the
// first '-' only, so an email containing a stray '-' survives intact. A
// payload with no delimiter yields an empty email.
func Parse(raw string) Identity {
	parts := strings.SplitN(raw, "-", 2)
	identity := Identity{UserID: parts[0]}
	if len(parts) == 2 {
		identity.Email = parts[1]
	}
	return identity
}
