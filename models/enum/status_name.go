package enum

// StatusName are the vocabulary names the terminal resolves against the
// server-fetched status list. Ids are never assumed, only names.
type StatusName string

const (
	StatusNameActive   StatusName = "active"
	StatusNameInactive StatusName = "inactive"
	StatusNameDeleted  StatusName = "deleted"
)
