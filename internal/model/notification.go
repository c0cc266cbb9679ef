package model

// NotificationKind names a transient toast shown after a mutation.
type NotificationKind string

const (
	NotificationAdded   NotificationKind = "added"
	NotificationUpdated NotificationKind = "updated"
)

// DismissReasonClickaway is an incidental click outside the toast. It never
// dismisses a notification.
const DismissReasonClickaway = "clickaway"

// Message returns the text shown for the kind.
func (k NotificationKind) Message() string {
	switch k {
	case NotificationAdded:
		return "Task added successfully!"
	case NotificationUpdated:
		return "Task updated successfully!"
	default:
		return ""
	}
}

// Valid reports whether k is a known kind.
func (k NotificationKind) Valid() bool {
	return k == NotificationAdded || k == NotificationUpdated
}
