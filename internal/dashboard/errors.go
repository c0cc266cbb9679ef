package dashboard

import "errors"

var (
	ErrTaskNotFound        = errors.New("task not found")
	ErrUnknownNotification = errors.New("unknown notification kind")
)
