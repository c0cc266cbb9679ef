package repository

import "errors"

var (
	ErrNotFound     = errors.New("no stored value")
	ErrCorrupt      = errors.New("stored value is corrupt")
	ErrFailedToLoad = errors.New("failed to load stored value")
	ErrFailedToSave = errors.New("failed to save value")
)
