package service

import "errors"

// Service errors.
var (
	ErrNotStarted = errors.New("service not started")
	ErrNoDataset  = errors.New("no dataset configured")
)
