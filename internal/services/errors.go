package services

import "errors"

var (
	// ErrRecordingDisabled rejects writes while the admin switch is off.
	ErrRecordingDisabled = errors.New("recording is currently disabled")
	// ErrSessionExpired rejects writes whose status read raced a concurrent
	// expiry. Normally the lazy expiry in the session store already
	// reports enabled=false.
	ErrSessionExpired = errors.New("recording session expired")
)
