package service

import "errors"

var (
	// ErrValidation wraps every local input error of the portal services.
	ErrValidation = errors.New("validation failed")

	ErrProfileNotLoaded  = errors.New("user profile is not loaded")
	ErrEmptyCertificate  = errors.New("server returned an empty certificate")
	ErrSavingCertificate = errors.New("error saving certificate")
)
