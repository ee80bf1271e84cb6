package domain

import "errors"

var (
	ErrAppNotFound         = errors.New("app not found")
	ErrAppAlreadyExists    = errors.New("app already exists")
	ErrSecretNotFound      = errors.New("secret not found")
	ErrValidation          = errors.New("validation failed")
	ErrStorageFailure      = errors.New("storage failure")
	ErrInternalConsistency = errors.New("internal consistency violation")
)
