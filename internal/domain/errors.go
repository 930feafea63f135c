package domain

import "errors"

// Domain errors
var (
	ErrMissingCredential = errors.New("generative service credential is not configured")
	ErrEmptyDocument     = errors.New("document contains no data")
	ErrEmptyResponse     = errors.New("empty response from model")
)
