package contract

import "errors"

var (
	ErrModelInvoke         = errors.New("model invoke failed")
	ErrSchemaViolation     = errors.New("model response violates schema")
	ErrValidation          = errors.New("validation failed")
	ErrNoMessages          = errors.New("no messages to process")
	ErrProviderUnavailable = errors.New("data provider unavailable")
)
