package bind

import "errors"

var (
	ErrInvalidFieldSelector  = errors.New("invalid field selector")
	ErrDuplicateFieldHandler = errors.New("duplicate field handler")
	ErrMissingFieldHandlers  = errors.New("missing field handlers")
	ErrInvalidHandler        = errors.New("invalid handler function")
	ErrFieldNotOptional      = errors.New("field is not optional")
	ErrTargetNotOptional     = errors.New("target type is not optional")
)
