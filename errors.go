package mdmath

import "errors"

// Sentinel errors for library operations.
var (
	ErrConversion        = errors.New("math conversion failed")
	ErrConverterNotFound = errors.New("math converter not found")
	ErrNoConverter       = errors.New("no math converter configured")
	ErrInvalidInlineTag  = errors.New("invalid inline tag")
)
