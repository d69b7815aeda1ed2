package services

import "errors"

// ErrValidation marks failures caused by bad or missing request input.
// Handlers map it to a 400 response.
var ErrValidation = errors.New("validation failed")
