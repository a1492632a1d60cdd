// Package domain provides shared domain-level sentinel errors.
package domain

import "errors"

// ErrValidation indicates invalid client input, rejected before any side effect.
var ErrValidation = errors.New("validation failed")

// ErrJournal indicates an unexpected inconsistency in the task journal.
// It is treated as fatal for the request and never retried.
var ErrJournal = errors.New("journal fault")
