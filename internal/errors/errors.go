package errors

import (
	"errors"
	"fmt"
)

var (
	ErrValidation       = errors.New("unexpected api response")
	ErrShapeMismatch    = fmt.Errorf("%w: type mismatch", ErrValidation)
	ErrKeyMissing       = fmt.Errorf("%w: key error", ErrValidation)
	ErrUnexpectedStatus = fmt.Errorf("%w: unexpected homework status", ErrKeyMissing)

	ErrNoHomeworks  = errors.New("no homeworks in response")
	ErrNotification = errors.New("telegram message was not delivered")
)
