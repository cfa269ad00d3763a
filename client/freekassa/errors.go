package freekassa

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration matches every *ConfigError.
	ErrConfiguration = errors.New("freekassa: missing credential")

	// ErrUnknownOperation matches every *UnknownOperationError.
	ErrUnknownOperation = errors.New("freekassa: unknown operation")

	ErrUnsupportedCrypto     = errors.New("freekassa: unsupported crypto currency")
	ErrMalformedNotification = errors.New("freekassa: malformed notification")
	ErrMerchantMismatch      = errors.New("freekassa: notification for another merchant")
	ErrInvalidSignature      = errors.New("freekassa: invalid notification signature")
)

// ConfigError reports a credential that an operation needs but the client
// was built without. It is returned before anything is signed or sent.
type ConfigError struct {
	Operation Operation
	Field     string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("freekassa: %s requires %s", e.Operation, e.Field)
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrConfiguration
}

type UnknownOperationError struct {
	Operation Operation
}

func (e *UnknownOperationError) Error() string {
	return fmt.Sprintf("freekassa: unknown operation %q", string(e.Operation))
}

func (e *UnknownOperationError) Is(target error) bool {
	return target == ErrUnknownOperation
}
