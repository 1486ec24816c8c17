package switchbot

import "fmt"

// TransportError is returned when a command could not be delivered to the
// SwitchBot API or its response could not be decoded
type TransportError struct {
	Err error
}

func newTransportError(err error) *TransportError {
	return &TransportError{Err: err}
}

func (e *TransportError) Error() string {
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// VendorError is returned when SwitchBot answers with a statusCode other
// than StatusSuccess.  Error() is the vendor message, unmodified.
type VendorError struct {
	StatusCode int
	Message    string
}

func (e *VendorError) Error() string {
	return e.Message
}

func (e *VendorError) GoString() string {
	return fmt.Sprintf("switchbot.VendorError{StatusCode: %d, Message: %q}", e.StatusCode, e.Message)
}
