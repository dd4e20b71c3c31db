package deezer

import "fmt"

const defaultProviderMessage = "error fetching data from Deezer"

// ProviderError is an application-level error reported by Deezer in an
// otherwise successful HTTP exchange.
type ProviderError struct {
	Message string
	Type    string
	Code    int
}

func (e *ProviderError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("deezer: %s (%s, code %d)", e.Message, e.Type, e.Code)
	}
	return "deezer: " + e.Message
}

func newProviderError(e *apiError) *ProviderError {
	msg := e.Message
	if msg == "" {
		msg = defaultProviderMessage
	}
	return &ProviderError{Message: msg, Type: e.Type, Code: e.Code}
}

// TransportError means the request could not be completed: network failure,
// timeout, unexpected status or a body that is not JSON.
type TransportError struct {
	Op  string
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("deezer %s %s: %v", e.Op, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
