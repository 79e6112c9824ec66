package giphy

import "fmt"

// TransportError indicates the request never produced a usable HTTP
// response (connection refused, DNS failure, timeout, TLS failure,
// cancelled context).
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("giphy: transport failure: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError indicates the response body did not match the required
// envelope shape (malformed JSON, missing field, wrong type).
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("giphy: decode failure: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// AuthError indicates the provider rejected the API key (HTTP 401/403).
type AuthError struct {
	StatusCode int
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("giphy: authentication rejected (status %d)", e.StatusCode)
}

// APIError covers every other non-200 response from the provider.
type APIError struct {
	StatusCode int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("giphy: unexpected status %d", e.StatusCode)
}
