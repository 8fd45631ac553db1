package gateway

import "fmt"

// RequestError is the only failure kind the gateway produces. The dashboard
// distinguishes failures by message alone, never by a structured code, so
// network errors, non-2xx statuses and decode failures all end up here.
type RequestError struct {
	Message string
	Status  int   // HTTP status, 0 when the request never completed
	Err     error // transport or decode error, nil on plain non-2xx
}

func (e *RequestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	if e.Status != 0 {
		return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
	}
	return e.Message
}

func (e *RequestError) Unwrap() error { return e.Err }
