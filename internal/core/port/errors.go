package port

import "fmt"

// StoreError reports a failure reaching or querying the relational store.
// Read paths recover from it with fallback data; write paths surface it.
type StoreError struct {
	Op  string
	Err error
}

// Error returns "op: cause".
func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the driver error.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// Wrap returns nil for a nil err and a *StoreError otherwise.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}
