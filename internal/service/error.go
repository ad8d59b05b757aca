package service

// InternalError marks a failure local to the relay: the gateway could not be
// reached or answered with something that is not JSON.
type InternalError struct {
	Err error
}

func (e *InternalError) Error() string {
	return e.Err.Error()
}

func (e *InternalError) Unwrap() error {
	return e.Err
}
