package lambdacloud

import "fmt"

// TransportError reports a failure to reach the provider or a non-2xx
// response. Decode errors on a successful response are returned as plain
// errors instead.
type TransportError struct {
	Op         string
	StatusCode int
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Err)
	}
	if e.Body != "" {
		return fmt.Sprintf("%s: unexpected status %d: %s", e.Op, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s: unexpected status %d", e.Op, e.StatusCode)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
