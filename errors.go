package helius

import (
	"errors"
	"fmt"
)

// ErrWebhookNotFound indicates the referenced webhook does not exist on the
// remote service.
var ErrWebhookNotFound = errors.New("webhook not found")

// RemoteCallError reports the failure of a single remote service call,
// carrying the name of the operation that issued it.
type RemoteCallError struct {
	Op  string // operation that issued the failing call, e.g. "createWebhook"
	Err error  // underlying transport or service failure
}

// Error implements the error interface.
func (e *RemoteCallError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

// Unwrap exposes the underlying failure so that errors.Is and errors.As can
// match transport sentinels through the wrapper.
func (e *RemoteCallError) Unwrap() error {
	return e.Err
}

// remoteCallError wraps err in a RemoteCallError tagged with the operation name.
func remoteCallError(op string, err error) error {
	return &RemoteCallError{Op: op, Err: err}
}
