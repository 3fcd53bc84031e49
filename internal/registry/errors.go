package registry

import "fmt"

// NotFoundError reports a lookup of a name no factory was registered
// under. The configuration loader decides whether that aborts the load.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no data source registered under name %q", e.Name)
}

// TypeMismatchError reports an argument list that does not fit the
// constructor's expected signature. It is a construction-time failure: the
// bridge propagates it to the layout expression that made the call.
type TypeMismatchError struct {
	Name   string
	Reason string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("cannot construct data source %q: %s", e.Name, e.Reason)
}
