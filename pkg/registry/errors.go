package registry

import "errors"

// The two failure kinds every registration path can produce. Both indicate a
// mistake at the call site, not a transient condition: nothing retries, and a
// failed call leaves no partial state behind.
var (
	// ErrInvalidArgument reports a nil value, or a name that is empty or not
	// a valid identifier part.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDuplicate reports a name or identifier that is already registered.
	ErrDuplicate = errors.New("duplicate registration")
)
