package tickloop

import "errors"

var (
	// ErrInvalidConfiguration reports builder settings that cannot be
	// forwarded to a video backend, such as a title with an embedded NUL
	// byte. Detected at Build time, before any driver call.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrInitializationFailure reports a video driver that came back
	// unready after Init. No Runtime is produced.
	ErrInitializationFailure = errors.New("unable to initialize video driver")
)
