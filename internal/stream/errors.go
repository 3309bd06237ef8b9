package stream

import "errors"

// ErrStreamIncomplete is returned by the run reader when the stream ends
// before a `final` frame was captured.
var ErrStreamIncomplete = errors.New("stream incomplete")
