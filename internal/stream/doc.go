// Package stream decodes the incremental event stream produced by the
// officetool backend for POST /api/chat/stream.
//
// The wire format is SSE-like: blocks separated by a blank line, each block
// carrying at most one "event:" line (the name defaults to "message") and one
// or more "data:" lines whose values are joined with a newline to form the
// payload. [Decoder] turns arbitrarily chunked bytes into complete [Frame]
// values; [DecodeEvent] turns a frame into the typed [Event] variant consumed
// by the run orchestrator.
//
// Decoding is independent of how the transport chunks bytes: feeding the same
// byte sequence split at any boundary yields the identical ordered frame
// sequence.
package stream
