// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package stream

import (
	"bytes"
	"strings"
)

// DefaultEventName is used for blocks that carry no "event:" line.
const DefaultEventName = "message"

// TerminalEventName marks the end of a run stream; the reader stops pulling
// chunks once a frame with this name has been emitted.
const TerminalEventName = "done"

// Frame is one decoded block of the event stream: an event name and the
// joined payload of its data lines.
type Frame struct {
	Name string
	Data string
}

// Decoder accumulates raw transport chunks and extracts complete frames.
// A trailing partial block is retained across Feed calls, so the emitted
// frame sequence does not depend on chunk boundaries. Decoder is not safe
// for concurrent use; one run owns one decoder.
type Decoder struct {
	buf       bytes.Buffer
	pendingCR bool
}

// NewDecoder returns an empty Decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Feed appends chunk to the accumulation buffer and returns every frame that
// became complete, in order. Blocks with no data lines are dropped silently.
func (d *Decoder) Feed(chunk []byte) []Frame {
	d.ingest(chunk)
	return d.extract()
}

// ingest normalises line endings (CRLF and lone CR become LF) before the
// chunk joins the buffer. A chunk ending in CR is ambiguous until the next
// byte arrives, so that CR is withheld and replayed on the next call.
func (d *Decoder) ingest(chunk []byte) {
	if d.pendingCR {
		chunk = append([]byte{'\r'}, chunk...)
		d.pendingCR = false
	}
	if n := len(chunk); n > 0 && chunk[n-1] == '\r' {
		d.pendingCR = true
		chunk = chunk[:n-1]
	}

	chunk = bytes.ReplaceAll(chunk, []byte("\r\n"), []byte("\n"))
	chunk = bytes.ReplaceAll(chunk, []byte("\r"), []byte("\n"))
	d.buf.Write(chunk)
}

// extract repeatedly cuts the next complete block (up to the first blank
// line) off the front of the buffer.
func (d *Decoder) extract() []Frame {
	var frames []Frame

	for {
		raw := d.buf.Bytes()
		idx := bytes.Index(raw, []byte("\n\n"))
		if idx < 0 {
			return frames
		}

		block := string(raw[:idx])
		d.buf.Next(idx + 2)

		if frame, ok := parseBlock(block); ok {
			frames = append(frames, frame)
		}
	}
}

// parseBlock interprets one blank-line-delimited block. Returns ok=false for
// blocks without data lines (comments, bare event lines), which the protocol
// treats as padding rather than an error.
func parseBlock(block string) (Frame, bool) {
	name := DefaultEventName
	var data []string

	for _, line := range strings.Split(block, "\n") {
		switch {
		case strings.HasPrefix(line, "event:"):
			name = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			value := strings.TrimPrefix(line, "data:")
			value = strings.TrimPrefix(value, " ")
			data = append(data, value)
		}
	}

	if len(data) == 0 {
		return Frame{}, false
	}

	return Frame{Name: name, Data: strings.Join(data, "\n")}, true
}
