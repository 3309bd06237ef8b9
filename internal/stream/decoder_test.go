// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package stream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feedAll(d *Decoder, chunks ...[]byte) []Frame {
	var frames []Frame
	for _, c := range chunks {
		frames = append(frames, d.Feed(c)...)
	}
	return frames
}

// ── Feed ─────────────────────────────────────────────────────────────────────

func TestDecoder_SingleFrame(t *testing.T) {
	d := NewDecoder()

	frames := d.Feed([]byte("event: stage\ndata: {\"code\":\"backend_start\"}\n\n"))

	require.Len(t, frames, 1)
	assert.Equal(t, "stage", frames[0].Name)
	assert.Equal(t, `{"code":"backend_start"}`, frames[0].Data)
}

func TestDecoder_DefaultEventName(t *testing.T) {
	d := NewDecoder()

	frames := d.Feed([]byte("data: hello\n\n"))

	require.Len(t, frames, 1)
	assert.Equal(t, DefaultEventName, frames[0].Name)
	assert.Equal(t, "hello", frames[0].Data)
}

func TestDecoder_MultipleDataLinesJoined(t *testing.T) {
	d := NewDecoder()

	frames := d.Feed([]byte("event: trace\ndata: first\ndata: second\n\n"))

	require.Len(t, frames, 1)
	assert.Equal(t, "first\nsecond", frames[0].Data)
}

func TestDecoder_BlockWithoutDataDropped(t *testing.T) {
	d := NewDecoder()

	frames := d.Feed([]byte("event: heartbeat\n\ndata: kept\n\n"))

	require.Len(t, frames, 1)
	assert.Equal(t, "kept", frames[0].Data)
}

func TestDecoder_CRLFAndLoneCRNormalized(t *testing.T) {
	d := NewDecoder()

	frames := d.Feed([]byte("event: stage\r\ndata: a\r\rdata: b\r\n\r\n"))

	require.Len(t, frames, 2)
	assert.Equal(t, "a", frames[0].Data)
	assert.Equal(t, "b", frames[1].Data)
}

func TestDecoder_PartialBlockRetainedAcrossFeeds(t *testing.T) {
	d := NewDecoder()

	require.Empty(t, d.Feed([]byte("event: trace\nda")))
	require.Empty(t, d.Feed([]byte("ta: split across chunks")))

	frames := d.Feed([]byte("\n\n"))
	require.Len(t, frames, 1)
	assert.Equal(t, "split across chunks", frames[0].Data)
}

func TestDecoder_CRSplitAcrossChunks(t *testing.T) {
	d := NewDecoder()

	// CRLF split exactly between chunks must not produce a double newline.
	frames := feedAll(d,
		[]byte("data: one\r"),
		[]byte("\ndata: two\n\n"),
	)

	require.Len(t, frames, 1)
	assert.Equal(t, "one\ntwo", frames[0].Data)
}

// ── Chunk-boundary independence ──────────────────────────────────────────────

func TestDecoder_ChunkBoundaryIndependence(t *testing.T) {
	payload := []byte("event: stage\ndata: {\"code\":\"backend_start\"}\n\n" +
		"data: plain message\n\n" +
		"event: trace\r\ndata: first\r\ndata: second\r\n\r\n" +
		"event: final\ndata: {\"response\":{\"text\":\"hi\"}}\n\n" +
		"event: done\ndata: {\"ok\":true}\n\n")

	want := NewDecoder().Feed(payload)
	require.Len(t, want, 5)

	// Splitting the same bytes at every possible boundary must yield the
	// identical ordered frame sequence.
	for cut := 1; cut < len(payload); cut++ {
		d := NewDecoder()
		got := feedAll(d, payload[:cut], payload[cut:])
		assert.Equal(t, want, got, "split at byte %d diverged", cut)
	}

	// Degenerate case: one byte per chunk.
	d := NewDecoder()
	var got []Frame
	for i := range payload {
		got = append(got, d.Feed(payload[i:i+1])...)
	}
	assert.Equal(t, want, got)
}

// ── Scenario: three-frame run stream ─────────────────────────────────────────

func TestDecoder_StageFinalDoneInOrder(t *testing.T) {
	d := NewDecoder()

	frames := d.Feed([]byte(
		"event: stage\ndata: {\"code\":\"backend_start\",\"detail\":\"run started\"}\n\n" +
			"event: final\ndata: {\"response\":{\"session_id\":\"s1\",\"text\":\"hi\"}}\n\n" +
			"event: done\ndata: {\"ok\":true}\n\n"))

	require.Len(t, frames, 3)
	assert.Equal(t, []string{"stage", "final", "done"},
		[]string{frames[0].Name, frames[1].Name, frames[2].Name})
}
