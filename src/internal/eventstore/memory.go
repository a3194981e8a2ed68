// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package eventstore

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"time"
)

// Memory is a [Store] that keeps streams in process.
//
// It is safe for concurrent use.
type Memory struct {
	mu      sync.Mutex
	streams map[string][]RecordedEvent
	now     func() time.Time
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		streams: make(map[string][]RecordedEvent),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Append implements [Store].
func (m *Memory) Append(ctx context.Context, stream string, expected Revision, events ...Proposed) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if len(events) == 0 {
		return 0, ErrNoEvents
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	current, exists := m.streams[stream]
	switch {
	case expected.IsNoStream() && exists:
		return 0, fmt.Errorf("%w: %s exists at %d, expected %s", ErrWrongRevision, stream, len(current)-1, expected)
	case expected.IsExact() && (!exists || uint64(len(current)-1) != expected.Value()):
		return 0, fmt.Errorf("%w: %s is at %s, expected %s", ErrWrongRevision, stream, describe(current, exists), expected)
	}

	for _, p := range events {
		current = append(current, RecordedEvent{
			ID:       eventID(p),
			Type:     p.Type,
			Stream:   stream,
			Revision: uint64(len(current)),
			Created:  m.now(),
			Data:     bytes.Clone(p.Data),
		})
	}
	m.streams[stream] = current
	return uint64(len(current) - 1), nil
}

// Read implements [Store].
func (m *Memory) Read(ctx context.Context, stream string, max uint64) ([]RecordedEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if max == 0 {
		max = DefaultReadCount
	}
	events, ok := m.streams[stream]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrStreamNotFound, stream)
	}
	if uint64(len(events)) > max {
		events = events[:max]
	}

	out := make([]RecordedEvent, len(events))
	for i, e := range events {
		e.Data = bytes.Clone(e.Data)
		out[i] = e
	}
	return out, nil
}

// Close implements [Store]. The streams are kept.
func (m *Memory) Close() error { return nil }

func describe(events []RecordedEvent, exists bool) string {
	if !exists {
		return "no stream"
	}
	return fmt.Sprintf("%d", len(events)-1)
}
