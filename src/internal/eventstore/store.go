// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package eventstore

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// DefaultReadCount is the maximum number of events read from a stream
// when the caller does not choose one.
const DefaultReadCount = 100

var (
	// ErrWrongRevision indicates that the stream was not at the expected revision.
	ErrWrongRevision = errors.New("eventstore: wrong expected revision")

	// ErrStreamNotFound indicates a read from a stream that does not exist.
	ErrStreamNotFound = errors.New("eventstore: stream not found")

	// ErrNoEvents indicates an append without events.
	ErrNoEvents = errors.New("eventstore: no events to append")
)

// Proposed is an event waiting to be appended.
type Proposed struct {
	// ID is the event identifier. A random one is assigned when nil.
	ID   uuid.UUID
	Type string
	// Data is the JSON payload.
	Data []byte
}

// RecordedEvent is an event read back from a stream.
type RecordedEvent struct {
	ID       uuid.UUID
	Type     string
	Stream   string
	Revision uint64
	Created  time.Time
	Data     []byte
}

// Store is an append-only collection of event streams.
type Store interface {
	// Append writes events to stream if the stream matches expected, and
	// returns the revision of the last written event.
	Append(ctx context.Context, stream string, expected Revision, events ...Proposed) (uint64, error)

	// Read returns up to max events of stream, oldest first. A zero max
	// reads DefaultReadCount events.
	Read(ctx context.Context, stream string, max uint64) ([]RecordedEvent, error)

	Close() error
}

func eventID(p Proposed) uuid.UUID {
	if p.ID == uuid.Nil {
		return uuid.New()
	}
	return p.ID
}
