// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package eventstore

import (
	"context"
	"crypto/x509"
	"errors"
	"fmt"
	"io"

	"github.com/EventStore/EventStore-Client-Go/v4/esdb"
)

// ESDB is a [Store] backed by an EventStoreDB server.
type ESDB struct {
	client *esdb.Client
}

// Options tune [Open].
type Options struct {
	// RootCAs, when set, replaces the roots used to verify the server.
	// It carries the CA of a connection string whose tlsCaFile parameter
	// was resolved out of the string.
	RootCAs *x509.CertPool
}

// Open parses connectionString and creates a client for it. The client
// connects lazily on the first call.
func Open(connectionString string, opts Options) (*ESDB, error) {
	cfg, err := esdb.ParseConnectionString(connectionString)
	if err != nil {
		return nil, fmt.Errorf("invalid connection string: %w", err)
	}
	if opts.RootCAs != nil {
		cfg.RootCAs = opts.RootCAs
	}

	client, err := esdb.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("error creating client: %w", err)
	}
	return &ESDB{client: client}, nil
}

// Append implements [Store].
func (s *ESDB) Append(ctx context.Context, stream string, expected Revision, events ...Proposed) (uint64, error) {
	if len(events) == 0 {
		return 0, ErrNoEvents
	}

	data := make([]esdb.EventData, len(events))
	for i, p := range events {
		data[i] = esdb.EventData{
			EventID:     eventID(p),
			EventType:   p.Type,
			ContentType: esdb.ContentTypeJson,
			Data:        p.Data,
		}
	}

	opts := esdb.AppendToStreamOptions{ExpectedRevision: expectedRevision(expected)}
	res, err := s.client.AppendToStream(ctx, stream, opts, data...)
	if err != nil {
		return 0, translate(err, stream)
	}
	return res.NextExpectedVersion, nil
}

// Read implements [Store].
func (s *ESDB) Read(ctx context.Context, stream string, max uint64) ([]RecordedEvent, error) {
	if max == 0 {
		max = DefaultReadCount
	}

	opts := esdb.ReadStreamOptions{Direction: esdb.Forwards, From: esdb.Start{}}
	rs, err := s.client.ReadStream(ctx, stream, opts, max)
	if err != nil {
		return nil, translate(err, stream)
	}
	defer rs.Close()

	var out []RecordedEvent
	for {
		resolved, err := rs.Recv()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, translate(err, stream)
		}

		e := resolved.OriginalEvent()
		out = append(out, RecordedEvent{
			ID:       e.EventID,
			Type:     e.EventType,
			Stream:   e.StreamID,
			Revision: e.EventNumber,
			Created:  e.CreatedDate,
			Data:     e.Data,
		})
	}
}

// Close releases the client connection.
func (s *ESDB) Close() error { return s.client.Close() }

func expectedRevision(r Revision) esdb.ExpectedRevision {
	switch {
	case r.IsNoStream():
		return esdb.NoStream{}
	case r.IsExact():
		return esdb.Revision(r.Value())
	default:
		return esdb.Any{}
	}
}

// translate maps client errors onto the package sentinels.
func translate(err error, stream string) error {
	if esErr, ok := esdb.FromError(err); !ok {
		switch esErr.Code() {
		case esdb.ErrorCodeWrongExpectedVersion:
			return fmt.Errorf("%w: %s: %w", ErrWrongRevision, stream, err)
		case esdb.ErrorCodeResourceNotFound:
			return fmt.Errorf("%w: %s", ErrStreamNotFound, stream)
		}
	}
	return fmt.Errorf("stream %s: %w", stream, err)
}
