// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package sample

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/H0llyW00dzZ/esdb-account-samples/src/internal/account"
	"github.com/H0llyW00dzZ/esdb-account-samples/src/internal/eventstore"
	"github.com/H0llyW00dzZ/esdb-account-samples/src/logger"
)

// ErrInvalidConfig indicates a [Config] that cannot drive a run.
var ErrInvalidConfig = errors.New("sample: invalid config")

// Config holds everything a [Runner] needs.
type Config struct {
	// Store receives and serves the events. Required.
	Store eventstore.Store
	// Out receives the rendered events. Required.
	Out io.Writer
	// Log receives progress messages. Defaults to a discarding logger.
	Log logger.Logger
	// Format selects the rendering. Defaults to FormatText.
	Format Format
	// Scenario shapes the generated account history.
	Scenario account.ScenarioOptions
	// ReadCount bounds the number of events read back.
	// Defaults to eventstore.DefaultReadCount.
	ReadCount uint64
}

// Runner performs the write-then-read walkthrough.
type Runner struct {
	cfg Config
}

// New validates cfg and returns a Runner for it.
func New(cfg Config) (*Runner, error) {
	if cfg.Store == nil {
		return nil, fmt.Errorf("%w: store is required", ErrInvalidConfig)
	}
	if cfg.Out == nil {
		return nil, fmt.Errorf("%w: output writer is required", ErrInvalidConfig)
	}
	if cfg.Format == "" {
		cfg.Format = FormatText
	}
	if _, err := ParseFormat(string(cfg.Format)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if cfg.Log == nil {
		l := logger.NewCLILogger()
		l.SetOutput(io.Discard)
		cfg.Log = l
	}
	if cfg.ReadCount == 0 {
		cfg.ReadCount = eventstore.DefaultReadCount
	}
	return &Runner{cfg: cfg}, nil
}

// Run writes a new account history, reads it back, renders it, and
// returns the balance folded from what was read.
//
// Any payload that fails to decode stops the run with an error wrapping
// account.ErrDecode.
func (r *Runner) Run(ctx context.Context) (account.Summary, error) {
	acct, history := account.NewScenario(r.cfg.Scenario)
	stream := acct.StreamName()

	if err := r.write(ctx, stream, history); err != nil {
		return account.Summary{}, fmt.Errorf("error writing stream %s: %w", stream, err)
	}
	if r.cfg.Format != FormatJSON {
		fmt.Fprintf(r.cfg.Out, "Stream Name: %s\n", stream)
	}

	recorded, err := r.cfg.Store.Read(ctx, stream, r.cfg.ReadCount)
	if err != nil {
		return account.Summary{}, fmt.Errorf("error reading stream %s: %w", stream, err)
	}
	r.cfg.Log.Printf("read %d events from %s", len(recorded), stream)

	decoded := make([]account.Event, 0, len(recorded))
	for _, e := range recorded {
		ev, err := account.Decode(e.Type, e.Data)
		if err != nil {
			return account.Summary{}, fmt.Errorf("event %d of %s: %w", e.Revision, stream, err)
		}
		decoded = append(decoded, ev)
	}

	summary, err := account.Project(decoded)
	if err != nil {
		return account.Summary{}, err
	}

	if err := render(r.cfg.Out, r.cfg.Format, stream, recorded, decoded, summary); err != nil {
		return account.Summary{}, err
	}
	return summary, nil
}

// write appends history one event at a time, each append expecting the
// revision returned by the previous one.
func (r *Runner) write(ctx context.Context, stream string, history []account.Event) error {
	expected := eventstore.NoStream()
	for _, e := range history {
		data, err := account.Marshal(e)
		if err != nil {
			return err
		}

		next, err := r.cfg.Store.Append(ctx, stream, expected, eventstore.Proposed{Type: e.EventType(), Data: data})
		if err != nil {
			return err
		}
		r.cfg.Log.Printf("appended %s to %s at revision %d", e.EventType(), stream, next)
		expected = eventstore.Exact(next)
	}
	return nil
}
