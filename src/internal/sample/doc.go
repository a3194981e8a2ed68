// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package sample runs the account walkthrough against an event store.
//
// A run creates a fresh account, appends its AccountCreated event and a
// series of AccountBalanceUpdated events to the account's stream one at a
// time, reads the stream back from the start, and renders every event
// followed by the balance folded from the history.
//
// Example:
//
//	r, err := sample.New(sample.Config{
//		Store:  eventstore.NewMemory(),
//		Out:    os.Stdout,
//		Log:    logger.NewCLILogger(),
//		Format: sample.FormatText,
//	})
//	if err != nil {
//		return err
//	}
//	summary, err := r.Run(ctx)
//
// Output formats:
//   - text: "EventType: <type>" followed by the payload indented by two spaces
//   - table: a markdown table with one row per event
//   - json: a single JSON document with the stream, its events, and the balance
package sample
