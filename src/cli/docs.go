// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface for the EventStoreDB account samples.
// It implements a Cobra-based CLI with one subcommand per way of supplying connection
// parameters (folder, credentials, raw), loads optional JSON or YAML configuration,
// checks certificate material before connecting, and runs the account walkthrough
// against EventStoreDB or, with --dry-run, against an in-memory store.
package cli
