// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package eventstore appends events to and reads events from named streams.
//
// [Store] is implemented by [ESDB], which talks to an EventStoreDB server
// through the official gRPC client, and by [Memory], which keeps streams in
// process for dry runs and tests. Both enforce the same optimistic
// concurrency rules expressed by [Revision]:
//
//	next, err := store.Append(ctx, "accounts-1", eventstore.NoStream(), created)
//	next, err = store.Append(ctx, "accounts-1", eventstore.Exact(next), updated)
//
// A conflicting expectation fails with [ErrWrongRevision].
package eventstore
