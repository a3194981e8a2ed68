// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package account holds the domain written to EventStoreDB by the samples:
// an Account, the two events that describe its history, their JSON wire
// form, and a projection that folds the history back into a balance.
//
// [Event] is a closed set. Only [AccountCreated] and [AccountBalanceUpdated]
// implement it, and each carries a fixed type tag that is stored as the
// EventStoreDB event type. Payloads read back from a stream are validated
// against a JSON schema per type before they are decoded.
package account
