// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package account

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Event type tags as stored in EventStoreDB.
const (
	TypeAccountCreated        = "AccountCreated"
	TypeAccountBalanceUpdated = "AccountBalanceUpdated"
)

var (
	// ErrDecode indicates a stored payload that is not valid UTF-8, not valid
	// JSON, or does not match the schema of its event type.
	ErrDecode = errors.New("account: cannot decode event payload")

	// ErrUnknownEventType indicates an event type outside the account domain.
	ErrUnknownEventType = errors.New("account: unknown event type")
)

// Event is a domain event of the account stream.
type Event interface {
	// EventType returns the fixed type tag.
	EventType() string
	// AccountID returns the account the event belongs to.
	AccountID() uuid.UUID

	sealed()
}

// AccountCreated opens an account stream.
type AccountCreated struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Created time.Time `json:"created"`
}

func (AccountCreated) EventType() string      { return TypeAccountCreated }
func (e AccountCreated) AccountID() uuid.UUID { return e.ID }
func (AccountCreated) sealed()                {}

// AccountBalanceUpdated moves the balance by Delta cents.
type AccountBalanceUpdated struct {
	ID        uuid.UUID `json:"id"`
	Delta     int64     `json:"delta"`
	EventTime time.Time `json:"eventTime"`
}

func (AccountBalanceUpdated) EventType() string      { return TypeAccountBalanceUpdated }
func (e AccountBalanceUpdated) AccountID() uuid.UUID { return e.ID }
func (AccountBalanceUpdated) sealed()                {}

// Marshal encodes e in its wire form.
func Marshal(e Event) ([]byte, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("error marshalling %s: %w", e.EventType(), err)
	}
	return data, nil
}

// Decode validates data against the schema of eventType and decodes it.
func Decode(eventType string, data []byte) (Event, error) {
	if err := checkJSON(data); err != nil {
		return nil, err
	}

	schema, ok := schemas[eventType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEventType, eventType)
	}
	if err := validate(schema, data); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, eventType, err)
	}

	var (
		e   Event
		err error
	)
	switch eventType {
	case TypeAccountCreated:
		var v AccountCreated
		err = json.Unmarshal(data, &v)
		e = v
	case TypeAccountBalanceUpdated:
		var v AccountBalanceUpdated
		err = json.Unmarshal(data, &v)
		e = v
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, eventType, err)
	}
	return e, nil
}

// Pretty re-indents a JSON payload with two spaces for display.
func Pretty(data []byte) ([]byte, error) {
	if err := checkJSON(data); err != nil {
		return nil, err
	}

	var out bytes.Buffer
	if err := json.Indent(&out, data, "", "  "); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return out.Bytes(), nil
}

func checkJSON(data []byte) error {
	if !utf8.Valid(data) {
		return fmt.Errorf("%w: payload is not valid UTF-8", ErrDecode)
	}
	if !json.Valid(data) {
		return fmt.Errorf("%w: payload is not valid JSON", ErrDecode)
	}
	return nil
}
