// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package account

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNotCreated indicates a history that does not start with AccountCreated.
	ErrNotCreated = errors.New("account: history does not start with AccountCreated")

	// ErrForeignEvent indicates an event for a different account in the stream.
	ErrForeignEvent = errors.New("account: event belongs to another account")
)

// Summary is the state folded from an account's history.
type Summary struct {
	Account Account
	// Balance in cents.
	Balance int64
	Updates int
	// LastUpdated is the time of the last balance update, or Account.Created.
	LastUpdated time.Time
}

// Project folds history into a Summary.
func Project(history []Event) (Summary, error) {
	if len(history) == 0 {
		return Summary{}, ErrNotCreated
	}
	created, ok := history[0].(AccountCreated)
	if !ok {
		return Summary{}, fmt.Errorf("%w: first event is %s", ErrNotCreated, history[0].EventType())
	}

	s := Summary{
		Account:     Account{ID: created.ID, Name: created.Name, Created: created.Created},
		LastUpdated: created.Created,
	}
	for i, e := range history[1:] {
		if e.AccountID() != s.Account.ID {
			return Summary{}, fmt.Errorf("%w: event %d has account %s", ErrForeignEvent, i+1, e.AccountID())
		}
		switch ev := e.(type) {
		case AccountBalanceUpdated:
			s.Balance += ev.Delta
			s.Updates++
			s.LastUpdated = ev.EventTime
		case AccountCreated:
			return Summary{}, fmt.Errorf("account %s created twice", s.Account.ID)
		}
	}
	return s, nil
}
