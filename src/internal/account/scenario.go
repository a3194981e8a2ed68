// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package account

import (
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

// MaxDelta bounds the absolute value of generated balance updates, in cents.
const MaxDelta = 1000

// DefaultUpdates is the number of balance updates in a scenario.
const DefaultUpdates = 5

// ScenarioOptions configure [NewScenario]. Zero values select defaults.
type ScenarioOptions struct {
	// Name of the account. Defaults to "Test".
	Name string
	// Updates is the number of balance updates after creation.
	Updates int
	// Now stamps events. Defaults to time.Now in UTC.
	Now func() time.Time
	// Rand draws deltas. Defaults to a randomly seeded source.
	Rand *rand.Rand
}

// NewScenario creates a fresh account and its history: one AccountCreated
// followed by opts.Updates balance updates with deltas in [-MaxDelta, MaxDelta].
func NewScenario(opts ScenarioOptions) (Account, []Event) {
	if opts.Name == "" {
		opts.Name = "Test"
	}
	if opts.Updates <= 0 {
		opts.Updates = DefaultUpdates
	}
	if opts.Now == nil {
		opts.Now = func() time.Time { return time.Now().UTC() }
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	acct := Account{ID: uuid.New(), Name: opts.Name, Created: opts.Now()}

	history := make([]Event, 0, opts.Updates+1)
	history = append(history, AccountCreated{ID: acct.ID, Name: acct.Name, Created: acct.Created})
	for range opts.Updates {
		history = append(history, AccountBalanceUpdated{
			ID:        acct.ID,
			Delta:     int64(opts.Rand.IntN(2*MaxDelta+1) - MaxDelta),
			EventTime: opts.Now(),
		})
	}
	return acct, history
}
