// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package account

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// StreamPrefix is prepended to the account ID to form the stream name.
const StreamPrefix = "accounts-"

// Account is the aggregate whose history the samples append.
type Account struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Created time.Time `json:"created"`
}

// StreamName returns the stream holding the account's events.
func (a Account) StreamName() string { return StreamPrefix + a.ID.String() }

// FormatCents renders an amount in cents as a decimal string, e.g. -1234 as "-12.34".
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
