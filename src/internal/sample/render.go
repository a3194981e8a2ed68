// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package sample

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/H0llyW00dzZ/esdb-account-samples/src/internal/account"
	"github.com/H0llyW00dzZ/esdb-account-samples/src/internal/eventstore"
	"github.com/H0llyW00dzZ/esdb-account-samples/src/internal/helper/gc"
)

// Format selects how events are rendered.
type Format string

const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

// ErrUnknownFormat indicates an output format other than text, table, or json.
var ErrUnknownFormat = errors.New("sample: unknown output format")

// ParseFormat returns the Format named by s.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatTable, FormatJSON:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

func render(w io.Writer, f Format, stream string, recorded []eventstore.RecordedEvent, decoded []account.Event, s account.Summary) error {
	switch f {
	case FormatTable:
		return renderTable(w, recorded, decoded, s)
	case FormatJSON:
		return renderJSON(w, stream, recorded, s)
	default:
		return renderText(w, recorded, s)
	}
}

func renderText(w io.Writer, recorded []eventstore.RecordedEvent, s account.Summary) error {
	for _, e := range recorded {
		pretty, err := account.Pretty(e.Data)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "\nEventType: %s\n%s\n", e.Type, pretty); err != nil {
			return err
		}
	}
	return writeBalance(w, s)
}

// renderTable renders one markdown row per event.
//
// Columns:
//   - revision of the event in its stream
//   - event type
//   - detail: the account name for AccountCreated, the signed delta for
//     AccountBalanceUpdated
//   - time recorded in the payload
func renderTable(w io.Writer, recorded []eventstore.RecordedEvent, decoded []account.Event, s account.Summary) error {
	table := tablewriter.NewTable(w,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)
	table.Header([]string{"#", "Event Type", "Detail", "Time"})

	rows := make([][]string, 0, len(recorded))
	for i, e := range recorded {
		var detail string
		var at time.Time
		switch ev := decoded[i].(type) {
		case account.AccountCreated:
			detail, at = ev.Name, ev.Created
		case account.AccountBalanceUpdated:
			detail, at = signed(ev.Delta), ev.EventTime
		}
		rows = append(rows, []string{
			strconv.FormatUint(e.Revision, 10),
			e.Type,
			detail,
			at.Format(time.RFC3339),
		})
	}

	if err := table.Bulk(rows); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	return writeBalance(w, s)
}

type jsonEvent struct {
	EventID   string          `json:"eventId"`
	EventType string          `json:"eventType"`
	Revision  uint64          `json:"revision"`
	Created   time.Time       `json:"created"`
	Data      json.RawMessage `json:"data"`
}

type jsonReport struct {
	Stream  string      `json:"stream"`
	Account string      `json:"account"`
	Events  []jsonEvent `json:"events"`
	Balance int64       `json:"balance"`
	Updates int         `json:"updates"`
}

func renderJSON(w io.Writer, stream string, recorded []eventstore.RecordedEvent, s account.Summary) error {
	report := jsonReport{
		Stream:  stream,
		Account: s.Account.ID.String(),
		Events:  make([]jsonEvent, 0, len(recorded)),
		Balance: s.Balance,
		Updates: s.Updates,
	}
	for _, e := range recorded {
		report.Events = append(report.Events, jsonEvent{
			EventID:   e.ID.String(),
			EventType: e.Type,
			Revision:  e.Revision,
			Created:   e.Created,
			Data:      json.RawMessage(e.Data),
		})
	}

	buf := gc.Default.Get()
	defer gc.Default.Put(buf)

	enc := json.NewEncoder(buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("error encoding report: %w", err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func writeBalance(w io.Writer, s account.Summary) error {
	_, err := fmt.Fprintf(w, "\nBalance: %s (%d updates)\n", account.FormatCents(s.Balance), s.Updates)
	return err
}

func signed(cents int64) string {
	if cents >= 0 {
		return "+" + account.FormatCents(cents)
	}
	return account.FormatCents(cents)
}
