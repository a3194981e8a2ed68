// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package account

import (
	"errors"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

const accountCreatedSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "AccountCreated",
  "type": "object",
  "required": ["id", "name", "created"],
  "properties": {
    "id": {"type": "string", "format": "uuid"},
    "name": {"type": "string", "minLength": 1},
    "created": {"type": "string", "format": "date-time"}
  },
  "additionalProperties": false
}`

const accountBalanceUpdatedSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "AccountBalanceUpdated",
  "type": "object",
  "required": ["id", "delta", "eventTime"],
  "properties": {
    "id": {"type": "string", "format": "uuid"},
    "delta": {"type": "integer"},
    "eventTime": {"type": "string", "format": "date-time"}
  },
  "additionalProperties": false
}`

var schemas = map[string]*gojsonschema.Schema{
	TypeAccountCreated:        mustSchema(accountCreatedSchema),
	TypeAccountBalanceUpdated: mustSchema(accountBalanceUpdatedSchema),
}

func mustSchema(s string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(s))
	if err != nil {
		panic("account: invalid built-in schema: " + err.Error())
	}
	return schema
}

func validate(schema *gojsonschema.Schema, data []byte) error {
	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return err
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return errors.New(strings.Join(msgs, "; "))
}
