// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// esdb-account-sample appends a new account's events to an EventStoreDB
// stream and reads them back.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/esdb-account-samples/cmd/esdb-account-sample@latest
//
// # Usage
//
//	esdb-account-sample folder      --connection-string CS --cert-folder DIR [FLAGS]
//	esdb-account-sample credentials --username U --password P --host H --cert C --key K --ca CA [FLAGS]
//	esdb-account-sample raw         --connection-string CS [--cert-folder DIR] [FLAGS]
//
// # Flags
//
//	--config        JSON or YAML config file (env ESDB_SAMPLE_CONFIG_FILE)
//	--output        Event output: text, table or json (default text)
//	--log-format    Log output on stderr: text or json (default text)
//	--account-name  Name of the generated account (default "Test")
//	--updates       Balance updates to append (default 5)
//	--read-count    Maximum events to read back (default 100)
//	--dry-run       Use an in-memory store instead of connecting
//
// ESDB_CONNECTION_STRING and ESDB_PASSWORD stand in for the matching flags.
//
// # Examples
//
// Connect with the certificates generated for a secure cluster:
//
//	esdb-account-sample folder \
//	  --connection-string 'esdb://node1:2113?tlsCaFile=ca.crt&userCertFile=user-admin.crt&userKeyFile=user-admin.key' \
//	  --cert-folder ./certs
//
// Try the walkthrough without a server:
//
//	esdb-account-sample raw --dry-run --connection-string 'esdb://localhost:2113?tls=false' --output table
//
// Connect to an insecure single node:
//
//	esdb-account-sample raw --connection-string 'esdb://localhost:2113?tls=false'
package main
