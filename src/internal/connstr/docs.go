// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package connstr prepares EventStoreDB connection strings for the sample commands.
//
// Three shapes are supported, one per command:
//
//   - [Resolve]: a connection string whose tlsCaFile, userCertFile and
//     userKeyFile values are bare filenames relative to a certificate folder.
//     The tlsCaFile parameter is removed and returned as a path so the caller
//     can load it into a root pool.
//   - [FromCredentials]: a connection string assembled from a username,
//     password, host and the user certificate/key paths.
//   - [Qualify]: a raw connection string whose certificate file parameters are
//     re-rooted under a folder with [net/url] query handling.
//
// Parameter lookups in [Resolve] are plain substring searches. Values that
// themselves contain '?', '&' or '=' are not supported.
package connstr
