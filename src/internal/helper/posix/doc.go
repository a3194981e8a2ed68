// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package posix provides [POSIX]-style helpers that behave the same on every
// platform the samples are built for.
//
// GetExecutableName names the cobra root command after the binary actually
// invoked, so help and usage text match what the user typed:
//
//	rootCmd := &cobra.Command{
//	    Use: posix.GetExecutableName(),
//	}
//
// Behavior:
//
//   - Linux/macOS: "/usr/bin/esdb-account-sample" → "esdb-account-sample"
//   - Windows: "C:\bin\esdb-account-sample.exe" → "esdb-account-sample"
//   - Foreign separators: "C:\bin\sample.exe" on Unix → "sample"
//   - Fallback: empty args → [FallbackName]
//
// [POSIX]: https://grokipedia.com/page/POSIX
package posix
