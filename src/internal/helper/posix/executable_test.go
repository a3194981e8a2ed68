// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExecutableName(t *testing.T) {
	tests := []struct {
		name     string
		arg0     string
		expected string
	}{
		{"Relative path", "./esdb-account-sample", "esdb-account-sample"},
		{"Just filename", "esdb-account-sample", "esdb-account-sample"},
		{"Empty", "", FallbackName},
		{"Root only", "/", FallbackName},
		// Backslashes are split on every platform.
		{"Foreign windows path", "C:\\windows\\style\\path\\sample.exe", "sample"},
		{"Exe suffix only stripped once", "tool.exe.exe", "tool.exe"},
	}

	if runtime.GOOS != "windows" {
		tests = append(tests, []struct {
			name     string
			arg0     string
			expected string
		}{
			{"Unix absolute path", "/usr/local/bin/esdb-account-sample", "esdb-account-sample"},
			{"Go test binary", "/tmp/go-build123/b001/cli.test", "cli.test"},
		}...)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExecutableName(tt.arg0))
		})
	}
}

func TestGetExecutableName(t *testing.T) {
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })

	os.Args = nil
	assert.Equal(t, FallbackName, GetExecutableName())

	os.Args = []string{"./sample"}
	assert.Equal(t, "sample", GetExecutableName())
}
