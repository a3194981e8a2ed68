// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"path/filepath"
	"strings"
)

// FallbackName is returned when the process has no usable argv[0].
const FallbackName = "esdb-account-sample"

// GetExecutableName returns the base name of os.Args[0] without a ".exe"
// suffix, or FallbackName.
func GetExecutableName() string {
	if len(os.Args) == 0 {
		return FallbackName
	}
	return ExecutableName(os.Args[0])
}

// ExecutableName returns the base name of arg0 without a ".exe" suffix.
// Both '/' and '\' are treated as separators, so a Windows path passed on a
// Unix system still yields its last element.
func ExecutableName(arg0 string) string {
	name := filepath.Base(arg0)
	if i := strings.LastIndexAny(name, "/\\"); i >= 0 {
		name = name[i+1:]
	}
	name = strings.TrimSuffix(name, ".exe")
	if name == "" || name == "." || name == string(filepath.Separator) {
		return FallbackName
	}
	return name
}
