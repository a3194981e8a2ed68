// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/H0llyW00dzZ/esdb-account-samples/src/internal/helper/gc"
)

var (
	// ErrFileNotFound indicates that a certificate, key, or CA path does not exist.
	ErrFileNotFound = errors.New("x509certs: file not found")

	// ErrFileUnreadable indicates that a path exists but cannot be read as a file.
	ErrFileUnreadable = errors.New("x509certs: file is not readable")
)

// CheckFile reports whether path names a readable regular file.
// The returned error wraps [ErrFileNotFound] or [ErrFileUnreadable].
func CheckFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return classify(path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrFileUnreadable, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return classify(path, err)
	}
	return f.Close()
}

// ReadFile reads path through a pooled buffer.
// The returned error wraps [ErrFileNotFound] or [ErrFileUnreadable].
func ReadFile(path string) ([]byte, error) {
	if err := CheckFile(path); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, classify(path, err)
	}
	defer f.Close()

	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	if _, err := buf.ReadFrom(f); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFileUnreadable, path, err)
	}

	return gc.Copy(buf), nil
}

func classify(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	return fmt.Errorf("%w: %s: %w", ErrFileUnreadable, path, err)
}
