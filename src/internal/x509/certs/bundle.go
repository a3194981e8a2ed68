// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs

import (
	"bytes"

	"github.com/H0llyW00dzZ/esdb-account-samples/src/internal/helper/gc"
)

// Bundle is the PEM material used for TLS client authentication.
type Bundle struct {
	Cert []byte
	Key  []byte
	CA   []byte
}

// LoadBundle reads the user certificate, user key, and CA files.
// Errors wrap [ErrFileNotFound] or [ErrFileUnreadable].
func LoadBundle(certPath, keyPath, caPath string) (*Bundle, error) {
	var b Bundle
	for _, f := range []struct {
		path string
		dst  *[]byte
	}{
		{certPath, &b.Cert},
		{keyPath, &b.Key},
		{caPath, &b.CA},
	} {
		data, err := ReadFile(f.path)
		if err != nil {
			return nil, err
		}
		*f.dst = data
	}
	return &b, nil
}

// PEM concatenates certificate, key, and CA. Trailing whitespace of each part
// is trimmed and the parts are joined by a single newline.
func (b *Bundle) PEM() []byte {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	for i, part := range [][]byte{b.Cert, b.Key, b.CA} {
		if i > 0 {
			buf.WriteByte('\n')
		}
		buf.Write(bytes.TrimRight(part, " \t\r\n"))
	}

	return gc.Copy(buf)
}

// NormalizeCA rewrites a DER or PKCS7 CA as PEM blocks so that [Bundle.PEM]
// yields PEM only. A CA already in PEM is left as is.
func (b *Bundle) NormalizeCA() error {
	c := New()
	if c.IsPEM(b.CA) {
		return nil
	}

	certs, err := c.DecodeMultiple(b.CA)
	if err != nil {
		if certs, err = c.Extract(b.CA); err != nil {
			return err
		}
	}
	b.CA = c.EncodeMultiplePEM(certs)
	return nil
}
