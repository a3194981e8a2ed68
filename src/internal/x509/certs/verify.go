// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs

import (
	"crypto"
	"crypto/x509"
	"errors"
	"fmt"

	"github.com/cloudflare/cfssl/helpers"
)

var (
	// ErrParsePrivateKey indicates that the key file holds no usable private key.
	ErrParsePrivateKey = errors.New("x509certs: failed to parse private key")

	// ErrKeyMismatch indicates that the private key does not belong to the certificate.
	ErrKeyMismatch = errors.New("x509certs: private key does not match certificate")

	// ErrUntrustedClient indicates that the user certificate does not chain to the CA.
	ErrUntrustedClient = errors.New("x509certs: client certificate is not trusted by CA")
)

// VerifyKeyPair checks that keyPEM is the private key of the first
// certificate in certPEM.
func VerifyKeyPair(certPEM, keyPEM []byte) error {
	certs, err := helpers.ParseCertificatesPEM(certPEM)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrParseCertificate, err)
	}
	if len(certs) == 0 {
		return ErrParseCertificate
	}

	key, err := helpers.ParsePrivateKeyPEM(keyPEM)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrParsePrivateKey, err)
	}

	pub, ok := key.Public().(interface{ Equal(crypto.PublicKey) bool })
	if !ok || !pub.Equal(certs[0].PublicKey) {
		return ErrKeyMismatch
	}
	return nil
}

// VerifyClient verifies that the first certificate in certPEM chains to a
// root in caData for client authentication. Any further certificates in
// certPEM are used as intermediates.
func VerifyClient(certPEM, caData []byte) error {
	c := New()

	certs, err := c.Extract(certPEM)
	if err != nil {
		return err
	}
	roots, err := c.CertPool(caData)
	if err != nil {
		return err
	}

	intermediates := x509.NewCertPool()
	for _, cert := range certs[1:] {
		intermediates.AddCert(cert)
	}

	opts := x509.VerifyOptions{
		Roots:         roots,
		Intermediates: intermediates,
		KeyUsages:     []x509.ExtKeyUsage{x509.ExtKeyUsageClientAuth},
	}
	if _, err := certs[0].Verify(opts); err != nil {
		// Keep the verifier's reason (expired, unknown authority, usage).
		return fmt.Errorf("%w: %w", ErrUntrustedClient, err)
	}
	return nil
}
