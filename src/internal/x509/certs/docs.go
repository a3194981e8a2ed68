// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509certs loads and checks the TLS material used to authenticate
// against EventStoreDB: the user certificate, its private key, and the CA.
//
// It decodes [X.509] certificates in [PEM], DER, and [PKCS7] form, builds root
// pools from CA files, concatenates the three files into a single PEM bundle,
// and verifies that the key matches the certificate and that the certificate
// chains to the CA. File access errors are categorised as [ErrFileNotFound]
// or [ErrFileUnreadable].
//
// [X.509]: https://grokipedia.com/page/X.509
// [PKCS7]: https://grokipedia.com/page/PKCS_7
// [PEM]: https://grokipedia.com/page/PEM#privacy-enhanced-mail
package x509certs
