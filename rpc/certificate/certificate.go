// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package certificate turns PEM text from the configuration into a
// TLS server configuration
package certificate

import (
	"crypto/tls"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/logger"
)

// Fingerprint - SHA3-256 of the DER encoded leaf certificate
type Fingerprint [32]byte

// Get - load a key pair and return a TLS configuration serving it
func Get(log *logger.L, name string, certificate string, key string) (*tls.Config, Fingerprint, error) {
	keyPair, err := tls.X509KeyPair([]byte(certificate), []byte(key))
	if nil != err {
		log.Errorf("%s: failed to load keypair: %s", name, err)
		return nil, Fingerprint{}, err
	}

	tlsConfiguration := &tls.Config{
		Certificates: []tls.Certificate{keyPair},
		MinVersion:   tls.VersionTLS12,
	}

	return tlsConfiguration, Of(keyPair.Certificate[0]), nil
}

// Of - the fingerprint of a DER certificate
//
// equivalent: openssl x509 -outform DER -in rpc.crt | sha3sum -a 256
func Of(der []byte) Fingerprint {
	return Fingerprint(sha3.Sum256(der))
}
