/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package tls_test

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/trustbloc/vp-verifier/internal/pkg/utils/tls"
)

func TestGetCertPool(t *testing.T) {
	dir := t.TempDir()

	caPath, ca := writeCA(t, dir)

	garbage := filepath.Join(dir, "garbage.pem")
	require.NoError(t, os.WriteFile(garbage, []byte("data"), 0o600))

	badDER := filepath.Join(dir, "bad-der.pem")
	require.NoError(t, os.WriteFile(badDER,
		pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: []byte("not der")}), 0o600))

	tests := []struct {
		name      string
		system    bool
		files     []string
		expectErr string
	}{
		{name: "missing file", files: []string{filepath.Join(dir, "missing.pem")}, expectErr: "failed to read cert"},
		{name: "not a pem file", files: []string{garbage}, expectErr: "failed to decode pem"},
		{name: "invalid certificate bytes", files: []string{badDER}, expectErr: "failed to parse cert"},
		{name: "ca cert added", files: []string{caPath}},
		{name: "system pool with ca cert", system: true, files: []string{caPath}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool, err := tls.GetCertPool(tt.system, tt.files)

			if tt.expectErr != "" {
				require.ErrorContains(t, err, tt.expectErr)
				require.Nil(t, pool)

				return
			}

			require.NoError(t, err)

			_, err = ca.Verify(x509.VerifyOptions{Roots: pool})
			require.NoError(t, err)
		})
	}

	t.Run("empty pool", func(t *testing.T) {
		pool, err := tls.GetCertPool(false, nil)
		require.NoError(t, err)

		_, err = ca.Verify(x509.VerifyOptions{Roots: pool})
		require.Error(t, err)
	})
}

func writeCA(t *testing.T, dir string) (string, *x509.Certificate) {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	tmpl := &x509.Certificate{
		SerialNumber:          big.NewInt(1),
		Subject:               pkix.Name{CommonName: "vp-verifier test ca"},
		NotBefore:             time.Now().Add(-time.Hour),
		NotAfter:              time.Now().Add(time.Hour),
		IsCA:                  true,
		BasicConstraintsValid: true,
		KeyUsage:              x509.KeyUsageCertSign,
	}

	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	require.NoError(t, err)

	cert, err := x509.ParseCertificate(der)
	require.NoError(t, err)

	p := filepath.Join(dir, "ca.pem")
	require.NoError(t, os.WriteFile(p, pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der}), 0o600))

	return p, cert
}
