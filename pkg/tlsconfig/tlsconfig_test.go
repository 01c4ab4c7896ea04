package tlsconfig

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTestPKI creates a CA and a leaf certificate signed by it in dir.
func writeTestPKI(t *testing.T, dir string) Files {
	t.Helper()

	caKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	caTmpl := &x509.Certificate{
		SerialNumber:          big.NewInt(1),
		Subject:               pkix.Name{CommonName: "test-ca"},
		NotBefore:             time.Now().Add(-time.Hour),
		NotAfter:              time.Now().Add(time.Hour),
		IsCA:                  true,
		KeyUsage:              x509.KeyUsageCertSign,
		BasicConstraintsValid: true,
	}
	caDER, err := x509.CreateCertificate(rand.Reader, caTmpl, caTmpl, &caKey.PublicKey, caKey)
	require.NoError(t, err)
	caCert, err := x509.ParseCertificate(caDER)
	require.NoError(t, err)

	leafKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	leafTmpl := &x509.Certificate{
		SerialNumber: big.NewInt(2),
		Subject:      pkix.Name{CommonName: "localhost"},
		DNSNames:     []string{"localhost"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
		KeyUsage:     x509.KeyUsageDigitalSignature,
		ExtKeyUsage:  []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth, x509.ExtKeyUsageClientAuth},
	}
	leafDER, err := x509.CreateCertificate(rand.Reader, leafTmpl, caCert, &leafKey.PublicKey, caKey)
	require.NoError(t, err)
	leafKeyDER, err := x509.MarshalECPrivateKey(leafKey)
	require.NoError(t, err)

	files := Files{
		Cert: filepath.Join(dir, "cert.pem"),
		Key:  filepath.Join(dir, "key.pem"),
		CA:   filepath.Join(dir, "ca.pem"),
	}
	writePEM(t, files.CA, "CERTIFICATE", caDER)
	writePEM(t, files.Cert, "CERTIFICATE", leafDER)
	writePEM(t, files.Key, "EC PRIVATE KEY", leafKeyDER)
	return files
}

func writePEM(t *testing.T, path, blockType string, der []byte) {
	t.Helper()
	data := pem.EncodeToMemory(&pem.Block{Type: blockType, Bytes: der})
	require.NoError(t, os.WriteFile(path, data, 0o600))
}

func TestLoadServerTLS(t *testing.T) {
	files := writeTestPKI(t, t.TempDir())

	cfg, err := LoadServerTLS(files)
	require.NoError(t, err)

	assert.Len(t, cfg.Certificates, 1)
	assert.NotNil(t, cfg.ClientCAs)
	assert.Equal(t, tls.RequireAndVerifyClientCert, cfg.ClientAuth)
	assert.Equal(t, uint16(tls.VersionTLS12), cfg.MinVersion)
}

func TestLoadClientTLS(t *testing.T) {
	files := writeTestPKI(t, t.TempDir())

	cfg, err := LoadClientTLS(files, "localhost")
	require.NoError(t, err)

	assert.Len(t, cfg.Certificates, 1)
	assert.NotNil(t, cfg.RootCAs)
	assert.Equal(t, "localhost", cfg.ServerName)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	files := writeTestPKI(t, dir)

	t.Run("missing key pair", func(t *testing.T) {
		broken := files
		broken.Key = filepath.Join(dir, "missing.pem")
		_, err := LoadServerTLS(broken)
		assert.ErrorContains(t, err, "load key pair")
	})

	t.Run("missing CA", func(t *testing.T) {
		broken := files
		broken.CA = filepath.Join(dir, "missing.pem")
		_, err := LoadClientTLS(broken, "")
		assert.ErrorContains(t, err, "read CA cert")
	})

	t.Run("CA without certificates", func(t *testing.T) {
		empty := filepath.Join(dir, "empty.pem")
		require.NoError(t, os.WriteFile(empty, []byte("not a certificate"), 0o600))

		broken := files
		broken.CA = empty
		_, err := LoadServerTLS(broken)
		assert.ErrorIs(t, err, ErrNoCA)
	})
}

func TestFiles_Enabled(t *testing.T) {
	assert.False(t, Files{}.Enabled())
	assert.True(t, Files{Cert: "cert.pem"}.Enabled())
}
