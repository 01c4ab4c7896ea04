package tlsconfig

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"os"
)

// ErrNoCA is returned when the CA file holds no usable certificate
var ErrNoCA = errors.New("no CA certificate found")

// Files names the PEM files of one side of an mTLS connection.
type Files struct {
	Cert string
	Key  string
	CA   string
}

// Enabled reports whether a certificate was configured.
// Without one the caller runs in plaintext.
func (f Files) Enabled() bool {
	return f.Cert != ""
}

// LoadServerTLS creates a tls.Config for a gRPC server requiring client certs (mTLS).
func LoadServerTLS(f Files) (*tls.Config, error) {
	cert, pool, err := load(f)
	if err != nil {
		return nil, err
	}

	return &tls.Config{
		Certificates: []tls.Certificate{cert},
		ClientCAs:    pool,
		ClientAuth:   tls.RequireAndVerifyClientCert,
		MinVersion:   tls.VersionTLS12,
	}, nil
}

// LoadClientTLS creates a tls.Config for a gRPC client that presents a cert (mTLS).
// serverName overrides the name checked against the server certificate when set.
func LoadClientTLS(f Files, serverName string) (*tls.Config, error) {
	cert, pool, err := load(f)
	if err != nil {
		return nil, err
	}

	return &tls.Config{
		Certificates: []tls.Certificate{cert},
		RootCAs:      pool,
		ServerName:   serverName,
		MinVersion:   tls.VersionTLS12,
	}, nil
}

func load(f Files) (tls.Certificate, *x509.CertPool, error) {
	cert, err := tls.LoadX509KeyPair(f.Cert, f.Key)
	if err != nil {
		return tls.Certificate{}, nil, fmt.Errorf("load key pair: %w", err)
	}

	caCert, err := os.ReadFile(f.CA)
	if err != nil {
		return tls.Certificate{}, nil, fmt.Errorf("read CA cert: %w", err)
	}

	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(caCert) {
		return tls.Certificate{}, nil, fmt.Errorf("parse %s: %w", f.CA, ErrNoCA)
	}
	return cert, pool, nil
}
