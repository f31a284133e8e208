package auth

import (
	"crypto/x509"
	"io/ioutil"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Well-known locations of the service-account credentials mounted into
// a pod. Both files are optional: a missing file means the client runs
// unauthenticated, or with the default TLS trust.
const (
	TokenFile  = "/var/run/secrets/kubernetes.io/serviceaccount/token"
	CACertFile = "/var/run/secrets/kubernetes.io/serviceaccount/ca.crt"
)

// Material is what a Provider resolved at one moment in time. Either
// field may be absent; that is the anonymous / default-trust state, not
// an error.
type Material struct {
	Token       string
	TrustAnchor *x509.CertPool
}

// Provider yields credential material for a request. Implementations
// must reflect the current credentials at call time, so rotated tokens
// take effect without a restart.
type Provider interface {
	Resolve() (Material, error)
}

// FileProvider reads the token and CA certificate files on every
// resolution. The zero value reads the in-cluster mount paths.
type FileProvider struct {
	TokenPath  string
	CACertPath string
}

func (p FileProvider) Resolve() (Material, error) {
	tokenPath, certPath := p.TokenPath, p.CACertPath
	if tokenPath == "" {
		tokenPath = TokenFile
	}
	if certPath == "" {
		certPath = CACertFile
	}

	var m Material
	token, err := ioutil.ReadFile(tokenPath)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return m, errors.Wrap(err, "reading bearer token")
	default:
		m.Token = strings.TrimSpace(string(token))
	}

	cert, err := ioutil.ReadFile(certPath)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return m, errors.Wrap(err, "reading CA certificate")
	default:
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(cert) {
			return m, errors.Errorf("no certificates found in %s", certPath)
		}
		m.TrustAnchor = pool
	}

	return m, nil
}
