package lifecycle

import (
	"crypto/tls"
	"net/http"
	"time"

	"github.com/paintapp/paintapp/pkg/logger"
)

// CertificatePolicy is the single place the host overrides a TLS trust
// decision. Development trusts failed certificates (self-signed asset
// servers); production denies and logs.
type CertificatePolicy struct {
	dev bool
}

// NewCertificatePolicy builds the policy for the given mode.
func NewCertificatePolicy(dev bool) *CertificatePolicy {
	return &CertificatePolicy{dev: dev}
}

// Decide is called with a failed certificate verification. It returns
// whether to trust the peer anyway.
func (p *CertificatePolicy) Decide(host string, verifyErr error) bool {
	if p.dev {
		logger.Warn("trusting failed certificate in development", logger.Attrs{
			"host":  host,
			"error": verifyErr.Error(),
		})
		return true
	}
	logger.Error("rejecting failed certificate", logger.Attrs{
		"host":  host,
		"error": verifyErr.Error(),
	})
	return false
}

// Client returns an HTTP client honoring the policy. Development skips
// chain verification; production uses the system roots untouched.
func (p *CertificatePolicy) Client(timeout time.Duration) *http.Client {
	transport := &http.Transport{}
	if p.dev {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}
