package sources

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
)

type transportMode int

const (
	// modeSecure verify the upstream certificate chain
	modeSecure transportMode = iota
	// modeFallback relaxed transport for hosts with outdated trust roots
	modeFallback
	// modeExhausted no attempts left
	modeExhausted
)

// retryPlan walks the two-tier retry policy: a fixed number of attempts on
// the verifying transport, then a single attempt on the relaxed transport,
// then exhausted. A certificate failure skips straight to the fallback.
type retryPlan struct {
	attempts int
	used     int
	fallback bool
	forced   bool
}

func newRetryPlan(attempts int) *retryPlan {
	return &retryPlan{attempts: attempts}
}

// Next return the transport mode to use for the next attempt
func (p *retryPlan) Next() transportMode {
	if !p.forced && p.used < p.attempts {
		p.used++
		return modeSecure
	}

	if p.fallback {
		return modeExhausted
	}

	p.fallback = true
	return modeFallback
}

// CertificateFailure record that secure negotiation failed, burning the
// remaining secure attempts
func (p *retryPlan) CertificateFailure() {
	p.forced = true
}

func isCertificateError(err error) bool {
	var verification *tls.CertificateVerificationError
	if errors.As(err, &verification) {
		return true
	}

	var unknownAuthority x509.UnknownAuthorityError
	if errors.As(err, &unknownAuthority) {
		return true
	}

	var hostname x509.HostnameError
	return errors.As(err, &hostname)
}
