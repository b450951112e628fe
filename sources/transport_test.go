package sources

import (
	"crypto/x509"
	"errors"
	"fmt"
	"testing"
)

func TestRetryPlanSequence(t *testing.T) {
	plan := newRetryPlan(3)

	want := []transportMode{modeSecure, modeSecure, modeSecure, modeFallback, modeExhausted, modeExhausted}
	for index, mode := range want {
		got := plan.Next()
		if got != mode {
			t.Errorf("Next() #%d = %d, want %d", index, got, mode)
		}
	}
}

func TestRetryPlanCertificateFailure(t *testing.T) {
	plan := newRetryPlan(3)

	if got := plan.Next(); got != modeSecure {
		t.Fatalf("Next() = %d, want secure", got)
	}

	// a certificate failure burns the remaining secure attempts
	plan.CertificateFailure()

	if got := plan.Next(); got != modeFallback {
		t.Errorf("Next() after certificate failure = %d, want fallback", got)
	}

	if got := plan.Next(); got != modeExhausted {
		t.Errorf("Next() after fallback = %d, want exhausted", got)
	}
}

func TestRetryPlanZeroAttempts(t *testing.T) {
	plan := newRetryPlan(0)

	if got := plan.Next(); got != modeFallback {
		t.Errorf("Next() = %d, want fallback", got)
	}

	if got := plan.Next(); got != modeExhausted {
		t.Errorf("Next() = %d, want exhausted", got)
	}
}

func TestIsCertificateError(t *testing.T) {
	wrapped := fmt.Errorf("get quote: %w", x509.UnknownAuthorityError{})
	if !isCertificateError(wrapped) {
		t.Errorf("isCertificateError() = false for unknown authority")
	}

	if isCertificateError(errors.New("connection refused")) {
		t.Errorf("isCertificateError() = true for plain network error")
	}
}
