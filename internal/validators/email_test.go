package validators

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/atelierbarbier/reservation-api/internal/httperr"
)

func stubDNS(t *testing.T, mx []*net.MX, addrs []string) {
	t.Helper()

	origMX, origHost := lookupMX, lookupHost
	t.Cleanup(func() { lookupMX, lookupHost = origMX, origHost })

	lookupMX = func(ctx context.Context, host string) ([]*net.MX, error) {
		if mx == nil {
			return nil, errors.New("no such host")
		}
		return mx, nil
	}
	lookupHost = func(ctx context.Context, host string) ([]string, error) {
		if addrs == nil {
			return nil, errors.New("no such host")
		}
		return addrs, nil
	}
}

func TestCheckClientEmail_Malformed(t *testing.T) {
	stubDNS(t, []*net.MX{{Host: "mx.example.com"}}, nil)

	for _, email := range []string{"", "no-at-sign", "@example.com", "jean@"} {
		if err := CheckClientEmail(email); !httperr.IsBusiness(err, "invalid_email") {
			t.Fatalf("%q: expected invalid_email, got %v", email, err)
		}
	}
}

func TestCheckClientEmail_MXBackedDomain(t *testing.T) {
	stubDNS(t, []*net.MX{{Host: "mx.example.com"}}, nil)

	if err := CheckClientEmail("jean@example.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCheckClientEmail_AddressRecordFallback(t *testing.T) {
	stubDNS(t, nil, []string{"192.0.2.10"})

	if err := CheckClientEmail("jean@example.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCheckClientEmail_DeadDomain(t *testing.T) {
	stubDNS(t, nil, nil)

	err := CheckClientEmail("jean@nowhere.invalid")
	if !httperr.IsBusiness(err, "invalid_email_domain") {
		t.Fatalf("expected invalid_email_domain, got %v", err)
	}
}
