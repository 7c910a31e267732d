package validators

import (
	"context"
	"net"
	"strings"
	"time"

	"github.com/atelierbarbier/reservation-api/internal/httperr"
)

// Booking confirmations and account mail both go through SMTP, so an
// address whose domain can never receive mail is rejected up front.

const dnsTimeout = 3 * time.Second

// DNS lookups are package variables so tests run without a network.
var (
	lookupMX = func(ctx context.Context, host string) ([]*net.MX, error) {
		return net.DefaultResolver.LookupMX(ctx, host)
	}
	lookupHost = func(ctx context.Context, host string) ([]string, error) {
		return net.DefaultResolver.LookupHost(ctx, host)
	}
)

// CheckClientEmail verifies the address has a deliverable domain:
// either MX records or, failing that, a plain address record.
func CheckClientEmail(email string) error {
	at := strings.LastIndex(email, "@")
	if at < 1 || at == len(email)-1 {
		return httperr.ErrInvalidInput("invalid_email", "Email address is malformed.")
	}

	host := email[at+1:]

	ctx, cancel := context.WithTimeout(context.Background(), dnsTimeout)
	defer cancel()

	if mx, err := lookupMX(ctx, host); err == nil && len(mx) > 0 {
		return nil
	}
	if addrs, err := lookupHost(ctx, host); err == nil && len(addrs) > 0 {
		return nil
	}

	return httperr.ErrInvalidInput("invalid_email_domain", "The email domain cannot receive mail.")
}
