package validators

import (
	"context"
	"net"
	"net/mail"
	"strings"
	"time"
)

// DomainChecker accepts an e-mail address when its domain has an MX or
// an A/AAAA record.
type DomainChecker struct {
	resolver *net.Resolver
	timeout  time.Duration
}

func NewDomainChecker() *DomainChecker {
	return &DomainChecker{resolver: net.DefaultResolver, timeout: 3 * time.Second}
}

func (d *DomainChecker) Valid(email string) bool {
	domain, ok := Domain(email)
	if !ok {
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	if mx, err := d.resolver.LookupMX(ctx, domain); err == nil && len(mx) > 0 {
		return true
	}
	if ips, err := d.resolver.LookupIPAddr(ctx, domain); err == nil && len(ips) > 0 {
		return true
	}
	return false
}

// Domain extracts the domain part of a syntactically valid address.
func Domain(email string) (string, bool) {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", false
	}
	at := strings.LastIndex(addr.Address, "@")
	if at < 0 || at == len(addr.Address)-1 {
		return "", false
	}
	return strings.ToLower(addr.Address[at+1:]), true
}
