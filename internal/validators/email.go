package validators

import (
	"context"
	"net"
	"strings"
	"time"
)

// dnsTimeout bounds the lookups so registration never hangs on a slow
// resolver.
const dnsTimeout = 3 * time.Second

// IsEmailDomainValid reports whether the address's domain can plausibly
// receive mail: an MX record, or failing that any A/AAAA record. This
// catches typoed domains at registration without sending any mail;
// it does not prove the mailbox exists.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domain := strings.ToLower(email[at+1:])

	ctx, cancel := context.WithTimeout(context.Background(), dnsTimeout)
	defer cancel()

	var resolver net.Resolver

	if mx, err := resolver.LookupMX(ctx, domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := resolver.LookupIPAddr(ctx, domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
