// internal/scan/resolver.go
package scan

import (
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/abhishek-pokhrel/DNSProbe/internal/core"
	"github.com/miekg/dns"
)

// Status classifies the outcome of a single lookup.
type Status int

const (
	StatusSuccess Status = iota
	StatusNoData
	StatusDomainNotFound
	StatusError
)

// Record is one resolved DNS record. All records returned by the same query
// share the same measured elapsed time.
type Record struct {
	Host    string
	Type    string
	Value   string
	Elapsed time.Duration
}

// Outcome is the classified result of one (domain, record type) lookup.
// Exactly one Outcome is produced per request; Err is set only for StatusError.
type Outcome struct {
	Domain  string
	Type    string
	Status  Status
	Records []Record
	Err     error
}

// Resolver resolves a single record type for a domain.
type Resolver interface {
	Resolve(domain, recordType string) Outcome
}

// Client queries a single configured nameserver. It is safe for concurrent
// use: the nameserver address is read-only after construction and
// dns.Client.Exchange carries no shared state between calls.
type Client struct {
	addr    string
	timeout time.Duration
}

// NewClient builds a resolver client for the given nameserver. A bare IP or
// hostname gets the standard DNS port appended.
func NewClient(nameserver string, timeout time.Duration) *Client {
	addr := nameserver
	if _, _, err := net.SplitHostPort(nameserver); err != nil {
		addr = net.JoinHostPort(nameserver, "53")
	}
	return &Client{addr: addr, timeout: timeout}
}

// Resolve issues one query for recordType and classifies the response. A
// failed attempt is final; there are no retries within a scan run.
func (c *Client) Resolve(domain, recordType string) Outcome {
	out := Outcome{Domain: domain, Type: recordType}

	qtype, ok := dns.StringToType[strings.ToUpper(recordType)]
	if !ok || qtype == dns.TypeNone {
		out.Status = StatusError
		out.Err = fmt.Errorf("%w: %s", core.ErrRecordType, recordType)
		return out
	}

	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(domain), qtype)
	msg.RecursionDesired = true

	client := &dns.Client{Timeout: c.timeout}
	start := time.Now()
	resp, _, err := client.Exchange(msg, c.addr)
	elapsed := time.Since(start)
	if err != nil {
		out.Status = StatusError
		out.Err = fmt.Errorf("query to %s failed: %w", c.addr, err)
		return out
	}

	switch resp.Rcode {
	case dns.RcodeSuccess:
	case dns.RcodeNameError:
		out.Status = StatusDomainNotFound
		return out
	default:
		out.Status = StatusError
		out.Err = fmt.Errorf("nameserver %s answered %s", c.addr, dns.RcodeToString[resp.Rcode])
		return out
	}

	for _, rr := range resp.Answer {
		if rr.Header().Rrtype != qtype {
			// CNAME indirection in the answer section, not the type asked for.
			continue
		}
		out.Records = append(out.Records, Record{
			Host:    domain,
			Type:    recordType,
			Value:   renderRData(rr),
			Elapsed: elapsed,
		})
	}
	if len(out.Records) == 0 {
		out.Status = StatusNoData
		return out
	}
	out.Status = StatusSuccess
	return out
}

// renderRData returns the record's presentation text without the
// name/TTL/class/type header fields, e.g. "10 mail1.example.com." for MX.
func renderRData(rr dns.RR) string {
	parts := strings.Fields(rr.String())
	if len(parts) <= 4 {
		return rr.String()
	}
	return strings.Join(parts[4:], " ")
}
