package scan

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/abhishek-pokhrel/DNSProbe/internal/core"
	"github.com/miekg/dns"
	"github.com/phayes/freeport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startMockDNSServer runs an in-process DNS server on a free UDP port and
// returns its address.
func startMockDNSServer(t *testing.T, handler dns.HandlerFunc) string {
	t.Helper()
	port, err := freeport.GetFreePort()
	require.NoError(t, err)
	addr := fmt.Sprintf("127.0.0.1:%d", port)

	srv := &dns.Server{Addr: addr, Net: "udp", Handler: handler}
	started := make(chan struct{})
	srv.NotifyStartedFunc = func() { close(started) }
	go func() { _ = srv.ListenAndServe() }()
	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatal("mock DNS server did not start")
	}
	t.Cleanup(func() { _ = srv.Shutdown() })
	return addr
}

// answerHandler replies with the given zone-format records, filtered to the
// queried type.
func answerHandler(t *testing.T, rrs ...string) dns.HandlerFunc {
	t.Helper()
	return func(w dns.ResponseWriter, r *dns.Msg) {
		msg := new(dns.Msg)
		msg.SetReply(r)
		msg.Authoritative = true
		for _, s := range rrs {
			rr, err := dns.NewRR(s)
			if err != nil {
				continue
			}
			if rr.Header().Rrtype == r.Question[0].Qtype {
				msg.Answer = append(msg.Answer, rr)
			}
		}
		_ = w.WriteMsg(msg)
	}
}

func rcodeHandler(rcode int) dns.HandlerFunc {
	return func(w dns.ResponseWriter, r *dns.Msg) {
		msg := new(dns.Msg)
		msg.SetRcode(r, rcode)
		_ = w.WriteMsg(msg)
	}
}

func TestClient_ResolveA(t *testing.T) {
	addr := startMockDNSServer(t, answerHandler(t,
		"example.com. 300 IN A 93.184.216.34",
	))
	client := NewClient(addr, 2*time.Second)

	out := client.Resolve("example.com", "A")

	require.Equal(t, StatusSuccess, out.Status)
	require.Len(t, out.Records, 1)
	assert.Equal(t, "example.com", out.Records[0].Host)
	assert.Equal(t, "A", out.Records[0].Type)
	assert.Equal(t, "93.184.216.34", out.Records[0].Value)
	assert.GreaterOrEqual(t, out.Records[0].Elapsed, time.Duration(0))
}

func TestClient_ResolveMXMultipleRecords(t *testing.T) {
	addr := startMockDNSServer(t, answerHandler(t,
		"example.com. 300 IN MX 10 mail1.example.com.",
		"example.com. 300 IN MX 20 mail2.example.com.",
	))
	client := NewClient(addr, 2*time.Second)

	out := client.Resolve("example.com", "MX")

	require.Equal(t, StatusSuccess, out.Status)
	require.Len(t, out.Records, 2)
	values := []string{out.Records[0].Value, out.Records[1].Value}
	assert.ElementsMatch(t, []string{"10 mail1.example.com.", "20 mail2.example.com."}, values)
	// One query, one measurement: both records share it.
	assert.Equal(t, out.Records[0].Elapsed, out.Records[1].Elapsed)
}

func TestClient_NoData(t *testing.T) {
	addr := startMockDNSServer(t, answerHandler(t)) // success rcode, zero answers
	client := NewClient(addr, 2*time.Second)

	out := client.Resolve("example.com", "TXT")

	assert.Equal(t, StatusNoData, out.Status)
	assert.Empty(t, out.Records)
	assert.NoError(t, out.Err)
}

func TestClient_DomainNotFound(t *testing.T) {
	addr := startMockDNSServer(t, rcodeHandler(dns.RcodeNameError))
	client := NewClient(addr, 2*time.Second)

	out := client.Resolve("nonexistent.invalid", "A")

	assert.Equal(t, StatusDomainNotFound, out.Status)
	assert.Empty(t, out.Records)
}

func TestClient_ServerFailure(t *testing.T) {
	addr := startMockDNSServer(t, rcodeHandler(dns.RcodeServerFailure))
	client := NewClient(addr, 2*time.Second)

	out := client.Resolve("example.com", "A")

	require.Equal(t, StatusError, out.Status)
	assert.Contains(t, out.Err.Error(), "SERVFAIL")
}

func TestClient_UnsupportedRecordType(t *testing.T) {
	client := NewClient("127.0.0.1:53", time.Second)

	out := client.Resolve("example.com", "BOGUS")

	require.Equal(t, StatusError, out.Status)
	assert.True(t, errors.Is(out.Err, core.ErrRecordType))
}

func TestClient_DeadNameserver(t *testing.T) {
	port, err := freeport.GetFreePort()
	require.NoError(t, err)
	client := NewClient(fmt.Sprintf("127.0.0.1:%d", port), 500*time.Millisecond)

	out := client.Resolve("example.com", "A")

	require.Equal(t, StatusError, out.Status)
	assert.Error(t, out.Err)
}

func TestNewClient_AppendsDefaultPort(t *testing.T) {
	assert.Equal(t, "8.8.8.8:53", NewClient("8.8.8.8", time.Second).addr)
	assert.Equal(t, "1.1.1.1:5353", NewClient("1.1.1.1:5353", time.Second).addr)
	assert.Equal(t, "[::1]:53", NewClient("::1", time.Second).addr)
}
