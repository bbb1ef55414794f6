package publicip

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Cloud-Foundations/ddns/pkg/log/testlogger"
)

func makeLookupServer(response string, statusCode int) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, req *http.Request) {
			w.WriteHeader(statusCode)
			fmt.Fprintln(w, response)
		}))
}

func TestResolveIPv4(t *testing.T) {
	server := makeLookupServer("203.0.113.7", http.StatusOK)
	defer server.Close()
	resolver, err := New(Config{IPv4LookupURL: server.URL},
		testlogger.New(t))
	if err != nil {
		t.Fatal(err)
	}
	ip, err := resolver.ResolveIPv4()
	if err != nil {
		t.Fatal(err)
	}
	if ip.String() != "203.0.113.7" {
		t.Errorf("unexpected address: %s", ip)
	}
}

func TestResolveIPv4RejectsIPv6Response(t *testing.T) {
	server := makeLookupServer("2001:db8::1", http.StatusOK)
	defer server.Close()
	resolver, err := New(Config{IPv4LookupURL: server.URL},
		testlogger.New(t))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := resolver.ResolveIPv4(); err == nil {
		t.Error("no error for IPv6 response to IPv4 lookup")
	}
}

func TestResolveRejectsUnparseableResponse(t *testing.T) {
	server := makeLookupServer("<html>not an address</html>",
		http.StatusOK)
	defer server.Close()
	resolver, err := New(Config{IPv4LookupURL: server.URL},
		testlogger.New(t))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := resolver.ResolveIPv4(); err == nil {
		t.Error("no error for unparseable response")
	}
}

func TestResolveRejectsErrorStatus(t *testing.T) {
	server := makeLookupServer("203.0.113.7",
		http.StatusServiceUnavailable)
	defer server.Close()
	resolver, err := New(Config{IPv4LookupURL: server.URL},
		testlogger.New(t))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := resolver.ResolveIPv4(); err == nil {
		t.Error("no error for error status")
	}
}

func TestConfigDefaults(t *testing.T) {
	resolver, err := New(Config{}, testlogger.New(t))
	if err != nil {
		t.Fatal(err)
	}
	if resolver.config.IPv4LookupURL != DefaultLookupURL {
		t.Errorf("unexpected IPv4 lookup URL: %s",
			resolver.config.IPv4LookupURL)
	}
	if resolver.config.IPv6LookupURL != DefaultLookupURL {
		t.Errorf("unexpected IPv6 lookup URL: %s",
			resolver.config.IPv6LookupURL)
	}
	if resolver.config.Timeout < 1 {
		t.Errorf("unexpected timeout: %s", resolver.config.Timeout)
	}
}
