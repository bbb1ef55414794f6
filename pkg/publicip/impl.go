package publicip

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/Cloud-Foundations/ddns/pkg/log"
)

const maximumResponseSize = 256

func newResolver(config Config, logger log.DebugLogger) (
	*Resolver, error) {
	if config.IPv4LookupURL == "" {
		config.IPv4LookupURL = DefaultLookupURL
	}
	if config.IPv6LookupURL == "" {
		config.IPv6LookupURL = DefaultLookupURL
	}
	if config.Timeout < time.Second {
		config.Timeout = 15 * time.Second
	}
	return &Resolver{config: config, logger: logger}, nil
}

func (r *Resolver) lookup(network, lookupURL string,
	localAddr net.Addr) (net.IP, error) {
	dialer := &net.Dialer{
		LocalAddr: localAddr,
		Timeout:   r.config.Timeout,
	}
	httpClient := &http.Client{
		Timeout: r.config.Timeout,
		Transport: &http.Transport{
			DialContext: func(ctx context.Context, _,
				addr string) (net.Conn, error) {
				return dialer.DialContext(ctx, network, addr)
			},
		},
	}
	resp, err := httpClient.Get(lookupURL)
	if err != nil {
		return nil, fmt.Errorf("error querying: %s: %s", lookupURL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("error querying: %s: %s",
			lookupURL, resp.Status)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maximumResponseSize))
	if err != nil {
		return nil, fmt.Errorf("error reading response from: %s: %s",
			lookupURL, err)
	}
	ip := net.ParseIP(strings.TrimSpace(string(body)))
	if ip == nil {
		return nil, fmt.Errorf("error parsing address from: %s: %q",
			lookupURL, strings.TrimSpace(string(body)))
	}
	r.logger.Debugf(1, "discovered public address: %s from: %s\n",
		ip, lookupURL)
	return ip, nil
}

func (r *Resolver) resolveIPv4() (net.IP, error) {
	ip, err := r.lookup("tcp4", r.config.IPv4LookupURL,
		&net.TCPAddr{IP: net.IPv4zero})
	if err != nil {
		return nil, err
	}
	if ip.To4() == nil {
		return nil, fmt.Errorf("lookup returned non-IPv4 address: %s", ip)
	}
	return ip, nil
}

func (r *Resolver) resolveIPv6() (net.IP, error) {
	ip, err := r.lookup("tcp6", r.config.IPv6LookupURL,
		&net.TCPAddr{IP: net.IPv6zero})
	if err != nil {
		return nil, err
	}
	if ip.To4() != nil {
		return nil, fmt.Errorf("lookup returned non-IPv6 address: %s", ip)
	}
	return ip, nil
}
