// Package gatewayclient sends shipment requests from the storefront to the
// delivery partner gateway relays, trying them in a fixed order.
package gatewayclient

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"vizoshop/internal/pkg/errs"
)

// Endpoint is one candidate gateway relay.
type Endpoint struct {
	URL     string
	Timeout time.Duration
}

// ParseEndpoints reads an ordered, comma separated list. Each entry is a URL
// optionally followed by "|" and its own timeout:
//
//	https://relay-a.example/api/yalidine-orders|5s,https://relay-b.example/api/yalidine-orders
//
// Entries without a timeout use defaultTimeout. An empty list yields no
// endpoints.
func ParseEndpoints(list string, defaultTimeout time.Duration) ([]Endpoint, error) {
	endpoints := make([]Endpoint, 0)

	for _, entry := range strings.Split(list, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		rawURL, rawTimeout, hasTimeout := strings.Cut(entry, "|")
		rawURL = strings.TrimSpace(rawURL)

		parsed, err := url.Parse(rawURL)
		if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
			return nil, errs.NewValueIsInvalidErrorWithCause("gateway endpoint",
				fmt.Errorf("%q is not an absolute http(s) URL", rawURL))
		}

		timeout := defaultTimeout
		if hasTimeout {
			timeout, err = time.ParseDuration(strings.TrimSpace(rawTimeout))
			if err != nil {
				return nil, errs.NewValueIsInvalidErrorWithCause("gateway endpoint timeout", err)
			}
		}
		if timeout <= 0 {
			return nil, errs.NewValueIsOutOfRangeError("gateway endpoint timeout", timeout, "1ns", "unbounded")
		}

		endpoints = append(endpoints, Endpoint{URL: rawURL, Timeout: timeout})
	}

	return endpoints, nil
}

// HealthURL is the relay's health route on the same origin.
func (e Endpoint) HealthURL() string {
	parsed, err := url.Parse(e.URL)
	if err != nil {
		return ""
	}
	return (&url.URL{Scheme: parsed.Scheme, Host: parsed.Host, Path: "/api/health"}).String()
}
