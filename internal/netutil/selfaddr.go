// Package netutil provides network utility functions for the bootstrap run.
package netutil

import (
	"fmt"
	"net"
	"time"

	"github.com/mkrall/nodeup/internal/util/retry"
)

const (
	// DefaultProbeAddr is a non-routable target. A UDP "connect" to it never
	// transmits a packet; it only makes the OS choose the outbound source
	// address for this host.
	DefaultProbeAddr = "10.254.254.254:1"

	// FallbackAddress is returned when address discovery keeps failing.
	// Discovery is non-fatal: a node that cannot determine its routable
	// address still proceeds with bootstrap.
	FallbackAddress = "127.0.0.1"
)

// Resolver discovers the routable address of the local host.
// The zero value is not usable; construct with NewResolver.
type Resolver struct {
	probeAddr    string
	maxAttempts  int
	initialDelay time.Duration
	dial         func(network, addr string) (net.Conn, error)
	sleep        func(time.Duration)
	logf         func(format string, v ...any)
}

// ResolverOption customizes a Resolver.
type ResolverOption func(*Resolver)

// WithProbeAddr overrides the probe target.
func WithProbeAddr(addr string) ResolverOption {
	return func(r *Resolver) { r.probeAddr = addr }
}

// WithMaxAttempts overrides the attempt budget.
func WithMaxAttempts(n int) ResolverOption {
	return func(r *Resolver) { r.maxAttempts = n }
}

// WithInitialDelay overrides the first backoff delay.
func WithInitialDelay(d time.Duration) ResolverOption {
	return func(r *Resolver) { r.initialDelay = d }
}

// WithDialer replaces the dial function, letting tests fail the probe.
func WithDialer(dial func(network, addr string) (net.Conn, error)) ResolverOption {
	return func(r *Resolver) { r.dial = dial }
}

// WithSleep replaces the sleep function, letting tests simulate time.
func WithSleep(sleep func(time.Duration)) ResolverOption {
	return func(r *Resolver) { r.sleep = sleep }
}

// WithLogf replaces the log function.
func WithLogf(logf func(format string, v ...any)) ResolverOption {
	return func(r *Resolver) { r.logf = logf }
}

// NewResolver creates a Resolver with the stock budget: 7 attempts starting
// at a 5 second delay and doubling each retry.
func NewResolver(opts ...ResolverOption) *Resolver {
	r := &Resolver{
		probeAddr:    DefaultProbeAddr,
		maxAttempts:  7,
		initialDelay: 5 * time.Second,
		dial:         net.Dial,
		sleep:        time.Sleep,
		logf:         func(string, ...any) {},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SelfAddress returns the host's routable source address. When every probe
// attempt fails it returns FallbackAddress; it never returns an error.
func (r *Resolver) SelfAddress() string {
	var addr string

	err := retry.Do(func() error {
		conn, err := r.dial("udp", r.probeAddr)
		if err != nil {
			r.logf("Failed to get IP address of the current host: %v", err)
			return err
		}
		defer conn.Close()

		udpAddr, ok := conn.LocalAddr().(*net.UDPAddr)
		if !ok {
			return fmt.Errorf("unexpected local address type %T", conn.LocalAddr())
		}
		addr = udpAddr.IP.String()
		return nil
	},
		retry.WithMaxAttempts(r.maxAttempts),
		retry.WithInitialDelay(r.initialDelay),
		retry.WithSleep(r.sleep),
	)
	if err != nil {
		r.logf("Exceeded maximum attempts (%d) to get IP address, using default %s", r.maxAttempts, FallbackAddress)
		return FallbackAddress
	}

	return addr
}
