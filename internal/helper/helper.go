// Package helper prints the connection URL for the Expo Go client
// along with manual-entry instructions.
package helper

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/expotools/expourl/internal/addr"
	"github.com/expotools/expourl/internal/log"
	"github.com/expotools/expourl/internal/resolver"
	"github.com/fatih/color"
)

// DefaultPort is the port the Expo development server listens on.
const DefaultPort = 8081

// New creates a [Helper] configured with the provided options.
func New(ops ...Option) *Helper {
	defaults := []Option{
		WithResolver(resolver.New()),
		WithOutput(os.Stdout),
		WithPort(DefaultPort),
		WithLogger(log.Discard),
	}

	var h Helper
	for _, op := range slices.Concat(defaults, ops) {
		op(&h)
	}
	return &h
}

// WithResolver sets the source of the local address.
func WithResolver(r resolver.LocalAddressResolver) Option {
	return func(h *Helper) {
		h.resolver = r
	}
}

// WithOutput sets the writer the instructions are printed to.
func WithOutput(w io.Writer) Option {
	return func(h *Helper) {
		h.out = w
	}
}

// WithPort sets the port number for the connection URL.
func WithPort(port uint16) Option {
	return func(h *Helper) {
		h.port = port
	}
}

// WithLogger sets the logger for diagnostic messages.
func WithLogger(l *log.Logger) Option {
	return func(h *Helper) {
		h.log = l
	}
}

type Option func(*Helper)

// Helper resolves the local address and prints the Expo Go connection URL.
type Helper struct {
	resolver resolver.LocalAddressResolver

	out  io.Writer
	port uint16

	log *log.Logger
}

// Run resolves the local address and writes the connection guide.
// It fails without printing anything if no address could be resolved,
// so a malformed URL never reaches the user.
func (h *Helper) Run(ctx context.Context) error {
	h.log.Verbose("Resolving local address", nil)

	ip, err := h.resolver.Resolve(ctx)
	if err != nil {
		return fmt.Errorf("resolve local address: %w", err)
	}
	if ip == "" {
		return errors.New("resolve local address: empty address")
	}

	url := addr.NewURL(addr.SchemeExp, ip, h.port)
	h.log.Info("Resolved local address", log.Fields{"url": url})

	h.printGuide(url)
	return nil
}

func (h *Helper) printGuide(url *addr.URL) {
	banner := color.New(color.FgCyan, color.Bold)
	emphasis := color.New(color.FgGreen, color.Bold)

	banner.Fprintln(h.out, "📱 Expo Go URL Helper")
	banner.Fprintln(h.out, "====================")
	fmt.Fprintln(h.out)

	fmt.Fprintln(h.out, "Your correct Expo Go URL is:")
	fmt.Fprintln(h.out)
	emphasis.Fprintf(h.out, "👉 %v\n", url)
	fmt.Fprintln(h.out)

	fmt.Fprintln(h.out, "To use on your physical device:")
	fmt.Fprintln(h.out, "1. Open Expo Go app")
	fmt.Fprintln(h.out, "2. Tap 'Enter URL manually'")
	fmt.Fprintf(h.out, "3. Type: %v\n", url)
	fmt.Fprintln(h.out, "4. Tap 'Connect'")
	fmt.Fprintln(h.out)

	fmt.Fprintln(h.out, "Make sure your phone is on the same WiFi network!")
}
