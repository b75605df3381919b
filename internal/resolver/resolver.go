// Package resolver discovers the local IPv4 address of the host machine.
package resolver

import (
	"context"
	"net"
	"os/exec"
	"runtime"
	"slices"
)

// Default interface names to query on macOS, in order of preference.
var defaultInterfaces = []string{"en0", "en1"}

// LocalAddressResolver produces the IPv4 address assigned to the host
// on its local network segment.
type LocalAddressResolver interface {
	Resolve(ctx context.Context) (string, error)
}

// New selects a resolver appropriate for the current platform.
// On macOS the address is queried from named wireless interfaces,
// everywhere else it is picked from the host address list.
func New(ops ...Option) LocalAddressResolver {
	if runtime.GOOS == "darwin" {
		return NewAppleInterfaceResolver(ops...)
	}
	return NewGenericHostAddressResolver(ops...)
}

// NewAppleInterfaceResolver creates an [AppleInterfaceResolver] configured with the provided options.
func NewAppleInterfaceResolver(ops ...Option) *AppleInterfaceResolver {
	o := makeOptions(ops)
	return &AppleInterfaceResolver{
		interfaces: o.interfaces,
		run:        o.run,
	}
}

// NewGenericHostAddressResolver creates a [GenericHostAddressResolver] configured with the provided options.
func NewGenericHostAddressResolver(ops ...Option) *GenericHostAddressResolver {
	o := makeOptions(ops)
	return &GenericHostAddressResolver{
		listAddrs: o.listAddrs,
	}
}

// WithInterfaces sets the interface names to query, in order of preference.
func WithInterfaces(interfaces ...string) Option {
	return func(o *options) {
		if len(interfaces) > 0 {
			o.interfaces = interfaces
		}
	}
}

// WithCommandRunner sets the runner used to execute external address queries.
func WithCommandRunner(r CommandRunner) Option {
	return func(o *options) {
		o.run = r
	}
}

// WithAddrList sets the source of the host address list.
func WithAddrList(f func() ([]net.Addr, error)) Option {
	return func(o *options) {
		o.listAddrs = f
	}
}

type Option func(*options)

type options struct {
	interfaces []string
	run        CommandRunner
	listAddrs  func() ([]net.Addr, error)
}

func makeOptions(ops []Option) *options {
	defaults := []Option{
		WithInterfaces(defaultInterfaces...),
		WithCommandRunner(execCommandRunner{}),
		WithAddrList(net.InterfaceAddrs),
	}

	var o options
	for _, op := range slices.Concat(defaults, ops) {
		op(&o)
	}
	return &o
}

// CommandRunner executes an external command and captures its standard output.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

type execCommandRunner struct{}

func (execCommandRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}
