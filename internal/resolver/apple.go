package resolver

import (
	"context"
	"fmt"
	"strings"
)

// AppleInterfaceResolver queries named network interfaces for an address
// via the macOS ipconfig utility. Interfaces are consulted in order, and
// the first one with an address assigned wins.
type AppleInterfaceResolver struct {
	interfaces []string
	run        CommandRunner
}

func (r *AppleInterfaceResolver) Resolve(ctx context.Context) (string, error) {
	for _, name := range r.interfaces {
		out, err := r.run.Run(ctx, "ipconfig", "getifaddr", name)
		if err != nil {
			// ipconfig exits non-zero when the interface has no address,
			// so move on to the next candidate
			if ctx.Err() != nil {
				return "", ctx.Err()
			}
			continue
		}

		if ip := strings.TrimSpace(string(out)); ip != "" {
			return ip, nil
		}
	}
	return "", fmt.Errorf("no address assigned to interfaces %v", strings.Join(r.interfaces, ", "))
}
