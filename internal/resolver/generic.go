package resolver

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// GenericHostAddressResolver picks the first non-loopback IPv4 address
// from the host address list.
type GenericHostAddressResolver struct {
	listAddrs func() ([]net.Addr, error)
}

func (r *GenericHostAddressResolver) Resolve(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	addrs, err := r.listAddrs()
	if err != nil {
		return "", fmt.Errorf("list host addresses: %w", err)
	}

	for _, a := range addrs {
		ipNet, ok := a.(*net.IPNet)
		if !ok || ipNet.IP.IsLoopback() {
			continue
		}
		if ip := ipNet.IP.To4(); ip != nil {
			return ip.String(), nil
		}
	}
	return "", errors.New("no local IPv4 address assigned to the host")
}
