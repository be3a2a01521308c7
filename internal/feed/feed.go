// Package feed produces weather snapshots for the render loop, either from
// wttr.in or from fixed demo data.
package feed

import (
	"context"
	"fmt"
	"net"
	"net/url"

	"github.com/lox/nimbus/internal/models"
)

// Source fetches one weather snapshot. Fetch never fails: problems are
// reported as an error snapshot.
type Source interface {
	Fetch(ctx context.Context) models.Snapshot
}

// Resolvable reports whether the host of rawURL can be resolved. It is a
// cheap check for whether the network is there at all.
func Resolvable(ctx context.Context, rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("parse url: %w", err)
	}
	host := u.Hostname()
	if host == "" {
		return fmt.Errorf("no host in %q", rawURL)
	}
	if _, err := net.DefaultResolver.LookupHost(ctx, host); err != nil {
		return fmt.Errorf("resolve %s: %w", host, err)
	}
	return nil
}
