package deps

import (
	"context"
	"fmt"
	"strings"
)

// Resolver looks up the latest published version of a package.
type Resolver interface {
	LatestVersion(ctx context.Context, name string) (string, error)
}

// ResolverFunc adapts a function to [Resolver].
type ResolverFunc func(ctx context.Context, name string) (string, error)

func (f ResolverFunc) LatestVersion(ctx context.Context, name string) (string, error) {
	return f(ctx, name)
}

// Registries maps each ecosystem to its resolver.
type Registries map[Ecosystem]Resolver

// Lookup resolves the latest version of name in eco. The returned version is
// always usable: on any failure it is [UnknownVersion] and err says why.
func (r Registries) Lookup(ctx context.Context, name string, eco Ecosystem) (string, error) {
	res, ok := r[eco]
	if !ok || res == nil {
		return UnknownVersion, fmt.Errorf("no registry for ecosystem %q", eco)
	}
	v, err := res.LatestVersion(ctx, name)
	if err != nil {
		return UnknownVersion, err
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return UnknownVersion, fmt.Errorf("empty version for %s", name)
	}
	return v, nil
}
