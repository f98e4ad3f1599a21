package tenant

import (
	"net"
	"net/http"
	"regexp"
	"slices"
	"strings"
)

// Resolver derives a tenant identity from an HTTP request.
type Resolver interface {
	// Resolve returns the tenant derived from the request, nil when the
	// request carries no tenant signal, or an error when derivation fails.
	Resolve(r *http.Request) (*Info, error)
}

// ResolverFunc is an adapter to allow the use of ordinary functions as Resolvers.
type ResolverFunc func(r *http.Request) (*Info, error)

// Resolve calls the function.
func (f ResolverFunc) Resolve(r *http.Request) (*Info, error) {
	return f(r)
}

// HeaderResolver derives the tenant from an HTTP header. When the header
// was supplied multiple times the first value wins.
type HeaderResolver struct {
	// HeaderName is the name of the header to read; defaults to Header.
	HeaderName string
}

// NewHeaderResolver creates a new header resolver.
func NewHeaderResolver(headerName string) *HeaderResolver {
	if headerName == "" {
		headerName = Header
	}
	return &HeaderResolver{HeaderName: headerName}
}

// Resolve extracts the tenant from the configured header.
func (hr *HeaderResolver) Resolve(req *http.Request) (*Info, error) {
	values := req.Header.Values(hr.HeaderName)
	if len(values) == 0 || values[0] == "" {
		return nil, nil
	}
	return &Info{TenantID: values[0], Source: SourceHeader}, nil
}

// DefaultReservedSubdomains are hostname labels that never identify a
// tenant. Matching is case-sensitive and exact: "WWW" or "Www" is treated
// as a valid tenant label. That asymmetry is intentional and preserved.
var DefaultReservedSubdomains = []string{"www", "api", "admin", "app"}

var ipv4Host = regexp.MustCompile(`^(\d{1,3}\.){3}\d{1,3}$`)

// SubdomainResolver derives the tenant from the first hostname label
// (e.g. "acme" from "acme.example.com").
type SubdomainResolver struct {
	// Reserved labels are skipped; defaults to DefaultReservedSubdomains.
	Reserved []string
}

// NewSubdomainResolver creates a subdomain resolver with the default
// reserved-label set.
func NewSubdomainResolver() *SubdomainResolver {
	return &SubdomainResolver{Reserved: DefaultReservedSubdomains}
}

// Resolve extracts the tenant subdomain from the request host. Hosts
// without a subdomain — localhost, dotted-quad IPv4 addresses, and bare
// two-label domains — yield no tenant.
func (sr *SubdomainResolver) Resolve(req *http.Request) (*Info, error) {
	host := req.Host
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}

	if host == "localhost" || ipv4Host.MatchString(host) {
		return nil, nil
	}

	labels := strings.Split(host, ".")
	if len(labels) < 3 {
		return nil, nil
	}

	subdomain := labels[0]
	if subdomain == "" || slices.Contains(sr.Reserved, subdomain) {
		return nil, nil
	}

	return &Info{TenantID: subdomain, Subdomain: subdomain, Source: SourceSubdomain}, nil
}

// ChainResolver tries resolvers in order, returning the first tenant
// found. Unlike a collecting composite, it fails closed: the first
// resolver error aborts the chain immediately.
type ChainResolver struct {
	Resolvers []Resolver
}

// NewChainResolver creates a new chain resolver.
func NewChainResolver(resolvers ...Resolver) *ChainResolver {
	return &ChainResolver{Resolvers: resolvers}
}

// Resolve tries each resolver in order.
func (c *ChainResolver) Resolve(r *http.Request) (*Info, error) {
	for _, resolver := range c.Resolvers {
		info, err := resolver.Resolve(r)
		if err != nil {
			return nil, err
		}
		if info != nil {
			return info, nil
		}
	}
	return nil, nil
}

// NewResolver builds the standard resolution chain with fixed precedence:
// the X-Tenant-ID header wins over the hostname subdomain, which wins over
// the configured default. An empty defaultTenantID disables the fallback,
// in which case requests may proceed with no tenant at all.
func NewResolver(defaultTenantID string) Resolver {
	return NewChainResolver(
		NewHeaderResolver(""),
		NewSubdomainResolver(),
		ResolverFunc(func(*http.Request) (*Info, error) {
			if defaultTenantID == "" {
				return nil, nil
			}
			return &Info{TenantID: defaultTenantID, Source: SourceDefault}, nil
		}),
	)
}
