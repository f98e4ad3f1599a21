package tenant

// Header is the canonical tenant header name, read on requests and set on
// responses once a tenant is resolved.
const Header = "X-Tenant-ID"

// Source identifies where a tenant identity was derived from.
type Source string

const (
	// SourceHeader means the tenant came from the X-Tenant-ID request header.
	SourceHeader Source = "header"
	// SourceSubdomain means the tenant came from the hostname's first label.
	SourceSubdomain Source = "subdomain"
	// SourceDefault means the configured fallback tenant was applied.
	SourceDefault Source = "default"
)

// Info is the per-request tenant identity. It is derived from the request
// itself (header or hostname) rather than loaded from storage, so it
// carries only what the rest of the pipeline needs: the tenant ID, the
// subdomain when that was the source, and which source won.
type Info struct {
	TenantID  string `json:"tenant_id"`
	Subdomain string `json:"subdomain,omitempty"`
	Source    Source `json:"source"`
}
