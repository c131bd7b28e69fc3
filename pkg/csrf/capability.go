package csrf

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Capability tags a route with its CSRF behavior. Tags compose as a bitmask:
// Exempt|RequiresToken skips enforcement but still issues a token.
type Capability uint8

const (
	// Protected enforces validation on unsafe methods. Routes without a
	// registered capability behave as Protected.
	Protected Capability = 1 << iota

	// Exempt skips validation for the route regardless of method.
	Exempt

	// RequiresToken forces lazy token issuance even when the handler never
	// renders a token itself.
	RequiresToken
)

// Has reports whether the capability includes the given tag.
func (c Capability) Has(tag Capability) bool { return c&tag != 0 }

// String returns a human-readable tag list.
func (c Capability) String() string {
	switch {
	case c.Has(Exempt) && c.Has(RequiresToken):
		return "exempt+requires_token"
	case c.Has(Exempt):
		return "exempt"
	case c.Has(RequiresToken) && c.Has(Protected):
		return "protected+requires_token"
	case c.Has(RequiresToken):
		return "requires_token"
	default:
		return "protected"
	}
}

// Registry maps route identities to capabilities. Routes are keyed by chi
// route pattern when the middleware runs inside a chi router, with a verbatim
// URL path fallback for plain http.ServeMux setups.
//
// Register all routes before serving: Register is not safe for concurrent use
// and Lookup never mutates, matching the load-once configuration contract.
type Registry struct {
	routes map[string]Capability
}

// NewRegistry creates an empty capability registry.
func NewRegistry() *Registry {
	return &Registry{routes: make(map[string]Capability)}
}

// Register attaches a capability to a route pattern. Tags accumulate across
// calls for the same pattern; combining Protected and Exempt is a
// configuration conflict and fails immediately so misconfigured routes are
// caught at startup, not at request time.
func (reg *Registry) Register(pattern string, cap Capability) error {
	merged := reg.routes[pattern] | cap
	if merged.Has(Protected) && merged.Has(Exempt) {
		return fmt.Errorf("%w: route %q tagged both protect and exempt", ErrCapabilityConflict, pattern)
	}
	reg.routes[pattern] = merged
	return nil
}

// MustRegister is Register with a panic on conflict.
func (reg *Registry) MustRegister(pattern string, cap Capability) {
	if err := reg.Register(pattern, cap); err != nil {
		panic(err)
	}
}

// Lookup resolves the capability for a request, defaulting to Protected.
func (reg *Registry) Lookup(r *http.Request) Capability {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			if c, ok := reg.routes[pattern]; ok {
				return c
			}
		}
	}
	if c, ok := reg.routes[r.URL.Path]; ok {
		return c
	}
	return Protected
}
