package actions

import (
	"context"
	"sort"
	"strings"

	dnderr "github.com/KirkDiggler/dnd-damage-application/internal/errors"
)

// Router manages the handlers of one domain
type Router struct {
	domain     string
	handlers   map[string]Handler
	required   []string
	middleware []Middleware
}

// NewRouter creates a new domain router
func NewRouter(domain string) *Router {
	return &Router{
		domain:   domain,
		handlers: make(map[string]Handler),
	}
}

// Domain returns the router's domain
func (r *Router) Domain() string {
	return r.domain
}

// Use adds middleware to handlers registered afterwards
func (r *Router) Use(middleware ...Middleware) *Router {
	r.middleware = append(r.middleware, middleware...)
	return r
}

// Require declares actions that must have a handler before Validate passes
func (r *Router) Require(actions ...string) *Router {
	r.required = append(r.required, actions...)
	return r
}

// Handle registers a handler for an action
func (r *Router) Handle(action string, handler Handler) *Router {
	wrapped := handler
	for i := len(r.middleware) - 1; i >= 0; i-- {
		wrapped = r.middleware[i](wrapped)
	}

	r.handlers[action] = wrapped
	return r
}

// HandleFunc registers a handler function
func (r *Router) HandleFunc(action string, fn func(*Request) (*Result, error)) *Router {
	return r.Handle(action, HandlerFunc(fn))
}

// Actions returns the registered actions sorted
func (r *Router) Actions() []string {
	out := make([]string, 0, len(r.handlers))
	for action := range r.handlers {
		out = append(out, action)
	}
	sort.Strings(out)
	return out
}

// Validate reports required actions without a handler
func (r *Router) Validate() error {
	var missing []string
	for _, action := range r.required {
		if _, ok := r.handlers[action]; !ok {
			missing = append(missing, action)
		}
	}
	if len(missing) > 0 {
		return dnderr.Newf(dnderr.CodeFailedPrecondition, "%s router is missing handlers for: %s",
			r.domain, strings.Join(missing, ", ")).
			WithMeta("domain", r.domain)
	}
	return nil
}

// Mux dispatches action ids to the router of their domain
type Mux struct {
	routers map[string]*Router
}

// NewMux validates every router and indexes them by domain
func NewMux(routers ...*Router) (*Mux, error) {
	m := &Mux{routers: make(map[string]*Router, len(routers))}
	for _, r := range routers {
		if _, exists := m.routers[r.domain]; exists {
			return nil, dnderr.AlreadyExistsf("router for domain %q registered twice", r.domain)
		}
		if err := r.Validate(); err != nil {
			return nil, err
		}
		m.routers[r.domain] = r
	}
	return m, nil
}

// Dispatch parses the action id and runs its handler
func (m *Mux) Dispatch(ctx context.Context, userID, customID, value string) (*Result, error) {
	id, err := ParseCustomID(customID)
	if err != nil {
		return nil, err
	}

	r, ok := m.routers[id.Domain]
	if !ok {
		return nil, dnderr.NotFoundf("no router for domain %q", id.Domain).
			WithMeta("custom_id", customID)
	}
	handler, ok := r.handlers[id.Action]
	if !ok {
		return nil, dnderr.NotFoundf("no handler for %s:%s", id.Domain, id.Action).
			WithMeta("custom_id", customID)
	}

	return handler.Handle(&Request{
		Context:  ctx,
		UserID:   userID,
		CustomID: id,
		Value:    value,
	})
}
