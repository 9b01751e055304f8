package actions

import (
	"strings"

	dnderr "github.com/KirkDiggler/dnd-damage-application/internal/errors"
)

const (
	CustomIDSeparator = ":"
	// MaxCustomIDLength is the longest id a chat-card button can carry
	MaxCustomIDLength = 100
)

// CustomID addresses one action: domain:action[:target[:args...]].
// Target is a message id for the damage domain and a session id for the
// session domain. Args carry actor ids, trait kinds and damage types.
type CustomID struct {
	Domain string
	Action string
	Target string
	Args   []string
}

func NewCustomID(domain, action string) *CustomID {
	return &CustomID{Domain: domain, Action: action}
}

func (c *CustomID) WithTarget(target string) *CustomID {
	c.Target = target
	return c
}

func (c *CustomID) WithArgs(args ...string) *CustomID {
	c.Args = append(c.Args, args...)
	return c
}

// Arg returns "" past the end so handlers can treat missing args as blank
func (c *CustomID) Arg(i int) string {
	if i >= 0 && i < len(c.Args) {
		return c.Args[i]
	}
	return ""
}

func (c *CustomID) parts() []string {
	parts := []string{c.Domain, c.Action}
	if c.Target == "" && len(c.Args) == 0 {
		return parts
	}
	return append(append(parts, c.Target), c.Args...)
}

func (c *CustomID) Encode() (string, error) {
	parts := c.parts()
	for _, p := range parts {
		if strings.Contains(p, CustomIDSeparator) {
			return "", dnderr.InvalidArgumentf("custom ID part %q contains %q", p, CustomIDSeparator)
		}
	}

	encoded := strings.Join(parts, CustomIDSeparator)
	if len(encoded) > MaxCustomIDLength {
		return "", dnderr.InvalidArgumentf("custom ID is %d characters, limit is %d", len(encoded), MaxCustomIDLength)
	}
	return encoded, nil
}

// MustEncode panics on an id Encode rejects; only use it with ids built
// from known action names and generated ids.
func (c *CustomID) MustEncode() string {
	encoded, err := c.Encode()
	if err != nil {
		panic(err)
	}
	return encoded
}

func ParseCustomID(customID string) (*CustomID, error) {
	if customID == "" {
		return nil, dnderr.InvalidArgument("empty custom ID")
	}

	domain, rest, _ := strings.Cut(customID, CustomIDSeparator)
	action, rest, hasTarget := strings.Cut(rest, CustomIDSeparator)
	if domain == "" || action == "" {
		return nil, dnderr.InvalidArgumentf("invalid custom ID %q: expected at least domain:action", customID)
	}

	id := NewCustomID(domain, action)
	if hasTarget {
		fields := strings.Split(rest, CustomIDSeparator)
		id.Target = fields[0]
		if len(fields) > 1 {
			id.Args = fields[1:]
		}
	}
	return id, nil
}

// CustomIDBuilder stamps ids for one domain
type CustomIDBuilder struct {
	domain string
}

func NewCustomIDBuilder(domain string) *CustomIDBuilder {
	return &CustomIDBuilder{domain: domain}
}

// Button encodes the id a chat-card button sends back
func (b *CustomIDBuilder) Button(action, target string, args ...string) string {
	return NewCustomID(b.domain, action).WithTarget(target).WithArgs(args...).MustEncode()
}
