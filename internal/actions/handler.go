package actions

import (
	"context"

	"github.com/KirkDiggler/dnd-damage-application/internal/services/application"
)

// Request is one triggered action
type Request struct {
	Context  context.Context
	UserID   string
	CustomID *CustomID

	// Value carries free input, such as an edited damage value
	Value string
}

// Handler processes an action
type Handler interface {
	Handle(req *Request) (*Result, error)
}

// HandlerFunc allows functions to implement the Handler interface
type HandlerFunc func(req *Request) (*Result, error)

// Handle calls the function
func (f HandlerFunc) Handle(req *Request) (*Result, error) {
	return f(req)
}

// Middleware wraps a handler
type Middleware func(Handler) Handler

// Result is what an action produced. Only the fields relevant to the
// action are set.
type Result struct {
	Batch       *application.BatchResult           `json:"batch,omitempty"`
	Application *application.Application           `json:"application,omitempty"`
	Save        *application.SaveResult            `json:"save,omitempty"`
	Saves       map[string]*application.SaveResult `json:"saves,omitempty"`
	SaveState   string                             `json:"save_state,omitempty"`
	Enabled     *bool                              `json:"enabled,omitempty"`
	View        *application.View                  `json:"view,omitempty"`
	SessionID   string                             `json:"session_id,omitempty"`
	Selected    []string                           `json:"selected,omitempty"`

	// Message is shown to the user when the action failed
	Message string `json:"message,omitempty"`
}
