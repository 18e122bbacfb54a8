package applescript

import (
	"fmt"

	"github.com/aretw0/introspection"
)

// RepositoryState exposes internal state for observability.
type RepositoryState struct {
	Executor  string `json:"executor"`
	Installed *bool  `json:"installed,omitempty"`
}

// State implements introspection.Introspectable.
func (r *Repository) State() any {
	state := RepositoryState{Executor: fmt.Sprintf("%T", r.exec)}
	if probe, ok := r.exec.(interface{ IsInstalled() bool }); ok {
		installed := probe.IsInstalled()
		state.Installed = &installed
	}
	return state
}

// ComponentType implements introspection.Component.
func (r *Repository) ComponentType() string {
	return "applescript"
}

var _ introspection.Introspectable = (*Repository)(nil)
var _ introspection.Component = (*Repository)(nil)
