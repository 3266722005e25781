package fs

import (
	"github.com/aretw0/introspection"
)

// RepositoryState exposes internal state for observability.
type RepositoryState struct {
	Path          string `json:"path"`
	GitDir        string `json:"git_dir"`
	DefaultBranch string `json:"default_branch"`
}

// State implements introspection.Introspectable.
func (r *Repository) State() any {
	return RepositoryState{
		Path:          r.layout.Root(),
		GitDir:        r.layout.GitDir(),
		DefaultBranch: r.config.DefaultBranch,
	}
}

// ComponentType implements introspection.Component.
func (r *Repository) ComponentType() string {
	return "repository"
}

var _ introspection.Introspectable = (*Repository)(nil)
var _ introspection.Component = (*Repository)(nil)
