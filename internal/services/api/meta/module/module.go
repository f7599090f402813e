// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	"convertis/internal/core/version"
	modkit "convertis/internal/modkit"
	"convertis/internal/modkit/httpkit"
	str "convertis/internal/platform/strings"

	metahttp "convertis/internal/services/api/meta/http"
)

// Module implements the modkit.Module interface
type Module struct {
	built     modkit.Built
	startedAt time.Time
}

// New constructs a meta module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	m := &Module{startedAt: time.Now()}

	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	external := b.Register
	b.Register = func(r httpkit.Router) {
		metahttp.Register(r, metahttp.Deps{
			ServiceName: version.Info().Service,
			StartedAt:   m.startedAt,
			DB:          deps.DB,
			Driver:      string(deps.Dialect),
		})
		external(r)
	}
	m.built = b
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) { m.built.Mount(r) }

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.built.Name, "meta") }

// Prefix implements the modkit.Module interface
func (m *Module) Prefix() string { return str.MustPrefix(m.built.Prefix) }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
