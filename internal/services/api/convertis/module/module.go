// Package module wires convertis into the API using modkit
package module

import (
	modkit "convertis/internal/modkit"
	"convertis/internal/modkit/httpkit"
	str "convertis/internal/platform/strings"
	convertishttp "convertis/internal/services/api/convertis/http"
	convertisrepo "convertis/internal/services/api/convertis/repo"
	convertissvc "convertis/internal/services/api/convertis/service"
)

// Module implements the modkit.Module interface
type Module struct {
	built modkit.Built
	svc   convertissvc.Service
}

// New constructs a convertis module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	svc := convertissvc.New(deps.DB, convertisrepo.NewSQL(), deps.Log)
	m := &Module{svc: svc}

	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("convertis"),
		modkit.WithPrefix("/convertis"),
		modkit.WithMiddlewares(httpkit.StripSlashes()),
		modkit.WithPorts(Ports{Service: svc}),
	}, opts...)...)

	external := b.Register
	b.Register = func(r httpkit.Router) {
		convertishttp.Register(r, m.svc)
		external(r)
	}
	m.built = b
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) { m.built.Mount(r) }

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.built.Name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.built.Prefix) }

// Ports returns the module ports
func (m *Module) Ports() any { return m.built.Ports }
