package modkit

import (
	"net/http"

	"convertis/internal/modkit/httpkit"
)

// Built is a plain struct with the fields modules care about
type Built struct {
	Name     string
	Prefix   string
	Mw       []func(http.Handler) http.Handler
	Ports    any
	Register func(httpkit.Router)
}

// Build applies Option funcs and returns a plain struct
func Build(opts ...Option) Built {
	var c buildCfg
	for _, o := range opts {
		o(&c)
	}
	if c.register == nil {
		c.register = func(httpkit.Router) {}
	}
	return Built{
		Name:     c.name,
		Prefix:   c.prefix,
		Mw:       append([]func(http.Handler) http.Handler(nil), c.mw...),
		Ports:    c.ports,
		Register: c.register,
	}
}

// Mount mounts b under its prefix (or directly on r when empty) and registers routes
func (b Built) Mount(r httpkit.Router) {
	if b.Prefix == "" {
		if len(b.Mw) == 0 {
			b.Register(r)
			return
		}
		r.Group(func(g httpkit.Router) {
			g.Use(b.Mw...)
			b.Register(g)
		})
		return
	}
	httpkit.MountUnder(r, b.Prefix, b.Mw, b.Register)
}
