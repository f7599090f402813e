package modkit

import (
	phttp "convertis/internal/platform/net/http"
)

// Module is the common surface for API modules that can mount routes and expose ports
type Module interface {
	// MountRoutes mounts HTTP routes under the provided router seam
	MountRoutes(r phttp.Router)
	// Ports returns the module's port set for cross wiring (CLI, other modules)
	Ports() any
	// Name returns the module name
	Name() string
}
