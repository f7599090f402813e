package module

import (
	"convertis/internal/modkit"
	"convertis/internal/services/api/convertis/domain"
)

// Ports is what the convertis module exposes to other wiring (the cli reuses the service)
type Ports struct {
	Service domain.ServicePort
}

// PortsOf extracts convertis ports from a module, panicking on a foreign module
func PortsOf(m modkit.Module) Ports {
	p, ok := m.Ports().(Ports)
	if !ok {
		panic("convertis: module does not expose convertis ports")
	}
	return p
}
