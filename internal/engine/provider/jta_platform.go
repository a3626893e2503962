package provider

import "go.trai.ch/ormbridge/internal/core/ports"

// JtaPlatform is the bridge handed to the provider under the JTA platform
// setting. It resolves transaction collaborators through the injected manager.
type JtaPlatform struct {
	manager ports.JtaManager
}

// NewJtaPlatform wraps manager. A nil manager yields a bridge with no lookups.
func NewJtaPlatform(manager ports.JtaManager) JtaPlatform {
	return JtaPlatform{manager: manager}
}

// Manager returns the wrapped JTA manager.
func (p JtaPlatform) Manager() ports.JtaManager {
	return p.manager
}

// String describes the transaction manager the bridge resolves to.
func (p JtaPlatform) String() string {
	if p.manager == nil {
		return "jta-platform(unbound)"
	}
	return "jta-platform(" + p.manager.TransactionManager() + ")"
}
