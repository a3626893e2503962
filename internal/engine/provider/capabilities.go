package provider

import (
	"reflect"
	"sync"
	"sync/atomic"

	"go.trai.ch/ormbridge/internal/core/ports"
)

var _ ports.CapabilityInjector = (*Capabilities)(nil)

// Capabilities holds the platform and JTA handles injected by the host.
// Each injection publishes a new immutable snapshot, so readers always see a
// consistent pair of handles.
type Capabilities struct {
	mu      sync.Mutex
	current atomic.Pointer[CapabilitySnapshot]
}

// CapabilitySnapshot is a consistent view of the injected handles.
type CapabilitySnapshot struct {
	Platform   ports.Platform
	JtaManager ports.JtaManager
}

// NewCapabilities creates an empty holder.
func NewCapabilities() *Capabilities {
	c := &Capabilities{}
	c.current.Store(&CapabilitySnapshot{})
	return c
}

// Snapshot returns the handles as currently published.
func (c *Capabilities) Snapshot() CapabilitySnapshot {
	return *c.current.Load()
}

// InjectJtaManager replaces the JTA handle unless it is the one already installed.
func (c *Capabilities) InjectJtaManager(jtaManager ports.JtaManager) {
	c.mu.Lock()
	defer c.mu.Unlock()

	cur := c.current.Load()
	if sameHandle(cur.JtaManager, jtaManager) {
		return
	}
	next := *cur
	next.JtaManager = jtaManager
	c.current.Store(&next)
}

// InjectPlatform replaces the platform handle unless it is the one already installed.
func (c *Capabilities) InjectPlatform(platform ports.Platform) {
	c.mu.Lock()
	defer c.mu.Unlock()

	cur := c.current.Load()
	if sameHandle(cur.Platform, platform) {
		return
	}
	next := *cur
	next.Platform = platform
	c.current.Store(&next)
}

// sameHandle compares two handles by identity. Handles whose dynamic type is
// not comparable are never considered identical.
func sameHandle(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}
