package vulkan

import (
	"github.com/aleokdev/vulkantest/engine/core"
)

// cleanupStack records destructors as their objects come into
// existence and runs them last-in first-out. A stage that never
// succeeded never pushed, so unwinding after a mid-flight failure
// only touches what actually exists.
type cleanupStack struct {
	entries []cleanupEntry
}

type cleanupEntry struct {
	name    string
	destroy func()
}

func (c *cleanupStack) push(name string, destroy func()) {
	c.entries = append(c.entries, cleanupEntry{name: name, destroy: destroy})
}

// unwind destroys everything on the stack in reverse push order and
// leaves the stack empty, so calling it again is a no-op.
func (c *cleanupStack) unwind() {
	for i := len(c.entries) - 1; i >= 0; i-- {
		core.LogDebug("destroying %s", c.entries[i].name)
		c.entries[i].destroy()
	}
	c.entries = nil
}
