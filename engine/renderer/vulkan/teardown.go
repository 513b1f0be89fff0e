package vulkan

import "github.com/spaghettifunk/pong/engine/core"

type releaseEntry struct {
	name    string
	release func()
}

// ReleaseStack records how to destroy objects in the order they were created
// and destroys them in reverse. Releasing twice is a no-op.
type ReleaseStack struct {
	entries []releaseEntry
}

func (rs *ReleaseStack) Push(name string, release func()) {
	rs.entries = append(rs.entries, releaseEntry{name: name, release: release})
}

func (rs *ReleaseStack) Len() int {
	return len(rs.entries)
}

// Release runs every recorded release function, newest first, and returns
// their names in the order they ran.
func (rs *ReleaseStack) Release() []string {
	names := make([]string, 0, len(rs.entries))
	for i := len(rs.entries) - 1; i >= 0; i-- {
		e := rs.entries[i]
		core.LogDebug("Destroying %s...", e.name)
		e.release()
		names = append(names, e.name)
	}
	rs.entries = nil
	return names
}
