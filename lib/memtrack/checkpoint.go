package memtrack

import (
	"fmt"
	"strings"
)

// MemoryCheckpointSet captures the byte counts of the three phases of one
// format's benchmark run. Each checkpoint snapshots the counter and
// immediately resets it, so every field reflects only the bytes of its own
// phase regardless of the previous baseline.
type MemoryCheckpointSet struct {
	Initial          uint64
	AfterSerialize   uint64
	AfterDeserialize uint64
}

// CheckpointInitial records the bytes counted before any phase ran
func (c *MemoryCheckpointSet) CheckpointInitial(ctr ICounter) {
	c.Initial = ctr.Get()
	ctr.Reset()
}

// CheckpointSerialize records the bytes attributable to the serialize phase
func (c *MemoryCheckpointSet) CheckpointSerialize(ctr ICounter) {
	c.AfterSerialize = ctr.Get()
	ctr.Reset()
}

// CheckpointDeserialize records the bytes attributable to the deserialize phase
func (c *MemoryCheckpointSet) CheckpointDeserialize(ctr ICounter) {
	c.AfterDeserialize = ctr.Get()
	ctr.Reset()
}

// String returns a formatted string representation of the checkpoints
func (c MemoryCheckpointSet) String() string {
	var sb strings.Builder

	addField := func(name string, value uint64) {
		sb.WriteString(fmt.Sprintf("  %-22s: %d bytes\n", name, value))
	}

	sb.WriteString("MEMORY USAGE\n")
	addField("Baseline", c.Initial)
	addField("Serialize", c.AfterSerialize)
	addField("Deserialize", c.AfterDeserialize)

	return sb.String()
}
