// internal/telemetry/types.go
package telemetry

// Sample is one decoded egram frame.
type Sample struct {
	VRaw uint16 // ventricular channel
	ARaw uint16 // atrial channel
}

// Batch is the set of samples handed to the consumer by one poll.
// VRaw[i] and ARaw[i] belong to the same frame; order is arrival order.
type Batch struct {
	VRaw []uint16
	ARaw []uint16
}

// Len is the number of samples in the batch.
func (b Batch) Len() int { return len(b.VRaw) }

// Samples returns the batch as frame pairs.
func (b Batch) Samples() []Sample {
	out := make([]Sample, len(b.VRaw))
	for i := range b.VRaw {
		out[i] = Sample{VRaw: b.VRaw[i], ARaw: b.ARaw[i]}
	}
	return out
}

// Stats are cumulative reader counters.
type Stats struct {
	Reads     uint64 // read calls, including timeouts
	Bytes     uint64 // bytes received
	Samples   uint64 // frames decoded
	Discarded uint64 // noise bytes dropped while resynchronizing
}
