package chip8

// TraceEntry describes one executed instruction.
type TraceEntry struct {
	// Address is the memory address the instruction was fetched from.
	Address uint16

	// Opcode is the raw 16 bit instruction word.
	Opcode uint16

	// Text is the disassembled instruction.
	Text string
}

// traceBuffer is a ring buffer of the most recently executed instructions.
// Waiting instructions are recorded once, when they retire.
type traceBuffer struct {
	ring []TraceEntry
	next int
	size int
}

func newTraceBuffer(size int) *traceBuffer {
	if size < 0 {
		size = 0
	}
	return &traceBuffer{
		ring: make([]TraceEntry, 0, size),
		size: size,
	}
}

// add records an executed instruction, evicting the oldest entry once the
// buffer is full. A zero sized buffer records nothing.
func (t *traceBuffer) add(entry TraceEntry) {
	if t.size == 0 {
		return
	}
	if len(t.ring) < t.size {
		t.ring = append(t.ring, entry)
		t.next = len(t.ring) % t.size
		return
	}
	t.ring[t.next] = entry
	t.next = (t.next + 1) % t.size
}

// entries returns the recorded instructions, newest first.
func (t *traceBuffer) entries() []TraceEntry {
	count := len(t.ring)
	result := make([]TraceEntry, 0, count)
	for i := 1; i <= count; i++ {
		result = append(result, t.ring[(t.next-i+count)%count])
	}
	return result
}

// reset discards all recorded instructions.
func (t *traceBuffer) reset() {
	t.ring = t.ring[:0]
	t.next = 0
}
