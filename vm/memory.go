package vm

import "fmt"

// Memory is a fixed-length array of 32-bit words. Addressing is word-indexed
// throughout this emulator: the value `a` held in a register names word
// `a`, not byte `a`. Only the program counter is byte-scaled (it advances by
// 4 and is divided by 4 at fetch time); see DESIGN.md for the rationale.
type Memory struct {
	words [MemoryWords]uint32

	AccessCount uint64
	ReadCount   uint64
	WriteCount  uint64
}

// NewMemory returns a zeroed memory array.
func NewMemory() *Memory {
	return &Memory{}
}

// Read returns the word at index i. Out-of-range i is fatal.
func (m *Memory) Read(i uint32) uint32 {
	if i >= MemoryWords {
		panic(fmt.Sprintf("vm: memory index %d out of range [0, %d)", i, MemoryWords))
	}
	m.AccessCount++
	m.ReadCount++
	return m.words[i]
}

// Write stores value at word index i. Out-of-range i is fatal.
func (m *Memory) Write(i uint32, value uint32) {
	if i >= MemoryWords {
		panic(fmt.Sprintf("vm: memory index %d out of range [0, %d)", i, MemoryWords))
	}
	m.AccessCount++
	m.WriteCount++
	m.words[i] = value
}

// LoadWords copies src into memory starting at word index origin. Out-of-
// range placement is fatal.
func (m *Memory) LoadWords(origin uint32, src []uint32) {
	if origin+uint32(len(src)) > MemoryWords {
		panic(fmt.Sprintf("vm: load of %d words at %d overruns %d-word memory", len(src), origin, MemoryWords))
	}
	for i, w := range src {
		m.words[origin+uint32(i)] = w
	}
}

// Snapshot returns a read-only copy of the word range [start, end).
func (m *Memory) Snapshot(start, end uint32) []uint32 {
	if end < start || end > MemoryWords {
		panic(fmt.Sprintf("vm: snapshot range [%d, %d) out of bounds", start, end))
	}
	out := make([]uint32, end-start)
	copy(out, m.words[start:end])
	return out
}
