package vm

import "testing"

func TestMemoryWriteReadRoundTrip(t *testing.T) {
	m := NewMemory()
	m.Write(10, 0xABCD)
	if got := m.Read(10); got != 0xABCD {
		t.Fatalf("Read(10) = %#x, want 0xABCD", got)
	}
}

func TestMemoryCountersIncrement(t *testing.T) {
	m := NewMemory()
	m.Write(0, 1)
	m.Read(0)
	m.Read(0)
	if m.WriteCount != 1 {
		t.Fatalf("WriteCount = %d, want 1", m.WriteCount)
	}
	if m.ReadCount != 2 {
		t.Fatalf("ReadCount = %d, want 2", m.ReadCount)
	}
	if m.AccessCount != 3 {
		t.Fatalf("AccessCount = %d, want 3", m.AccessCount)
	}
}

func TestMemoryOutOfRangeReadPanics(t *testing.T) {
	m := NewMemory()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-range memory read")
		}
	}()
	m.Read(MemoryWords)
}

func TestMemoryLoadWordsOverrunPanics(t *testing.T) {
	m := NewMemory()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for memory load overrun")
		}
	}()
	m.LoadWords(MemoryWords-1, []uint32{1, 2, 3})
}

func TestMemorySnapshotIsACopy(t *testing.T) {
	m := NewMemory()
	m.LoadWords(0, []uint32{1, 2, 3})
	snap := m.Snapshot(0, 3)
	snap[0] = 99
	if m.Read(0) != 1 {
		t.Fatalf("snapshot mutation leaked into live memory: got %d, want 1", m.Read(0))
	}
}
