package vm

import "testing"

func TestRegisterZeroAlwaysReadsZero(t *testing.T) {
	r := NewRegisterFile()
	r.Put(RegZero, 0xDEADBEEF)
	if got := r.Get(RegZero); got != 0 {
		t.Fatalf("Get(x0) = %#x, want 0", got)
	}
}

func TestRegisterPutGetRoundTrip(t *testing.T) {
	r := NewRegisterFile()
	r.Put(5, 123)
	if got := r.Get(5); got != 123 {
		t.Fatalf("Get(x5) = %d, want 123", got)
	}
}

func TestRegisterOutOfRangePanics(t *testing.T) {
	r := NewRegisterFile()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-range register index")
		}
	}()
	r.Get(32)
}

func TestRegisterPutOutOfRangePanics(t *testing.T) {
	r := NewRegisterFile()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-range register index")
		}
	}()
	r.Put(-1, 0)
}

func TestRegisterSnapshotDoesNotAliasLiveState(t *testing.T) {
	r := NewRegisterFile()
	r.Put(1, 7)
	snap := r.Snapshot()
	r.Put(1, 99)
	if snap[1] != 7 {
		t.Fatalf("snapshot mutated alongside live state: got %d, want 7", snap[1])
	}
	if r.Get(1) != 99 {
		t.Fatalf("live register not updated: got %d, want 99", r.Get(1))
	}
}

func TestPCSetAndGet(t *testing.T) {
	r := NewRegisterFile()
	r.SetPC(40)
	if r.PC() != 40 {
		t.Fatalf("PC() = %d, want 40", r.PC())
	}
}
