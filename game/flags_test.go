package game

import "testing"

func TestFlagsHasIsConjunctive(t *testing.T) {
	var f Flags
	f.Add(1<<0, 1<<3)
	if !f.Has(1 << 0) {
		t.Fatal("single set bit not reported")
	}
	if f.Has(1<<0, 1<<1) {
		t.Fatal("Has must require all given bits, not any")
	}
	if !f.HasAny(1<<1, 1<<3) {
		t.Fatal("HasAny missed a set bit")
	}
}

func TestFlagsIdempotentAddRemove(t *testing.T) {
	var f Flags
	f.Add(1 << 5)
	f.Add(1 << 5)
	if f != 1<<5 {
		t.Fatalf("double add changed value: %#x", f)
	}
	f.Remove(1 << 6)
	if f != 1<<5 {
		t.Fatalf("removing unset bit changed value: %#x", f)
	}
	f.Remove(1 << 5)
	f.Remove(1 << 5)
	if f != 0 {
		t.Fatalf("double remove changed value: %#x", f)
	}
	f.Set(0xF0)
	f.Clear()
	if f != 0 {
		t.Fatalf("clear left bits: %#x", f)
	}
}
