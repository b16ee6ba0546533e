package z80

import "testing"

func TestRAMPeekPokeNoClockCost(t *testing.T) {
	clock := NewClock()
	ram := NewRAM(0x0000, 0x100, clock)

	ram.Poke(0x0000, 0x11)
	if clock.Read() != 0 {
		t.Fatalf("poke debited clock: %d", clock.Read())
	}
	if got := ram.Peek(0x0000); got != 0x11 {
		t.Fatalf("peek = 0x%02X, want 0x11", got)
	}
}

func TestRAMReadWriteDebit3TicsEach(t *testing.T) {
	clock := NewClock()
	ram := NewRAM(0x0000, 0x100, clock)

	ram.Write(0x0001, 0xDD)
	ram.Read(0x0000)
	ram.Read(0x0001)

	if clock.Read() != 9 {
		t.Fatalf("clock = %d, want 9", clock.Read())
	}
	if got := ram.Peek(0x0001); got != 0xDD {
		t.Fatalf("peek 0x0001 = 0x%02X, want 0xDD", got)
	}
}

func TestRAMInitialStateIsZero(t *testing.T) {
	ram := NewRAM(0x0000, 0x10, NewClock())
	for addr := uint16(0); addr < 0x10; addr++ {
		if got := ram.Peek(addr); got != 0 {
			t.Fatalf("peek 0x%04X = 0x%02X, want 0", addr, got)
		}
	}
}

func TestRAMWriteVecNoClockCostAndVisibleViaPeek(t *testing.T) {
	clock := NewClock()
	ram := NewRAM(0x0000, 0x100, clock)

	ram.WriteVec(0x0000, []byte{0x01, 0x02, 0x03, 0xFF})
	if clock.Read() != 0 {
		t.Fatalf("write_vec debited clock: %d", clock.Read())
	}
	want := []byte{0x01, 0x02, 0x03, 0xFF}
	for i, w := range want {
		if got := ram.Peek(uint16(i)); got != w {
			t.Fatalf("peek %d = 0x%02X, want 0x%02X", i, got, w)
		}
	}
	if got := ram.Peek(0x0004); got != 0 {
		t.Fatalf("peek 4 = 0x%02X, want 0", got)
	}
}
