package z80

import "testing"

func TestBusAddDeviceOverlap(t *testing.T) {
	bus := NewBus()
	if err := bus.AddDevice(NewRAM(0x0000, 0x100, NewClock())); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if err := bus.AddDevice(NewRAM(0x0000, 0x100, NewClock())); err == nil {
		t.Fatalf("expected AddressConflict for exact duplicate window")
	}
	if err := bus.AddDevice(NewRAM(0x0100, 0x100, NewClock())); err != nil {
		t.Fatalf("adjacent window should be accepted: %v", err)
	}
	if err := bus.AddDevice(NewRAM(0x0150, 0x100, NewClock())); err == nil {
		t.Fatalf("expected AddressConflict for overlapping window")
	}
	if err := bus.AddDevice(NewRAM(0x0300, 0x100, NewClock())); err != nil {
		t.Fatalf("non-overlapping window should be accepted: %v", err)
	}
}

func TestBusAddDeviceRejectsWraparound(t *testing.T) {
	bus := NewBus()
	if err := bus.AddDevice(NewRAM(0xFF00, 0x200, NewClock())); err == nil {
		t.Fatalf("expected a window wrapping past 0x10000 to be rejected")
	}
}

func TestBusRoutesToCoveringDevice(t *testing.T) {
	clock := NewClock()
	bus := NewBus()
	if err := bus.AddDevice(NewRAM(0x0000, 0x100, clock)); err != nil {
		t.Fatal(err)
	}
	if err := bus.AddDevice(NewRAM(0x0100, 0x100, clock)); err != nil {
		t.Fatal(err)
	}

	bus.Write(0x0000, 0x11)
	bus.Write(0x0100, 0x22)

	if got := bus.Read(0x0000); got != 0x11 {
		t.Fatalf("read 0x0000 = 0x%02X, want 0x11", got)
	}
	if got := bus.Read(0x00FF); got != 0x00 {
		t.Fatalf("read 0x00FF = 0x%02X, want 0x00", got)
	}
	if got := bus.Read(0x0100); got != 0x22 {
		t.Fatalf("read 0x0100 = 0x%02X, want 0x22", got)
	}
	if got := bus.Read(0x0101); got != 0x00 {
		t.Fatalf("read 0x0101 = 0x%02X, want 0x00", got)
	}
	if got := bus.Read(0x1000); got != 0xFF {
		t.Fatalf("unmapped read = 0x%02X, want 0xFF", got)
	}
}

func TestBusReadWordLittleEndian(t *testing.T) {
	bus := NewBus()
	bus.AddDevice(NewRAM(0x0000, 0x100, NewClock()))
	bus.WriteVec(0x0010, []byte{0x34, 0x12})

	if got := bus.ReadWord(0x0010); got != 0x1234 {
		t.Fatalf("ReadWord = 0x%04X, want 0x1234", got)
	}
}

func TestBusReadWordUnmapped(t *testing.T) {
	bus := NewBus()
	if got := bus.ReadWord(0x0000); got != 0xFFFF {
		t.Fatalf("unmapped ReadWord = 0x%04X, want 0xFFFF", got)
	}
}

func TestBusWriteVecIsPeekVisible(t *testing.T) {
	bus := NewBus()
	bus.AddDevice(NewRAM(0x0000, 0x100, NewClock()))

	data := []byte{0xAA, 0xBB, 0xCC}
	bus.WriteVec(0x0020, data)

	for i, want := range data {
		if got := bus.Peek(0x0020 + uint16(i)); got != want {
			t.Fatalf("peek 0x%04X = 0x%02X, want 0x%02X", 0x0020+i, got, want)
		}
	}
}

func TestBusWriteToUnmappedIsIgnored(t *testing.T) {
	bus := NewBus()
	// no panic, no effect
	bus.Write(0x4000, 0x42)
	if got := bus.Read(0x4000); got != 0xFF {
		t.Fatalf("unmapped read after write = 0x%02X, want 0xFF", got)
	}
}
