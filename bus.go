// bus.go - memory-mapped bus routing 16-bit addresses to attached devices.

package z80

import "fmt"

// Device is the contract a memory-mapped component must satisfy to attach to
// a Bus. Read/Write may cost clock tics; Peek/Poke never do. WriteVec is the
// bulk loader path and goes through Poke, so it never costs tics either.
type Device interface {
	BaseAddress() uint16
	Size() uint16
	Read(addr uint16) byte
	Write(addr uint16, value byte)
	Peek(addr uint16) byte
	Poke(addr uint16, value byte)
	WriteVec(addr uint16, data []byte)
}

// AddressConflict reports that a device window overlaps one already
// registered on the bus.
type AddressConflict struct {
	Base uint16
	Size uint16
}

func (e *AddressConflict) Error() string {
	return fmt.Sprintf("z80: device window [0x%04X, 0x%04X) conflicts with an existing device", e.Base, int(e.Base)+int(e.Size))
}

// Bus holds an ordered, linear collection of devices, each occupying a
// disjoint half-open address window [base, base+size). It is constructed
// once; devices are added during setup and the set is not mutated during
// execution, though device contents are.
type Bus struct {
	devices []Device
}

// NewBus returns an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// AddDevice registers a device at its own base address and size. It fails
// with AddressConflict if the window overlaps any already-registered device,
// or if the window wraps past the 64 KiB address space.
func (b *Bus) AddDevice(d Device) error {
	base, size := d.BaseAddress(), d.Size()
	if int(base)+int(size) > 0x10000 {
		return &AddressConflict{Base: base, Size: size}
	}
	for _, existing := range b.devices {
		eb, es := existing.BaseAddress(), existing.Size()
		if !(int(base)+int(size) <= int(eb) || int(eb)+int(es) <= int(base)) {
			return &AddressConflict{Base: base, Size: size}
		}
	}
	b.devices = append(b.devices, d)
	return nil
}

// find returns the device covering addr, or nil if the address is unmapped.
// Lookup is linear: the device count is small and the address space is only
// 64 KiB, so no index structure is warranted.
func (b *Bus) find(addr uint16) Device {
	for _, d := range b.devices {
		base, size := d.BaseAddress(), d.Size()
		if addr >= base && int(addr) < int(base)+int(size) {
			return d
		}
	}
	return nil
}

// Read dispatches to the covering device, costing whatever tics that device
// debits. Unmapped addresses read back 0xFF.
func (b *Bus) Read(addr uint16) byte {
	if d := b.find(addr); d != nil {
		return d.Read(addr)
	}
	return 0xFF
}

// Write dispatches to the covering device. Writes to unmapped addresses are
// silently ignored.
func (b *Bus) Write(addr uint16, value byte) {
	if d := b.find(addr); d != nil {
		d.Write(addr, value)
	}
}

// Peek reads without any clock cost. Unmapped addresses read back 0xFF.
func (b *Bus) Peek(addr uint16) byte {
	if d := b.find(addr); d != nil {
		return d.Peek(addr)
	}
	return 0xFF
}

// Poke writes without any clock cost. Writes to unmapped addresses are
// silently ignored.
func (b *Bus) Poke(addr uint16, value byte) {
	if d := b.find(addr); d != nil {
		d.Poke(addr, value)
	}
}

// WriteVec is the bulk loader path: it goes through the covering device's
// Poke, so it never costs tics. Unmapped addresses are silently ignored.
func (b *Bus) WriteVec(addr uint16, data []byte) {
	if d := b.find(addr); d != nil {
		d.WriteVec(addr, data)
		return
	}
}

// ReadWord reads a little-endian 16-bit value: the low byte at addr, the
// high byte at addr+1. Each byte goes through Read, so the covering
// device(s) are debited for both accesses. Unmapped addresses read back
// 0xFFFF.
func (b *Bus) ReadWord(addr uint16) uint16 {
	low := b.Read(addr)
	high := b.Read(addr + 1)
	return uint16(high)<<8 | uint16(low)
}

// PeekWord is the side-effect-free counterpart of ReadWord: little-endian,
// no clock cost, used by the CPU's own decode path where the instruction's
// documented tic count is the sole source of clock truth.
func (b *Bus) PeekWord(addr uint16) uint16 {
	low := b.Peek(addr)
	high := b.Peek(addr + 1)
	return uint16(high)<<8 | uint16(low)
}
