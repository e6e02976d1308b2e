// Package sim is an in-memory fake chip — GPIO, clock tree and UART
// backed by plain Go memory instead of real registers — used to exercise
// the core's components without hardware and to back the example
// application in cmd/blink.
package sim

import "mcucore/chip"
import "mcucore/pad"

// GPIO is a fake chip.GPIO[string, uint32] backed by one in-memory
// register pair (input, output) per named port.
type GPIO struct {
	port   map[pad.ID]string
	offset map[pad.ID]uint8

	input  map[string]uint32
	output map[string]uint32
	isOut  map[pad.ID]bool
	term   map[pad.ID]chip.TerminationMode
}

// NewGPIO builds an empty fake GPIO surface; call Place for every pad the
// test or application will use before wiring it into a Bus or Adapter.
func NewGPIO() *GPIO {
	return &GPIO{
		port:   map[pad.ID]string{},
		offset: map[pad.ID]uint8{},
		input:  map[string]uint32{},
		output: map[string]uint32{},
		isOut:  map[pad.ID]bool{},
		term:   map[pad.ID]chip.TerminationMode{},
	}
}

// Place assigns p to a physical port and bit offset.
func (g *GPIO) Place(p pad.ID, port string, offset uint8) {
	g.port[p] = port
	g.offset[p] = offset
}

// DriveInput sets the simulated external input level on a port's register
// — the fake equivalent of wiggling a pin from outside the chip.
func (g *GPIO) DriveInput(port string, value uint32) { g.input[port] = value }

// OutputPort reads back the current simulated output register of a port,
// for test assertions.
func (g *GPIO) OutputPort(port string) uint32 { return g.output[port] }

func (g *GPIO) EnsurePortsEnabled(ports []string) {}

func (g *GPIO) ConfigureAsInput(p pad.ID)  { g.isOut[p] = false }
func (g *GPIO) ConfigureAsOutput(p pad.ID) { g.isOut[p] = true }
func (g *GPIO) ConfigureAsUnused(p pad.ID) { delete(g.isOut, p) }

func (g *GPIO) ConfigureSlewRate(p pad.ID, s chip.SlewRate)   {}
func (g *GPIO) ConfigureDriveMode(p pad.ID, d chip.DriveMode) {}
func (g *GPIO) ConfigureTermination(p pad.ID, t chip.TerminationMode) {
	g.term[p] = t
}

func (g *GPIO) ReadInput(p pad.ID) bool {
	return (g.input[g.port[p]]>>g.offset[p])&1 != 0
}
func (g *GPIO) WriteOutput(p pad.ID, level bool) {
	bit := uint32(1) << g.offset[p]
	if level {
		g.output[g.port[p]] |= bit
	} else {
		g.output[g.port[p]] &^= bit
	}
}
func (g *GPIO) IsOutput(p pad.ID) bool { return g.isOut[p] }

func (g *GPIO) ReadInputPort(port string) uint32  { return g.input[port] }
func (g *GPIO) ReadOutputPort(port string) uint32 { return g.output[port] }
func (g *GPIO) ModifyOutputPort(port string, clearMask, setMask uint32) {
	g.output[port] = (g.output[port] &^ clearMask) | setMask
}

func (g *GPIO) GetIOPorts(pads []pad.ID) []string {
	seen := map[string]bool{}
	var ports []string
	for _, p := range pads {
		port := g.port[p]
		if !seen[port] {
			seen[port] = true
			ports = append(ports, port)
		}
	}
	return ports
}
func (g *GPIO) GetIOPort(p pad.ID) string { return g.port[p] }
func (g *GPIO) GetOffset(p pad.ID) uint8  { return g.offset[p] }
