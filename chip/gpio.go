package chip

import "mcucore/pad"

// SlewRate bounds how fast an output pin's driver may transition.
type SlewRate int

const (
	SlewSlow SlewRate = iota
	SlewFast
)

// DriveMode selects the output stage topology.
type DriveMode int

const (
	DrivePushPull DriveMode = iota
	DriveOpenDrain
)

// TerminationMode selects the pad's passive termination.
type TerminationMode int

const (
	TerminationFloat TerminationMode = iota
	TerminationPullUp
	TerminationPullDown
)

// PortDataType is the set of unsigned integer widths a GPIO port register
// may be backed by.
type PortDataType interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// GPIO is the low-level pad/port surface a chip package exposes. P is the
// chip's physical-port identifier type (often a small enum); W is the
// register width of a port word. The core's gpio.Bus composes logical
// multi-pin buses on top of this.
type GPIO[P comparable, W PortDataType] interface {
	EnsurePortsEnabled(ports []P)

	ConfigureAsInput(p pad.ID)
	ConfigureAsOutput(p pad.ID)
	ConfigureAsUnused(p pad.ID)
	ConfigureSlewRate(p pad.ID, s SlewRate)
	ConfigureDriveMode(p pad.ID, d DriveMode)
	ConfigureTermination(p pad.ID, t TerminationMode)

	ReadInput(p pad.ID) bool
	WriteOutput(p pad.ID, level bool)
	IsOutput(p pad.ID) bool

	ReadInputPort(port P) W
	ReadOutputPort(port P) W
	ModifyOutputPort(port P, clearMask, setMask W)

	GetIOPorts(pads []pad.ID) []P
	GetIOPort(p pad.ID) P
	GetOffset(p pad.ID) uint8
}
