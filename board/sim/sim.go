package sim

import "mcucore/critical"

// Controller is a fake critical.Controller: a single in-memory flag, with
// no real interrupts to mask.
type Controller struct{ enabled bool }

// NewController returns a controller starting with interrupts enabled.
func NewController() *Controller { return &Controller{enabled: true} }

func (c *Controller) AreGloballyEnabled() bool  { return c.enabled }
func (c *Controller) SetGloballyEnabled(v bool) { c.enabled = v }

// Board bundles the fake peripherals a simulated application is built
// against: GPIO, a clock tree, and a single UART. It stands in for the
// chip package a real board init would import.
type Board struct {
	GPIO   *GPIO
	Clocks *Clocks
	UART   *UART

	ctrl *Controller
}

// NewBoard constructs a fully wired fake board and binds its controller as
// the process-wide critical section backend, ready for runtime.Boot.
func NewBoard() *Board {
	b := &Board{
		GPIO:   NewGPIO(),
		Clocks: NewClocks(),
		UART:   NewUART(64),
		ctrl:   NewController(),
	}
	critical.Bind(b.ctrl)
	return b
}
