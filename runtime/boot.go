// Package runtime implements the startup trampoline described in
// spec.md §6.2: chip init, core init, the user's optional init, the
// user's main, then the hang the program ends on whether main returns
// or panics. It also wires the two cross-cutting singletons a root
// module can optionally customise: the panic hook (package fault) and
// the log sink (package logfmt).
package runtime

import (
	"io"

	"mcucore/fault"
	"mcucore/logfmt"
)

// App is the root module contract an application supplies to Boot,
// mirroring spec.md §6.2: ChipInit and CoreInit are framework-owned
// steps the board wires in; Init and Main are the user's own. Init and
// Log are optional — a zero App with only Main set is legal.
type App struct {
	// ChipInit brings up the chip: clock tree, pad controller, interrupt
	// controller, whatever critical.Bind needs before anything else runs.
	ChipInit func()

	// CoreInit brings up core-owned state that depends on ChipInit having
	// already run (pad/DMA ledgers are already process-global and need no
	// init call of their own; this hook exists for board-specific
	// sequencing, e.g. enabling a peripheral clock domain).
	CoreInit func()

	// Init is the user's optional one-time setup, run after core init and
	// before Main.
	Init func() error

	// Main is the user's entry point. Boot never returns from it on a
	// real target; a non-nil error panics with the error's message (the
	// spec's "a main that returns an error panics with the error name").
	Main func() error

	// Log, if set, becomes the destination mirror for the default log
	// sink (e.g. a UART opened during ChipInit). Left nil, log output
	// goes only through the builtin print the sink always uses.
	Log io.Writer

	// PanicHook, if set, replaces the default fault hook. Left nil, Boot
	// installs a hook that logs the message through Sink and, on a non-
	// hosted build, spins forever; see fault.Hook's doc comment for why
	// Raise always panics in addition to calling the hook.
	PanicHook fault.Hook
}

// Sink is the process-wide log sink Boot wires up before running any
// application code, so ChipInit and Init can log through it too.
var Sink = logfmt.NewSink()

// Boot runs the startup sequence end to end: chip init, core init, the
// optional user init, then main, then hangs. It is the only function a
// cmd/ package's main is expected to call.
func Boot(app App) {
	if app.Log != nil {
		Sink.SetWriter(app.Log)
	}

	hook := app.PanicHook
	if hook == nil {
		hook = defaultPanicHook
	}
	fault.Bind(hook)

	if app.ChipInit != nil {
		app.ChipInit()
	}
	if app.CoreInit != nil {
		app.CoreInit()
	}
	if app.Init != nil {
		if err := app.Init(); err != nil {
			fault.Raise("init: %v", err)
		}
	}

	if app.Main != nil {
		if err := app.Main(); err != nil {
			fault.Raise("main: %v", err)
		}
	}

	hang()
}

func defaultPanicHook(msg string, withTrace bool) {
	Sink.Println("panic:", msg)
	hang()
}
