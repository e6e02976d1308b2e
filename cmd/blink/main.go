// Command blink is the framework's minimal example root module: it
// blinks a simulated LED a fixed number of times and exits, demonstrating
// the Init/Main application pattern (spec.md §6.2) against board/sim
// rather than real hardware.
package main

import (
	"errors"

	"mcucore/board/sim"
	"mcucore/gpio"
	"mcucore/pad"
	"mcucore/runtime"
)

var (
	board *sim.Board
	led   *gpio.Bus[string, uint32]

	ledPad = pad.New("LED")
)

const blinkCount = 5

func chipInit() {
	board = sim.NewBoard()
	board.GPIO.Place(ledPad, "portA", 0)
}

func coreInit() {
	led = gpio.New[string, uint32](board.GPIO, "blink", gpio.Config{Mode: gpio.ModeOutput}, ledPad)
	led.Init()
}

func appInit() error {
	if led == nil {
		return errors.New("led bus not ready")
	}
	return nil
}

func appMain() error {
	defer led.Deinit()

	for i := 0; i < blinkCount; i++ {
		led.SetBits(1)
		runtime.Sink.Println("led on, tick", int64(board.Clocks.CurrentTick()))
		board.Clocks.AdvanceTicks(1)

		led.ClearBits(1)
		runtime.Sink.Println("led off, tick", int64(board.Clocks.CurrentTick()))
		board.Clocks.AdvanceTicks(1)
	}
	return nil
}

func main() {
	runtime.Boot(runtime.App{
		ChipInit: chipInit,
		CoreInit: coreInit,
		Init:     appInit,
		Main:     appMain,
	})
}
