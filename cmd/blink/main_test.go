package main

import "testing"

func TestBlinkRunsWithoutPanicking(t *testing.T) {
	main()
	if board.GPIO.OutputPort("portA") != 0 {
		t.Fatal("LED must end in the off state after the fixed blink count")
	}
}
