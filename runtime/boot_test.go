package runtime

import (
	"bytes"
	"errors"
	"testing"
)

func TestBootRunsStagesInOrder(t *testing.T) {
	var order []string
	app := App{
		ChipInit: func() { order = append(order, "chip") },
		CoreInit: func() { order = append(order, "core") },
		Init:     func() error { order = append(order, "init"); return nil },
		Main:     func() error { order = append(order, "main"); return nil },
	}
	Boot(app)

	want := []string{"chip", "core", "init", "main"}
	if len(order) != len(want) {
		t.Fatalf("stage order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("stage order = %v, want %v", order, want)
		}
	}
}

func TestBootMainErrorRaisesFault(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected Boot to panic when Main returns an error")
		}
	}()
	Boot(App{Main: func() error { return errors.New("boom") }})
}

func TestBootLogMirrorsToWriter(t *testing.T) {
	var buf bytes.Buffer
	Boot(App{
		Log:  &buf,
		Main: func() error { Sink.Println("hello"); return nil },
	})
	if got := buf.String(); got != "hello\n" {
		t.Fatalf("mirrored log = %q, want %q", got, "hello\n")
	}
}

func TestBootWithoutOptionalHooksStillRunsMain(t *testing.T) {
	ran := false
	Boot(App{Main: func() error { ran = true; return nil }})
	if !ran {
		t.Fatal("Main must run even with every other hook left nil")
	}
}
