package critical

import "testing"

type fakeController struct {
	enabled bool
	history []bool
}

func (f *fakeController) AreGloballyEnabled() bool { return f.enabled }
func (f *fakeController) SetGloballyEnabled(v bool) {
	f.enabled = v
	f.history = append(f.history, v)
}

func TestEnterLeaveRestoresSampledState(t *testing.T) {
	c := &fakeController{enabled: true}
	Bind(c)

	g := Enter()
	if c.enabled {
		t.Fatal("Enter did not disable interrupts")
	}
	g.Leave()
	if !c.enabled {
		t.Fatal("Leave did not restore the sampled enabled state")
	}
}

func TestEnterLeaveRestoresDisabledState(t *testing.T) {
	c := &fakeController{enabled: false}
	Bind(c)

	g := Enter()
	g.Leave()
	if c.enabled {
		t.Fatal("Leave should have restored disabled state, got enabled")
	}
}

func TestLeaveIsIdempotent(t *testing.T) {
	c := &fakeController{enabled: true}
	Bind(c)

	g := Enter()
	g.Leave()
	c.enabled = true // simulate something else re-enabling
	g.Leave()
	if !c.enabled {
		t.Fatal("second Leave should be a no-op, not re-run SetGloballyEnabled")
	}
}

func TestDoRestoresOnPanic(t *testing.T) {
	c := &fakeController{enabled: true}
	Bind(c)

	func() {
		defer func() { _ = recover() }()
		Do(func() { panic("boom") })
	}()

	if !c.enabled {
		t.Fatal("Do must restore interrupt state even when fn panics")
	}
}

func TestEnterPanicsWithoutBind(t *testing.T) {
	ctrl = nil
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic calling Enter before Bind")
		}
	}()
	Enter()
}
