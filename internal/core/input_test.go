package core

import "testing"

func TestInputFrameActions(t *testing.T) {
	f := NewInputFrame()

	if f.Has(ActionPrimary) {
		t.Error("empty frame should have no actions")
	}

	f.Set(ActionPrimary)
	f.Set(ActionLeft)

	if !f.Has(ActionPrimary) || !f.Has(ActionLeft) {
		t.Error("set actions should be reported")
	}
	if f.Has(ActionQuit) {
		t.Error("unset action reported as triggered")
	}

	f.Clear()
	if f.Has(ActionPrimary) || f.Axis() != 0 {
		t.Error("Clear should reset actions and axis")
	}
}

func TestInputFrameAxisClamped(t *testing.T) {
	f := NewInputFrame()

	f.SetAxis(2.5)
	if f.Axis() != 1 {
		t.Errorf("axis = %f, expected clamp to 1", f.Axis())
	}
	f.SetAxis(-3)
	if f.Axis() != -1 {
		t.Errorf("axis = %f, expected clamp to -1", f.Axis())
	}
}

func TestInputFrameMerge(t *testing.T) {
	a := NewInputFrame()
	a.Set(ActionLeft)
	a.SetAxis(-0.5)

	b := NewInputFrame()
	b.Set(ActionPrimary)

	// Distinct intents union; a zero axis does not overwrite
	a.Merge(b)
	if !a.Has(ActionLeft) || !a.Has(ActionPrimary) {
		t.Error("merge should union actions")
	}
	if a.Axis() != -0.5 {
		t.Errorf("axis = %f, zero axis should not overwrite", a.Axis())
	}

	c := NewInputFrame()
	c.SetAxis(0.75)
	a.Merge(c)
	if a.Axis() != 0.75 {
		t.Errorf("axis = %f, non-zero axis should win (last write)", a.Axis())
	}
}

func TestRuntimeConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     RuntimeConfig
		wantErr bool
	}{
		{"valid", RuntimeConfig{ArenaW: 64, ArenaH: 32, TickRate: 20}, false},
		{"zero width", RuntimeConfig{ArenaW: 0, ArenaH: 32, TickRate: 20}, true},
		{"negative height", RuntimeConfig{ArenaW: 64, ArenaH: -1, TickRate: 20}, true},
		{"zero tick rate", RuntimeConfig{ArenaW: 64, ArenaH: 32, TickRate: 0}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}
