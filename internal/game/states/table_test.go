package states

import (
	"testing"
	"time"

	"github.com/Faultbox/dicebox/internal/dice"
)

type fakeSound struct {
	rattles []float64
	settles int
}

func (f *fakeSound) PlayRattle(strength float64) { f.rattles = append(f.rattles, strength) }
func (f *fakeSound) PlaySettle()                 { f.settles++ }

func newTable(t *testing.T, snd Sound) *TableState {
	t.Helper()
	s := NewTableState(TableStateConfig{
		Count:        4,
		Source:       dice.NewSource(7),
		RollTicks:    3,
		RollInterval: 10 * time.Millisecond,
		Sound:        snd,
	})
	if err := s.Enter(); err != nil {
		t.Fatalf("Enter: %v", err)
	}
	return s
}

func TestTableRollPlaysSounds(t *testing.T) {
	snd := &fakeSound{}
	s := newTable(t, snd)

	if err := s.HandleInput(RollAll{}); err != nil {
		t.Fatalf("RollAll: %v", err)
	}
	if !s.View().Rolling {
		t.Fatal("expected rolling after RollAll")
	}

	for i := 0; i < 3; i++ {
		if err := s.Update(0.011); err != nil {
			t.Fatalf("Update: %v", err)
		}
	}

	if s.View().Rolling {
		t.Error("expected roll to settle after 3 ticks")
	}
	if len(snd.rattles) != 3 {
		t.Errorf("rattles = %d, want 3", len(snd.rattles))
	}
	if snd.settles != 1 {
		t.Errorf("settles = %d, want 1", snd.settles)
	}
	if snd.rattles[0] <= snd.rattles[2] {
		t.Errorf("rattle strength should fade, got %v", snd.rattles)
	}
}

func TestTableActions(t *testing.T) {
	s := newTable(t, nil)
	red, _ := dice.LookupColor("red")

	tests := []struct {
		name   string
		action interface{}
		check  func(v TableView) bool
	}{
		{"set count", SetCount{N: 7}, func(v TableView) bool { return v.Count == 7 && len(v.Dice) == 7 }},
		{"step up clamps", StepCount{Delta: 10}, func(v TableView) bool { return v.Count == dice.MaxDice }},
		{"step down", StepCount{Delta: -1}, func(v TableView) bool { return v.Count == dice.MaxDice-1 }},
		{"toggle color", ToggleColor{Color: red}, func(v TableView) bool { return v.IsSelected(red) }},
		{"exclude first", ToggleDieAt{Index: 0}, func(v TableView) bool { return v.Dice[0].Excluded }},
		{"reset clears", ResetAll{}, func(v TableView) bool { return !v.Dice[0].Excluded }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := s.HandleInput(tt.action); err != nil {
				t.Fatalf("HandleInput: %v", err)
			}
			if !tt.check(s.View()) {
				t.Errorf("unexpected view after %T: %+v", tt.action, s.View().Snapshot)
			}
		})
	}
}

func TestTableToggleDieByID(t *testing.T) {
	s := newTable(t, nil)
	id := s.View().Dice[2].ID

	if err := s.HandleInput(ToggleDie{ID: id}); err != nil {
		t.Fatal(err)
	}
	if !s.View().Dice[2].Excluded {
		t.Error("die 2 should be excluded")
	}
	if err := s.HandleInput(ToggleDie{ID: "missing"}); err != nil {
		t.Errorf("unknown id should be ignored, got %v", err)
	}
}

func TestTableRejectsUnknownInput(t *testing.T) {
	s := newTable(t, nil)
	if err := s.HandleInput("roll"); err == nil {
		t.Error("expected error for unsupported input")
	}
}

func TestTableQuit(t *testing.T) {
	s := newTable(t, nil)
	if s.QuitRequested() {
		t.Fatal("quit requested before Quit action")
	}
	_ = s.HandleInput(Quit{})
	if !s.QuitRequested() {
		t.Error("expected quit requested")
	}
}

func TestTableExitCancelsRoll(t *testing.T) {
	snd := &fakeSound{}
	s := newTable(t, snd)
	_ = s.HandleInput(RollAll{})
	_ = s.Update(0.011)

	before := s.View().Dice
	if err := s.Exit(); err != nil {
		t.Fatalf("Exit: %v", err)
	}
	_ = s.Update(1)

	after := s.View().Dice
	for i := range before {
		if before[i].Value != after[i].Value {
			t.Errorf("die %d changed after Exit: %d -> %d", i, before[i].Value, after[i].Value)
		}
	}
	if snd.settles != 0 {
		t.Errorf("settle fired after Exit")
	}
}

type recordState struct {
	entered, exited, updated int
}

func (r *recordState) Enter() error                  { r.entered++; return nil }
func (r *recordState) Exit() error                   { r.exited++; return nil }
func (r *recordState) Update(float64) error          { r.updated++; return nil }
func (r *recordState) HandleInput(interface{}) error { return nil }

func TestManagerLifecycle(t *testing.T) {
	m := NewManager()
	a, b := &recordState{}, &recordState{}

	m.Change(a)
	if m.Current() != nil {
		t.Fatal("change should be deferred to Update")
	}
	_ = m.Update(0)
	if m.Current() != a || a.entered != 1 || a.updated != 1 {
		t.Fatalf("a not entered/updated: %+v", a)
	}

	m.Change(b)
	_ = m.Update(0)
	if a.exited != 1 || b.entered != 1 {
		t.Errorf("transition a->b: a=%+v b=%+v", a, b)
	}

	if err := m.Close(); err != nil {
		t.Fatal(err)
	}
	if b.exited != 1 || m.Current() != nil {
		t.Errorf("Close should exit current state: %+v", b)
	}
	if err := m.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}
