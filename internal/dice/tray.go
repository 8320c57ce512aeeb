package dice

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
)

// Snapshot is an immutable copy of the tray state for rendering.
type Snapshot struct {
	Count    int
	Selected []Color
	Dice     []Die
}

// Total returns the sum of face values of the included dice.
func (s Snapshot) Total() int {
	sum := 0
	for _, d := range s.Dice {
		if !d.Excluded {
			sum += d.Value
		}
	}
	return sum
}

// Counts returns how many dice show each face; index 0 is unused.
func (s Snapshot) Counts() [Faces + 1]int {
	var c [Faces + 1]int
	for _, d := range s.Dice {
		if d.Value >= 1 && d.Value <= Faces {
			c[d.Value]++
		}
	}
	return c
}

// IsSelected reports whether c is among the selected colors.
func (s Snapshot) IsSelected(c Color) bool {
	return slices.Contains(s.Selected, c)
}

// Tray owns the dice, the dice count and the color selection.
// It is not safe for concurrent use; drive it from a single loop.
type Tray struct {
	src Source

	count    int
	selected []Color
	dice     []Die

	issued map[string]struct{}

	observers    map[int]func(Snapshot)
	nextObserver int
}

// NewTray creates a tray with count dice colored from colors.
// Inputs are normalized the same way SetCount and ToggleColor normalize them.
func NewTray(src Source, count int, colors []Color) *Tray {
	t := &Tray{
		src:       src,
		count:     clampCount(count),
		issued:    make(map[string]struct{}),
		observers: make(map[int]func(Snapshot)),
	}
	for _, c := range colors {
		if !InPalette(c) || slices.Contains(t.selected, c) || len(t.selected) >= t.count {
			continue
		}
		t.selected = append(t.selected, c)
	}
	if len(t.selected) == 0 {
		t.selected = []Color{DefaultColor}
	}
	t.reconcile()
	return t
}

// Count returns the current dice count.
func (t *Tray) Count() int {
	return t.count
}

// Selected returns a copy of the selected colors in selection order.
func (t *Tray) Selected() []Color {
	return slices.Clone(t.selected)
}

// Dice returns a copy of the die list.
func (t *Tray) Dice() []Die {
	return slices.Clone(t.dice)
}

// Snapshot returns a deep copy of the current state.
func (t *Tray) Snapshot() Snapshot {
	return Snapshot{
		Count:    t.count,
		Selected: t.Selected(),
		Dice:     t.Dice(),
	}
}

// Subscribe registers fn to run after every state change.
// The returned func removes the subscription.
func (t *Tray) Subscribe(fn func(Snapshot)) func() {
	id := t.nextObserver
	t.nextObserver++
	t.observers[id] = fn
	return func() {
		delete(t.observers, id)
	}
}

// SetCount clamps n to [MinDice, MaxDice], drops selected colors beyond the
// new count and reconciles.
func (t *Tray) SetCount(n int) {
	t.count = clampCount(n)
	if len(t.selected) > t.count {
		t.selected = t.selected[:t.count]
	}
	t.reconcile()
	t.notify()
}

// ToggleColor adds or removes c from the selection. The last selected color
// cannot be removed and no more colors than dice can be selected.
func (t *Tray) ToggleColor(c Color) {
	if !InPalette(c) {
		return
	}
	if i := slices.Index(t.selected, c); i >= 0 {
		if len(t.selected) == 1 {
			return
		}
		t.selected = slices.Delete(t.selected, i, i+1)
	} else {
		if len(t.selected) >= t.count {
			return
		}
		t.selected = append(t.selected, c)
	}
	t.reconcile()
	t.notify()
}

// ToggleExclusion flips the exclusion flag of the die with the given id.
func (t *Tray) ToggleExclusion(id string) {
	for i := range t.dice {
		if t.dice[i].ID == id {
			t.dice[i].Excluded = !t.dice[i].Excluded
			t.notify()
			return
		}
	}
}

// ToggleExclusionAt flips the exclusion flag of the die at index i.
func (t *Tray) ToggleExclusionAt(i int) {
	if i < 0 || i >= len(t.dice) {
		return
	}
	t.ToggleExclusion(t.dice[i].ID)
}

// Roll re-randomizes every die that is not excluded.
func (t *Tray) Roll() {
	for i := range t.dice {
		if t.dice[i].Excluded {
			continue
		}
		t.dice[i].Value = rollFace(t.src)
	}
	t.notify()
}

// ResetAll re-randomizes every die and clears all exclusions.
func (t *Tray) ResetAll() {
	for i := range t.dice {
		t.dice[i].Value = rollFace(t.src)
		t.dice[i].Excluded = false
	}
	t.notify()
}

// reconcile brings the die list in line with count and selection.
// Colors follow position, not identity.
func (t *Tray) reconcile() {
	dist := Distribute(t.count, t.selected)

	for len(t.dice) < t.count {
		t.dice = append(t.dice, Die{
			ID:    t.newID(),
			Value: rollFace(t.src),
		})
	}
	if len(t.dice) > t.count {
		t.dice = t.dice[:t.count]
	}

	for i := range t.dice {
		t.dice[i].Color = dist[i]
	}
}

func (t *Tray) newID() string {
	id := uuid.Nil.String()
	if u, err := uuid.NewRandomFromReader(t.src); err == nil {
		id = u.String()
	}
	for n, base := len(t.issued), id; ; n++ {
		if _, dup := t.issued[id]; !dup {
			break
		}
		id = fmt.Sprintf("%s-%d", base, n)
	}
	t.issued[id] = struct{}{}
	return id
}

func (t *Tray) notify() {
	if len(t.observers) == 0 {
		return
	}
	snap := t.Snapshot()
	for _, fn := range t.observers {
		fn(snap)
	}
}
