// Package dice implements the dice tray: the die list, color selection and
// the reconciliation that keeps them in agreement.
package dice

// Tray limits.
const (
	MinDice = 1
	MaxDice = 10
	Faces   = 6
)

// Die is one rollable unit on the tray.
type Die struct {
	ID       string
	Value    int // 1..Faces
	Excluded bool
	Color    Color
}

// pipLayout lists the occupied cells of a 3x3 grid (row-major, 0..8) per face.
var pipLayout = [Faces + 1][]int{
	{},
	{4},
	{0, 8},
	{0, 4, 8},
	{0, 2, 6, 8},
	{0, 2, 4, 6, 8},
	{0, 2, 3, 5, 6, 8},
}

// Pips returns the 3x3 grid cells holding a pip for the given face value.
// Out-of-range values have no pips.
func Pips(value int) []int {
	if value < 1 || value > Faces {
		return nil
	}
	out := make([]int, len(pipLayout[value]))
	copy(out, pipLayout[value])
	return out
}

// PipGrid returns the face as a 3x3 occupancy grid.
func PipGrid(value int) [3][3]bool {
	var g [3][3]bool
	for _, cell := range Pips(value) {
		g[cell/3][cell%3] = true
	}
	return g
}

// Distribute spreads colors over count positions as evenly as possible.
// Each color fills a consecutive run; earlier colors absorb the remainder.
// With no colors every position gets FallbackColor.
func Distribute(count int, colors []Color) []Color {
	if count <= 0 {
		return nil
	}
	out := make([]Color, 0, count)
	if len(colors) == 0 {
		for range count {
			out = append(out, FallbackColor)
		}
		return out
	}

	base := count / len(colors)
	rem := count % len(colors)
	for i, c := range colors {
		n := base
		if i < rem {
			n++
		}
		for range n {
			out = append(out, c)
		}
	}
	return out
}

func clampCount(n int) int {
	if n < MinDice {
		return MinDice
	}
	if n > MaxDice {
		return MaxDice
	}
	return n
}
