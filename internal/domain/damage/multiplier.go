package damage

import "math"

// Mode selects how an amount is applied
type Mode struct {
	Half bool // successful save or "apply half"; never stacks
	Undo bool
}

// Multiplier returns 1 or 0.5, negated for undo
func (m Mode) Multiplier() float64 {
	mult := 1.0
	if m.Half {
		mult = 0.5
	}
	if m.Undo {
		mult = -mult
	}
	return mult
}

// Delta converts an amount and multiplier into a whole hit point change.
// A halved undo of an odd amount is compensated by one half point before
// flooring, so undo restores exactly what the halved apply removed.
func Delta(amount int, multiplier float64) int {
	if amount < 0 {
		amount = 0
	}
	v := float64(amount) * multiplier
	if multiplier < 0 && multiplier > -1 && amount%2 == 1 {
		v += 0.5
	}
	return int(math.Floor(v))
}

// HealingDelta returns the hit point change for healing: healing lowers the
// loss, undo reverses it.
func HealingDelta(value int, undo bool) int {
	if undo {
		return value
	}
	return -value
}
