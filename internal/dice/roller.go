package dice

// Roller rolls a group of identical dice. Damage formulas and saving
// throws both go through it so tests can queue exact faces.
type Roller interface {
	Roll(count, sides, bonus int) (*RollResult, error)
}
