package dice

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	dnderr "github.com/KirkDiggler/dnd-damage-application/internal/errors"
)

// RollResult is one rolled dice group, e.g. the 2d6 of a greatsword
type RollResult struct {
	Count int
	Sides int
	Bonus int
	Faces []int
	Total int
}

// Sum of the faces without the bonus
func (r *RollResult) Sum() int {
	return r.Total - r.Bonus
}

func (r *RollResult) String() string {
	faces := make([]string, len(r.Faces))
	for i, f := range r.Faces {
		faces[i] = fmt.Sprint(f)
	}
	group := fmt.Sprintf("%dd%d", r.Count, r.Sides)
	if r.Bonus != 0 {
		group += fmt.Sprintf("%+d", r.Bonus)
	}
	return fmt.Sprintf("%s [%s] = %d", group, strings.Join(faces, ","), r.Total)
}

// CheckGroup rejects dice groups no formula can produce
func CheckGroup(count, sides int) error {
	if count < 1 {
		return dnderr.InvalidArgumentf("dice count must be positive, got %d", count)
	}
	if sides < 1 {
		return dnderr.InvalidArgumentf("dice sides must be positive, got %d", sides)
	}
	return nil
}

// NewResult totals faces into a result
func NewResult(sides, bonus int, faces []int) *RollResult {
	total := bonus
	for _, f := range faces {
		total += f
	}
	return &RollResult{
		Count: len(faces),
		Sides: sides,
		Bonus: bonus,
		Faces: faces,
		Total: total,
	}
}

type randomRoller struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomRoller returns a Roller seeded from the clock
func NewRandomRoller() Roller {
	return NewSeededRoller(time.Now().UnixNano())
}

// NewSeededRoller returns a Roller whose faces repeat for the same seed
func NewSeededRoller(seed int64) Roller {
	return &randomRoller{rng: rand.New(rand.NewSource(seed))}
}

func (r *randomRoller) Roll(count, sides, bonus int) (*RollResult, error) {
	if err := CheckGroup(count, sides); err != nil {
		return nil, err
	}

	r.mu.Lock()
	faces := make([]int, count)
	for i := range faces {
		faces[i] = r.rng.Intn(sides) + 1
	}
	r.mu.Unlock()

	return NewResult(sides, bonus, faces), nil
}
