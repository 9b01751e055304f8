package mockdice

import (
	"sync"

	"github.com/KirkDiggler/dnd-damage-application/internal/dice"
	dnderr "github.com/KirkDiggler/dnd-damage-application/internal/errors"
)

// ManualMockRoller hands out queued faces in order
type ManualMockRoller struct {
	mu    sync.Mutex
	faces []int
	used  int
}

func NewManualMockRoller() *ManualMockRoller {
	return &ManualMockRoller{}
}

// SetNextRoll queues one more face
func (m *ManualMockRoller) SetNextRoll(face int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.faces = append(m.faces, face)
}

// SetRolls replaces the queue
func (m *ManualMockRoller) SetRolls(faces []int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.faces = faces
	m.used = 0
}

// Remaining counts faces not yet handed out
func (m *ManualMockRoller) Remaining() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.faces) - m.used
}

func (m *ManualMockRoller) Roll(count, sides, bonus int) (*dice.RollResult, error) {
	if err := dice.CheckGroup(count, sides); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.used+count > len(m.faces) {
		return nil, dnderr.FailedPreconditionf("roller has %d queued faces, %dd%d needs %d",
			len(m.faces)-m.used, count, sides, count)
	}

	faces := make([]int, count)
	for i := range faces {
		face := m.faces[m.used+i]
		if face < 1 || face > sides {
			return nil, dnderr.InvalidArgumentf("face %d cannot come from a d%d", face, sides)
		}
		faces[i] = face
	}
	m.used += count

	return dice.NewResult(sides, bonus, faces), nil
}
