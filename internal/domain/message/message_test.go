package message_test

import (
	"testing"
	"time"

	mockdice "github.com/KirkDiggler/dnd-damage-application/internal/dice/mock"
	"github.com/KirkDiggler/dnd-damage-application/internal/domain/damage"
	"github.com/KirkDiggler/dnd-damage-application/internal/domain/message"
	"github.com/KirkDiggler/dnd-damage-application/internal/domain/roll"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDamageMessage(t *testing.T) {
	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{6, 3, 4})

	item := &message.Item{
		ID:    "item-1",
		Name:  "Flame Tongue",
		Type:  "weapon",
		Parts: []roll.Part{{Formula: "1d8 + 4", Type: damage.TypeSlashing}, {Formula: "2d6", Type: damage.TypeFire}},
		Properties: []string{
			damage.PropertyMagical, "fin",
		},
	}

	msg, err := message.NewDamageMessage(roller, &message.DamageRequest{
		MessageID: "msg-1",
		AuthorID:  "user-1",
		Item:      item,
		Targets:   []string{"tok-1", "tok-2"},
	})
	require.NoError(t, err)

	assert.True(t, msg.IsDamage())
	assert.False(t, msg.Flags.HasSave)
	assert.Equal(t, []string{"tok-1", "tok-2"}, msg.Flags.Targets)
	assert.Equal(t, 17, msg.RollTotal())

	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	res := message.Resolve(msg, damage.NewResolver(nil), damage.DefaultVocabulary(), now)
	require.NotNil(t, res)
	assert.Equal(t, damage.Values{damage.TypeSlashing: 10, damage.TypeFire: 7}, res.Values)
	assert.Equal(t, []string{damage.PropertyMagical}, res.Properties.Slice(), "non-physical properties are dropped")
	assert.Equal(t, message.KindDamage, res.Kind())
	assert.Equal(t, now, res.ResolvedAt)
}

func TestResolve_SaveDataAndCantrip(t *testing.T) {
	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{7})

	item := &message.Item{
		ID:    "sacred-flame",
		Name:  "Sacred Flame",
		Type:  "spell",
		Level: 0,
		Parts: []roll.Part{{Formula: "1d8", Type: damage.TypeRadiant}},
		Save:  &message.SaveData{Ability: "dex", DC: 13},
	}

	msg, err := message.NewDamageMessage(roller, &message.DamageRequest{
		MessageID:   "msg-2",
		Item:        item,
		BonusSaveDC: 15,
	})
	require.NoError(t, err)

	res := message.Resolve(msg, damage.NewResolver(nil), damage.DefaultVocabulary(), time.Now())
	require.NotNil(t, res)
	assert.True(t, res.HasSave)
	assert.True(t, res.IsCantrip)
	assert.Equal(t, message.SaveData{Ability: "dex", DC: 15}, res.SaveData)
}

func TestResolution_Kind(t *testing.T) {
	assert.Equal(t, message.KindTempHP, (&message.Resolution{Values: damage.Values{damage.TypeTempHP: 5, damage.TypeHealing: 2}}).Kind())
	assert.Equal(t, message.KindHealing, (&message.Resolution{Values: damage.Values{damage.TypeHealing: 5}}).Kind())
	assert.Equal(t, message.KindDamage, (&message.Resolution{Values: damage.Values{damage.TypeFire: 5}}).Kind())
}

func TestResolve_NotDamage(t *testing.T) {
	msg := &message.Message{ID: "m", Flags: message.Flags{RollType: message.RollTypeAttack}}
	assert.Nil(t, message.Resolve(msg, damage.NewResolver(nil), damage.DefaultVocabulary(), time.Now()))
}

func TestMessage_AttackTargetIDs(t *testing.T) {
	msg := &message.Message{
		Flags: message.Flags{RollType: message.RollTypeAttack},
		AttackTargets: []message.AttackTarget{
			{TokenID: "tok-1", Hit: true},
			{TokenID: "tok-2", Hit: false},
			{TokenID: "tok-3", Hit: true},
		},
	}

	assert.True(t, msg.IsAttack())
	assert.Equal(t, []string{"tok-1", "tok-3"}, msg.AttackTargetIDs(true))
	assert.Equal(t, []string{"tok-2"}, msg.AttackTargetIDs(false))
}
