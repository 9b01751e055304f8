package resolutions

import (
	"time"

	"github.com/KirkDiggler/dnd-damage-application/internal/domain/damage"
	"github.com/KirkDiggler/dnd-damage-application/internal/domain/message"
)

// Data is the serialized form of a resolution
type Data struct {
	MessageID   string         `json:"message_id"`
	Values      map[string]int `json:"values"`
	Properties  []string       `json:"properties"`
	SaveAbility string         `json:"save_ability,omitempty"`
	SaveDC      int            `json:"save_dc,omitempty"`
	HasSave     bool           `json:"has_save"`
	IsCantrip   bool           `json:"is_cantrip"`
	Targets     []string       `json:"targets"`
	ResolvedAt  time.Time      `json:"resolved_at"`
}

func toData(res *message.Resolution) *Data {
	values := make(map[string]int, len(res.Values))
	for t, v := range res.Values {
		values[string(t)] = v
	}

	return &Data{
		MessageID:   res.MessageID,
		Values:      values,
		Properties:  res.Properties.Slice(),
		SaveAbility: res.SaveData.Ability,
		SaveDC:      res.SaveData.DC,
		HasSave:     res.HasSave,
		IsCantrip:   res.IsCantrip,
		Targets:     append([]string(nil), res.Targets...),
		ResolvedAt:  res.ResolvedAt,
	}
}

func toResolution(data *Data) *message.Resolution {
	values := make(damage.Values, len(data.Values))
	for t, v := range data.Values {
		values[damage.Type(t)] = v
	}

	return &message.Resolution{
		MessageID:  data.MessageID,
		Values:     values,
		Properties: damage.NewPropertySet(data.Properties...),
		SaveData:   message.SaveData{Ability: data.SaveAbility, DC: data.SaveDC},
		HasSave:    data.HasSave,
		IsCantrip:  data.IsCantrip,
		Targets:    data.Targets,
		ResolvedAt: data.ResolvedAt,
	}
}
