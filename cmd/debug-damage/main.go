package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/KirkDiggler/dnd-damage-application/internal/actions"
	"github.com/KirkDiggler/dnd-damage-application/internal/config"
	"github.com/KirkDiggler/dnd-damage-application/internal/dice"
	"github.com/KirkDiggler/dnd-damage-application/internal/domain/actor"
	"github.com/KirkDiggler/dnd-damage-application/internal/domain/damage"
	"github.com/KirkDiggler/dnd-damage-application/internal/domain/events"
	"github.com/KirkDiggler/dnd-damage-application/internal/domain/message"
	"github.com/KirkDiggler/dnd-damage-application/internal/domain/roll"
	"github.com/KirkDiggler/dnd-damage-application/internal/host/memory"
	"github.com/KirkDiggler/dnd-damage-application/internal/repositories/resolutions"
	"github.com/KirkDiggler/dnd-damage-application/internal/services"
	"github.com/KirkDiggler/dnd-damage-application/internal/uuid"
)

const gmID = "gm"

// defaultScript applies a magic greatsword hit with a save, then walks an
// applicator session for the same message. The werewolf's immunity only
// yields to silver, so it takes the fire alone.
var defaultScript = []string{
	"damage:save-apply:msg-1",
	"damage:undo:msg-1",
	"damage:open:msg-1",
	"session:roll-save-all:session-1",
	"session:apply-all:session-1",
	"session:undo-all:session-1",
	"session:close:session-1",
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()
	roller := dice.NewRandomRoller()
	if cfg.DiceSeed != 0 {
		roller = dice.NewSeededRoller(cfg.DiceSeed)
	}

	// Sequential ids keep the scripted session:...:session-1 steps valid
	providerConfig := &services.ProviderConfig{
		Damage:        cfg.Damage,
		UUIDGenerator: uuid.NewSequenceGenerator("session"),
		Logger:        logger,
	}

	// Keep Redis client for cleanup
	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = connectRedis(ctx, cfg.Redis)
		if err != nil {
			logger.Warn("falling back to in-memory resolutions", zap.Error(err))
			redisClient = nil
		} else {
			providerConfig.ResolutionRepository = resolutions.NewRedisRepository(&resolutions.RedisRepoConfig{
				Client: redisClient,
				TTL:    cfg.Redis.TTL,
			})
			logger.Info("using redis for resolutions")
		}
	} else {
		logger.Info("no redis configured, using in-memory resolutions")
	}
	defer func() {
		if redisClient != nil {
			if err := redisClient.Close(); err != nil {
				logger.Warn("error closing redis connection", zap.Error(err))
			}
		}
	}()

	h, err := seedTable(roller)
	if err != nil {
		logger.Fatal("failed to seed table", zap.Error(err))
	}
	providerConfig.Host = h.Bundle()

	provider, err := services.NewProvider(providerConfig)
	if err != nil {
		logger.Fatal("failed to create services", zap.Error(err))
	}

	// Stand-in for the scrolling numbers overlay
	provider.EventBus.Subscribe(events.AfterApplyDamage, events.NewListener(0, func(e *events.GameEvent) error {
		parts := make([]string, 0, len(e.Damages))
		for _, d := range e.Damages {
			parts = append(parts, fmt.Sprintf("%+g %s #%s", -d.Value, d.Type, d.Color))
		}
		fmt.Printf("  %s: %s\n", e.Actor.Name, strings.Join(parts, ", "))
		return nil
	}))

	script := defaultScript
	if len(os.Args) > 1 {
		script = os.Args[1:]
	}

	for _, line := range script {
		customID, value, _ := strings.Cut(line, "=")
		fmt.Printf("> %s\n", line)

		result, err := provider.Actions.Dispatch(ctx, gmID, customID, value)
		if err != nil {
			fmt.Printf("  error: %s\n", actions.UserMessage(err))
			logger.Debug("action error", zap.String("custom_id", customID), zap.Error(err))
			continue
		}
		printJSON(result)
	}

	history, err := provider.ApplicationService.History(ctx, []string{"msg-1"})
	if err != nil {
		logger.Warn("failed to read resolution history", zap.Error(err))
	}
	for _, res := range history {
		fmt.Printf("%s resolved at %s: %v\n", res.MessageID, res.ResolvedAt.Format(time.RFC3339), res.Values)
	}

	for _, id := range []string{"wolf", "fighter"} {
		a, err := h.GetActor(ctx, id)
		if err != nil {
			continue
		}
		fmt.Printf("%s: %d/%d hp (+%d temp)\n", a.Name, a.HP.Value, a.HP.Max, a.HP.Temp)
	}
}

func connectRedis(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	opts := &redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}
	if cfg.URL != "" {
		parsed, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse redis url: %w", err)
		}
		opts = parsed
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}

// seedTable creates a GM, a werewolf and a fighter and posts a greatsword
// hit that calls for a constitution save
func seedTable(roller dice.Roller) (*memory.Host, error) {
	h := memory.New(roller)

	wolf := &actor.Actor{
		ID:   "wolf",
		Name: "Werewolf",
		HP:   &actor.HitPoints{Value: 58, Max: 58},
		Traits: damage.Traits{
			Immunity: damage.Trait{
				Types:    damage.NewTypeSet(damage.TypeBludgeoning, damage.TypePiercing, damage.TypeSlashing),
				Bypasses: damage.NewPropertySet(damage.PropertySilvered),
			},
		},
		SaveBonuses: map[string]int{"con": 3},
	}
	fighter := &actor.Actor{
		ID:          "fighter",
		Name:        "Grog Strongjaw",
		HP:          &actor.HitPoints{Value: 40, Max: 40, Temp: 3},
		SaveBonuses: map[string]int{"con": 5},
	}
	fighter.Traits.Resistance.Types = damage.NewTypeSet(damage.TypeFire)

	h.AddActor(wolf, "tok-wolf")
	h.AddActor(fighter, "tok-fighter")
	h.AddUser(&memory.User{ID: gmID, Name: "Game Master", GM: true})
	if err := h.Select(context.Background(), gmID, []string{"tok-wolf", "tok-fighter"}); err != nil {
		return nil, err
	}

	msg, err := message.NewDamageMessage(roller, &message.DamageRequest{
		MessageID: "msg-1",
		AuthorID:  gmID,
		Item: &message.Item{
			ID:   "flame-greatsword",
			Name: "Flaming Greatsword",
			Type: "weapon",
			Parts: []roll.Part{
				{Formula: "2d6 + 4", Type: damage.TypeSlashing},
				{Formula: "1d6", Type: damage.TypeFire},
			},
			Save:       &message.SaveData{Ability: "con", DC: 13},
			Properties: []string{damage.PropertyMagical},
		},
		Targets: []string{"tok-wolf"},
	})
	if err != nil {
		return nil, err
	}
	h.PostMessage(msg)
	return h, nil
}

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "  ", "  ")
	if err != nil {
		fmt.Printf("  %+v\n", v)
		return
	}
	fmt.Printf("  %s\n", data)
}
