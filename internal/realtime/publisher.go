package realtime

import (
	"context"
	"encoding/json"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
)

// Publisher fans appointment and slot events out over Redis pub/sub so
// connected dashboards refresh without polling. Publish failures are logged
// and swallowed; realtime is best-effort.
type Publisher struct {
	rdb *redis.Client
}

func NewPublisher(addr, password string) *Publisher {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	return &Publisher{rdb: rdb}
}

func (p *Publisher) Ping(ctx context.Context) error {
	return p.rdb.Ping(ctx).Err()
}

func (p *Publisher) Publish(event string, payload map[string]any) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Str("event", event).Msg("failed to encode realtime payload")
		return
	}

	if err := p.rdb.Publish(context.Background(), event, data).Err(); err != nil {
		log.Error().Err(err).Str("event", event).Msg("failed to publish realtime event")
	}
}

func (p *Publisher) Close() error {
	return p.rdb.Close()
}
