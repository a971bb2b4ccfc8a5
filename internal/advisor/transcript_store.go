package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const transcriptKeyPrefix = "advisor_transcript:"

// transcript history is bounded so a chatty session cannot grow unbounded
const maxTranscriptTurns = 50

// TranscriptStore keeps per-session conversation history in Redis so the
// Q&A helper can carry context across requests. A nil store disables
// history without disabling the advisor.
type TranscriptStore struct {
	redis *redis.Client
	ttl   time.Duration
}

// NewTranscriptStore creates a Redis-backed transcript store. Returns nil
// when no Redis client is available.
func NewTranscriptStore(redisClient *redis.Client, ttl time.Duration) *TranscriptStore {
	if redisClient == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TranscriptStore{redis: redisClient, ttl: ttl}
}

// Append records one turn for the session.
func (s *TranscriptStore) Append(ctx context.Context, sessionID string, turn Turn) error {
	if s == nil || s.redis == nil {
		return nil
	}
	if sessionID == "" {
		return errors.New("advisor: transcript sessionID required")
	}

	data, err := json.Marshal(turn)
	if err != nil {
		return fmt.Errorf("advisor: marshal transcript turn: %w", err)
	}

	key := transcriptKey(sessionID)
	pipe := s.redis.TxPipeline()
	pipe.RPush(ctx, key, data)
	pipe.Expire(ctx, key, s.ttl)
	pipe.LTrim(ctx, key, -maxTranscriptTurns, -1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("advisor: append transcript turn: %w", err)
	}
	return nil
}

// List returns the session's turns, oldest first.
func (s *TranscriptStore) List(ctx context.Context, sessionID string) ([]Turn, error) {
	if s == nil || s.redis == nil {
		return nil, nil
	}
	if sessionID == "" {
		return nil, errors.New("advisor: transcript sessionID required")
	}

	raw, err := s.redis.LRange(ctx, transcriptKey(sessionID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("advisor: list transcript: %w", err)
	}

	turns := make([]Turn, 0, len(raw))
	for _, item := range raw {
		var turn Turn
		if err := json.Unmarshal([]byte(item), &turn); err != nil {
			return nil, fmt.Errorf("advisor: decode transcript turn: %w", err)
		}
		turns = append(turns, turn)
	}
	return turns, nil
}

func transcriptKey(sessionID string) string {
	return transcriptKeyPrefix + sessionID
}
