package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/entity"
)

var ErrMoveNotCached = errors.New("move not cached")

type MoveCache interface {
	Get(ctx context.Context, board entity.Board, botMark entity.Mark) (entity.SearchResult, error)
	Save(ctx context.Context, board entity.Board, botMark entity.Mark, result entity.SearchResult) error
}

type dbMoveCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewMoveCache - Redis backed cache of search results. A zero ttl keeps entries forever.
func NewMoveCache(client *redis.Client, ttl time.Duration) MoveCache {
	return &dbMoveCache{
		client: client,
		ttl:    ttl,
	}
}

func moveKey(board entity.Board, botMark entity.Mark) string {
	return "bestmove:" + string(botMark) + ":" + board.String()
}

func (that *dbMoveCache) Get(ctx context.Context, board entity.Board, botMark entity.Mark) (entity.SearchResult, error) {
	response, err := that.client.Get(ctx, moveKey(board, botMark)).Result()
	if errors.Is(err, redis.Nil) {
		return entity.SearchResult{}, ErrMoveNotCached
	}

	if err != nil {
		return entity.SearchResult{}, fmt.Errorf("failed to get cached move: %w", err)
	}

	var result entity.SearchResult
	if err = json.Unmarshal([]byte(response), &result); err != nil {
		return entity.SearchResult{}, fmt.Errorf("failed to unmarshal cached move: %w", err)
	}

	return result, nil
}

func (that *dbMoveCache) Save(ctx context.Context, board entity.Board, botMark entity.Mark, result entity.SearchResult) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("could not marshal search result: %w", err)
	}

	if err = that.client.Set(ctx, moveKey(board, botMark), resultJSON, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set cached move: %w", err)
	}

	return nil
}
