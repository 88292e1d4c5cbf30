// Package store persists analysis results to Redis so repeated audits
// of the same device build a queryable history. Results are keyed by
// the SHA-256 of the raw config text and indexed by analysis time.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/fwaudit/fwaudit/pkg/risk"
	"github.com/fwaudit/fwaudit/pkg/util"
)

const (
	keyPrefix = "fwaudit|result|"
	indexKey  = "fwaudit|index"
)

// Result is one stored analysis outcome.
type Result struct {
	Hash         string      `json:"hash"`
	Device       string      `json:"device,omitempty"`
	ConfigFile   string      `json:"config_file,omitempty"`
	Timestamp    time.Time   `json:"timestamp"`
	Score        int         `json:"score"`
	RuleCount    int         `json:"rule_count"`
	FindingCount int         `json:"finding_count"`
	Findings     []risk.Risk `json:"findings"`
}

// Store wraps a Redis client for the analysis history database.
type Store struct {
	client *redis.Client
	ctx    context.Context
}

// New creates a history store client. Password may be empty.
func New(addr, password string, db int) *Store {
	return &Store{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
		ctx: context.Background(),
	}
}

// Ping tests the connection.
func (s *Store) Ping() error {
	if err := s.client.Ping(s.ctx).Err(); err != nil {
		return fmt.Errorf("%w: %v", util.ErrStoreUnavailable, err)
	}
	return nil
}

// Close closes the connection.
func (s *Store) Close() error {
	return s.client.Close()
}

// Save writes a result and adds it to the time-ordered index. A result
// with the same hash overwrites the previous run of the same config.
func (s *Store) Save(res *Result) error {
	if res.Hash == "" {
		return util.NewInputError("result", "hash is required")
	}
	if res.Timestamp.IsZero() {
		res.Timestamp = time.Now()
	}

	data, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}

	if err := s.client.Set(s.ctx, keyPrefix+res.Hash, data, 0).Err(); err != nil {
		return fmt.Errorf("storing result %s: %w", res.Hash, err)
	}
	return s.client.ZAdd(s.ctx, indexKey, &redis.Z{
		Score:  float64(res.Timestamp.UnixNano()),
		Member: res.Hash,
	}).Err()
}

// Get retrieves a result by config hash.
func (s *Store) Get(hash string) (*Result, error) {
	data, err := s.client.Get(s.ctx, keyPrefix+hash).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("result %s: %w", hash, util.ErrNotFound)
		}
		return nil, err
	}

	var res Result
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, fmt.Errorf("decoding result %s: %w", hash, err)
	}
	return &res, nil
}

// List returns up to limit results, newest first. A limit of 0 returns
// everything. Index entries whose result key has been removed are skipped.
func (s *Store) List(limit int) ([]*Result, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit) - 1
	}

	hashes, err := s.client.ZRevRange(s.ctx, indexKey, 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("reading result index: %w", err)
	}

	results := make([]*Result, 0, len(hashes))
	for _, hash := range hashes {
		res, err := s.Get(hash)
		if err != nil {
			if errors.Is(err, util.ErrNotFound) {
				util.Warnf("store: index references missing result %s", hash)
				continue
			}
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

// Latest returns the most recent result.
func (s *Store) Latest() (*Result, error) {
	results, err := s.List(1)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, util.ErrNotFound
	}
	return results[0], nil
}

// Clear removes all stored results and the index.
func (s *Store) Clear() error {
	hashes, err := s.client.ZRange(s.ctx, indexKey, 0, -1).Result()
	if err != nil {
		return fmt.Errorf("reading result index: %w", err)
	}

	for _, hash := range hashes {
		if err := s.client.Del(s.ctx, keyPrefix+hash).Err(); err != nil {
			return fmt.Errorf("deleting result %s: %w", hash, err)
		}
	}
	return s.client.Del(s.ctx, indexKey).Err()
}
