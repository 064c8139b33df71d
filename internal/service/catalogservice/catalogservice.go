package catalogservice

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/watchearn/internal/domain"
	"github.com/GlebRadaev/watchearn/internal/metrics"
	"github.com/GlebRadaev/watchearn/pkg/clients"
)

type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Response is the catalog's video document. A missing reward means the default one.
type Response struct {
	ID       string `json:"id"`
	IsActive bool   `json:"is_active"`
	Reward   *int64 `json:"reward,omitempty"`
}

type Service struct {
	url           string
	client        clients.HTTPClientI
	cache         Cache
	metrics       *metrics.Metrics
	ttl           time.Duration
	defaultReward int64
}

func New(baseURL string, client clients.HTTPClientI, cache Cache, m *metrics.Metrics, ttl time.Duration, defaultReward int64) *Service {
	return &Service{
		url:           baseURL,
		client:        client,
		cache:         cache,
		metrics:       m,
		ttl:           ttl,
		defaultReward: defaultReward,
	}
}

func cacheKey(videoID string) string {
	return "video:" + videoID
}

// VideoMetadata looks the video up in the cache and falls back to the catalog service.
// Cache failures are logged and never fail the lookup.
func (s *Service) VideoMetadata(ctx context.Context, videoID string) (*domain.VideoMetadata, error) {
	if data, err := s.cache.Get(ctx, cacheKey(videoID)); err != nil {
		zap.L().Warn("catalog cache read failed", zap.String("video_id", videoID), zap.Error(err))
	} else if data != nil {
		var meta domain.VideoMetadata
		if err := json.Unmarshal(data, &meta); err == nil {
			s.metrics.CacheLookup(true)
			return &meta, nil
		}
	}
	s.metrics.CacheLookup(false)

	meta, err := s.fetch(ctx, videoID)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(meta); err == nil {
		if err := s.cache.Set(ctx, cacheKey(videoID), data, s.ttl); err != nil {
			zap.L().Warn("catalog cache write failed", zap.String("video_id", videoID), zap.Error(err))
		}
	}
	return meta, nil
}

func (s *Service) fetch(ctx context.Context, videoID string) (*domain.VideoMetadata, error) {
	statusCode, body, err := s.client.Get(ctx, s.url+"/api/videos/"+url.PathEscape(videoID), nil)
	if err != nil {
		zap.L().Error("catalog request failed", zap.String("video_id", videoID), zap.Error(err))
		return nil, fmt.Errorf("catalog request: %w", err)
	}

	switch statusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, domain.ErrVideoNotFound
	default:
		zap.L().Error("unexpected catalog status", zap.Int("status", statusCode), zap.String("video_id", videoID))
		return nil, fmt.Errorf("catalog returned status %d", statusCode)
	}

	var resp Response
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode catalog response: %w", err)
	}

	meta := &domain.VideoMetadata{
		VideoID:  videoID,
		IsActive: resp.IsActive,
		Reward:   s.defaultReward,
	}
	if resp.Reward != nil {
		if *resp.Reward < 0 {
			zap.L().Error("catalog returned a negative reward", zap.String("video_id", videoID), zap.Int64("reward", *resp.Reward))
			return nil, fmt.Errorf("catalog reward for video %s is negative", videoID)
		}
		meta.Reward = *resp.Reward
	}
	return meta, nil
}
