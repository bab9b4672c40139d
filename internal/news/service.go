// Package news mirrors a third-party crypto news feed for the marketing
// page. The feed is refreshed on a fixed schedule; the last good payload is
// kept in memory and on disk so a cold start or a feed outage still serves
// stale-but-present items.
package news

import (
	"context"
	"path"
	"sync"
	"time"

	"github.com/guonaihong/gout"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"
	"go.uber.org/zap"

	"github.com/chainrent/chainrent/config"
)

var (
	cacheBucket = []byte("news")
	cacheKey    = []byte("latest")
)

// Item is one feed entry, reduced to what the site renders.
type Item struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Excerpt     string `json:"excerpt"`
	PublishedOn int64  `json:"published_on"`
	Source      string `json:"source"`
	Categories  string `json:"categories"`
	Url         string `json:"url"`
}

type apiItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Body        string `json:"body"`
	PublishedOn int64  `json:"published_on"`
	SourceInfo  struct {
		Name string `json:"name"`
	} `json:"source_info"`
	Categories string `json:"categories"`
	Url        string `json:"url"`
}

type apiResponse struct {
	Data []apiItem `json:"Data"`
}

type cachePayload struct {
	Items     []Item    `json:"items"`
	FetchedAt time.Time `json:"fetched_at"`
}

type Service struct {
	cfg config.NewsConfig

	mu        sync.RWMutex
	items     []Item
	fetchedAt time.Time

	db *bolt.DB
}

// NewService opens the on-disk cache under dataDir and loads the last saved
// payload, if any.
func NewService(cfg config.NewsConfig, dataDir string) (*Service, error) {
	db, err := bolt.Open(path.Join(dataDir, "news.db"), 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errors.Wrap(err, "open news cache")
	}
	s := &Service{cfg: cfg, db: db}
	if err := s.loadCache(); err != nil {
		zap.L().Warn("news cache load failed", zap.Error(err))
	}
	return s, nil
}

// Items returns the cached feed and when it was fetched.
func (s *Service) Items() ([]Item, time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out, s.fetchedAt
}

// Refresh pulls the feed once. A failed pull keeps the previous items.
func (s *Service) Refresh(ctx context.Context) error {
	var resp apiResponse
	err := gout.GET(s.cfg.ApiUrl).
		WithContext(ctx).
		SetTimeout(15 * time.Second).
		BindJSON(&resp).
		Do()
	if err != nil {
		return errors.Wrap(err, "fetch news feed")
	}

	limit := s.cfg.Limit
	if limit <= 0 {
		limit = 20
	}
	items := make([]Item, 0, limit)
	for _, entry := range resp.Data {
		items = append(items, Item{
			ID:          entry.ID,
			Title:       entry.Title,
			Excerpt:     excerpt(entry.Body),
			PublishedOn: entry.PublishedOn,
			Source:      entry.SourceInfo.Name,
			Categories:  entry.Categories,
			Url:         entry.Url,
		})
		if len(items) == limit {
			break
		}
	}

	now := time.Now()
	s.mu.Lock()
	s.items = items
	s.fetchedAt = now
	s.mu.Unlock()

	if err := s.saveCache(cachePayload{Items: items, FetchedAt: now}); err != nil {
		zap.L().Warn("news cache save failed", zap.Error(err))
	}
	zap.L().Debug("news feed refreshed", zap.Int("items", len(items)))
	return nil
}

func (s *Service) Close() {
	if s.db != nil {
		_ = s.db.Close()
	}
}

func (s *Service) loadCache() error {
	return s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(cacheBucket)
		if bucket == nil {
			return nil
		}
		raw := bucket.Get(cacheKey)
		if raw == nil {
			return nil
		}
		var payload cachePayload
		if err := jsoniter.Unmarshal(raw, &payload); err != nil {
			return err
		}
		s.mu.Lock()
		s.items = payload.Items
		s.fetchedAt = payload.FetchedAt
		s.mu.Unlock()
		return nil
	})
}

func (s *Service) saveCache(payload cachePayload) error {
	raw, err := jsoniter.Marshal(payload)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(cacheBucket)
		if err != nil {
			return err
		}
		return bucket.Put(cacheKey, raw)
	})
}

const excerptLen = 200

func excerpt(body string) string {
	runes := []rune(body)
	if len(runes) <= excerptLen {
		return body
	}
	return string(runes[:excerptLen]) + "..."
}
