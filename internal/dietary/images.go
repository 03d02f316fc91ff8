package dietary

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"dnalab/internal/domain"
	"dnalab/internal/resource"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// DefaultImagesPath is where the site publishes the dietary image list
const DefaultImagesPath = "/dietary-images.json"

// ImageList loads the dietary image paths published by the site.
// Any failure degrades to an empty list.
type ImageList struct {
	source resource.Source
	path   string
	cache  *cache.Cache
	group  singleflight.Group
	logger *zap.Logger
}

// NewImageList creates a loader. A ttl of zero disables caching so every
// call fetches a fresh copy.
func NewImageList(source resource.Source, path string, ttl time.Duration, logger *zap.Logger) *ImageList {
	l := &ImageList{
		source: source,
		path:   path,
		logger: logger,
	}
	if ttl > 0 {
		l.cache = cache.New(ttl, 2*ttl)
	}
	return l
}

// Images returns the image paths in published order
func (l *ImageList) Images(ctx context.Context) []string {
	if l.cache != nil {
		if v, ok := l.cache.Get(l.path); ok {
			return append([]string(nil), v.([]string)...)
		}
	}

	// Waiters share the fetch; it outlives any single caller and is bounded
	// by the source's timeout
	shared := context.WithoutCancel(ctx)
	v, _, _ := l.group.Do(l.path, func() (interface{}, error) {
		images, err := l.fetch(shared)
		if l.cache != nil && !isContextError(err) {
			l.cache.Set(l.path, images, cache.DefaultExpiration)
		}
		return images, nil
	})
	return append([]string(nil), v.([]string)...)
}

// Entries resolves every published image into a display record
func (l *ImageList) Entries(ctx context.Context) []domain.DietaryEntry {
	return ResolveAll(l.Images(ctx))
}

func (l *ImageList) fetch(ctx context.Context) ([]string, error) {
	data, err := l.source.Fetch(ctx, l.path)
	if err != nil {
		l.logger.Warn("Failed to fetch dietary image list",
			zap.String("path", l.path),
			zap.Error(err),
		)
		return []string{}, err
	}
	return ParseImageList(data), nil
}

// isContextError reports an abandoned fetch, which says nothing about the resource
func isContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ParseImageList decodes a JSON array of path strings. Anything that is not
// an array yields an empty list and non-string elements are skipped.
func ParseImageList(data []byte) []string {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return []string{}
	}

	images := make([]string, 0, len(raw))
	for _, item := range raw {
		var s string
		if string(item) == "null" {
			continue
		}
		if err := json.Unmarshal(item, &s); err == nil {
			images = append(images, s)
		}
	}
	return images
}
