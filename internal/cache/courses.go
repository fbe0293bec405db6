// Package cache serves precomputed course catalog snapshots out of
// Redis so the catalog endpoints do not hit Postgres on every request.
// Cache failures are never fatal: reads fall through to the store and
// the miss is logged.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/TigerAppsOrg/tiger-junction-sub001/internal/domain"
)

const snapshotTTL = 30 * time.Minute

// Store is the fallback the cache reads through to.
type Store interface {
	GetCoursesByTerm(ctx context.Context, term int) ([]domain.Course, error)
	GetSectionsForCourse(ctx context.Context, courseID string) ([]domain.Section, error)
}

// Snapshot is the cached serving shape for one term's catalog.
type Snapshot struct {
	Term     int                         `json:"term"`
	Courses  []domain.Course             `json:"courses"`
	Sections map[string][]domain.Section `json:"sections"`
}

type Catalog struct {
	rdb    *redis.Client
	store  Store
	logger *slog.Logger
}

func NewCatalog(rdb *redis.Client, store Store, logger *slog.Logger) *Catalog {
	return &Catalog{rdb: rdb, store: store, logger: logger}
}

func termKey(term int) string {
	return fmt.Sprintf("courses:%d", term)
}

// GetTerm returns the catalog snapshot for a term, reading through to
// the store and repopulating Redis on a miss.
func (c *Catalog) GetTerm(ctx context.Context, term int) (*Snapshot, error) {
	if c.rdb != nil {
		raw, err := c.rdb.Get(ctx, termKey(term)).Bytes()
		if err == nil {
			var snap Snapshot
			if err := json.Unmarshal(raw, &snap); err == nil {
				return &snap, nil
			}
			c.logger.Warn("discarding corrupt catalog snapshot", "term", term)
		} else if err != redis.Nil {
			c.logger.Warn("redis read failed, falling back to store", "term", term, "error", err)
		}
	}

	snap, err := c.load(ctx, term)
	if err != nil {
		return nil, err
	}

	if c.rdb != nil {
		raw, err := json.Marshal(snap)
		if err == nil {
			if err := c.rdb.Set(ctx, termKey(term), raw, snapshotTTL).Err(); err != nil {
				c.logger.Warn("redis write failed", "term", term, "error", err)
			}
		}
	}
	return snap, nil
}

func (c *Catalog) load(ctx context.Context, term int) (*Snapshot, error) {
	courses, err := c.store.GetCoursesByTerm(ctx, term)
	if err != nil {
		return nil, err
	}

	sections := make(map[string][]domain.Section, len(courses))
	for _, course := range courses {
		cs, err := c.store.GetSectionsForCourse(ctx, course.ID)
		if err != nil {
			return nil, err
		}
		sections[course.ID] = cs
	}

	return &Snapshot{Term: term, Courses: courses, Sections: sections}, nil
}

// Invalidate drops a term's snapshot, typically after a registrar
// refresh rewrites the underlying rows.
func (c *Catalog) Invalidate(ctx context.Context, term int) {
	if c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, termKey(term)).Err(); err != nil {
		c.logger.Warn("failed to invalidate catalog snapshot", "term", term, "error", err)
	}
}
