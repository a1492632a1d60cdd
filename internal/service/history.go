package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/triniti-dev/triniti-backend/internal/domain"
	"github.com/triniti-dev/triniti-backend/internal/domain/task"
	"github.com/triniti-dev/triniti-backend/internal/port/broadcast"
	"github.com/triniti-dev/triniti-backend/internal/port/journal"
	"github.com/triniti-dev/triniti-backend/internal/port/messagequeue"
)

// DefaultPageLimit is used when a history listing does not specify a limit.
const DefaultPageLimit = 50

// topTagCount caps the topTags list in stats.
const topTagCount = 5

// History serves paginated listings and aggregate statistics over the
// journal. It never mutates the journal except through Clear.
type History struct {
	journal journal.Journal
	queue   messagequeue.Queue
	hub     broadcast.Broadcaster
	group   singleflight.Group
}

// NewHistory creates a History service.
func NewHistory(j journal.Journal, queue messagequeue.Queue, hub broadcast.Broadcaster) *History {
	return &History{journal: j, queue: queue, hub: hub}
}

// Page is one page of the newest-first history view.
type Page struct {
	Tasks  []task.Record `json:"tasks"`
	Total  int           `json:"total"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
}

// TagCount is one entry of the topTags ranking.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// Stats are aggregate statistics computed from a single journal snapshot.
type Stats struct {
	TotalTasks             int        `json:"totalTasks"`
	SuccessfulTasks        int        `json:"successfulTasks"`
	FailedTasks            int        `json:"failedTasks"`
	SuccessRate            float64    `json:"successRate"`
	AverageExecutionTimeMs float64    `json:"averageExecutionTimeMs"`
	TopTags                []TagCount `json:"topTags"`
}

// List returns the page at offset/limit of the newest-first view together
// with the total record count. Negative values are rejected before any read.
func (s *History) List(limit, offset int) (Page, error) {
	if limit < 0 || offset < 0 {
		return Page{}, fmt.Errorf("limit and offset must be non-negative: %w", domain.ErrValidation)
	}
	return Page{
		Tasks:  s.journal.Page(offset, limit),
		Total:  s.journal.Size(),
		Limit:  limit,
		Offset: offset,
	}, nil
}

// Stats computes aggregates from the current journal snapshot. Nothing is
// cached between calls, so the numbers always reflect eviction; concurrent
// callers share one computation via singleflight.
func (s *History) Stats() Stats {
	v, _, _ := s.group.Do("stats", func() (any, error) {
		return s.computeStats(), nil
	})
	return v.(Stats)
}

func (s *History) computeStats() Stats {
	snapshot := s.journal.Snapshot()

	stats := Stats{
		TotalTasks: len(snapshot),
		TopTags:    []TagCount{},
	}
	if stats.TotalTasks == 0 {
		return stats
	}

	var totalMs int64
	counts := map[string]int{}
	firstSeen := map[string]int{}
	order := []string{}

	for _, rec := range snapshot {
		if rec.Success {
			stats.SuccessfulTasks++
		} else {
			stats.FailedTasks++
		}
		totalMs += rec.DurationMs
		for _, tag := range rec.Tags {
			if _, ok := counts[tag]; !ok {
				firstSeen[tag] = len(order)
				order = append(order, tag)
			}
			counts[tag]++
		}
	}

	stats.SuccessRate = float64(stats.SuccessfulTasks) / float64(stats.TotalTasks) * 100
	stats.AverageExecutionTimeMs = float64(totalMs) / float64(stats.TotalTasks)

	// Rank by count descending; ties keep first-seen order.
	sort.SliceStable(order, func(i, j int) bool {
		if counts[order[i]] != counts[order[j]] {
			return counts[order[i]] > counts[order[j]]
		}
		return firstSeen[order[i]] < firstSeen[order[j]]
	})
	for _, tag := range order {
		if len(stats.TopTags) == topTagCount {
			break
		}
		stats.TopTags = append(stats.TopTags, TagCount{Tag: tag, Count: counts[tag]})
	}

	return stats
}

// Clear wipes the journal. Calling it on an empty journal is a no-op.
func (s *History) Clear(ctx context.Context) {
	s.journal.Clear()

	s.hub.BroadcastEvent(ctx, broadcast.EventHistoryCleared, map[string]any{})

	data, err := json.Marshal(messagequeue.TasksClearedPayload{ClearedAt: time.Now().UnixMilli()})
	if err != nil {
		return
	}
	if err := s.queue.Publish(ctx, messagequeue.SubjectTasksCleared, data); err != nil {
		slog.Error("failed to publish clear event", "error", err)
	}
}

// Size returns the current journal record count.
func (s *History) Size() int {
	return s.journal.Size()
}
