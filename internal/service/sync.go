package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/hinokzakir/RadioPlan/internal/catalog"
	"github.com/hinokzakir/RadioPlan/internal/domain"
	"github.com/hinokzakir/RadioPlan/internal/schedule"
	"github.com/hinokzakir/RadioPlan/internal/source/srapi"
)

// Collection is the outcome of collecting one channel's schedule
// across the sync window.
type Collection struct {
	Programs []domain.Program
	// FailedDates counts date fetches skipped because of a source
	// error. 0 = full success, 1 = partial, 2 = total failure.
	FailedDates int
}

// programKey identifies an episode across overlapping fetch windows.
// Titles alone are not unique, so start time is part of the key.
type programKey struct {
	title string
	start string
}

// Synchronizer turns raw schedule fetches into a channel's program
// list: fetch both window dates, filter by the exact time window,
// normalize, and deduplicate.
type Synchronizer struct {
	source Source
	logger *slog.Logger
}

func NewSynchronizer(source Source, logger *slog.Logger) *Synchronizer {
	return &Synchronizer{
		source: source,
		logger: logger.With("component", "sync"),
	}
}

// Collect fetches and filters the channel's programs for the window
// around now. It runs off the event loop and touches no shared state.
// The past date is fetched and merged before the future date, so
// ordering is deterministic for a given pair of successful fetches.
// A failed date fetch is skipped, never escalated.
func (s *Synchronizer) Collect(ctx context.Context, channelID int, now time.Time) Collection {
	past, future := schedule.QueryDates(now)

	var col Collection
	seen := make(map[programKey]struct{})

	for _, date := range []time.Time{past, future} {
		episodes, err := s.source.FetchEpisodes(ctx, channelID, date)
		if err != nil {
			s.logger.Warn("schedule fetch skipped",
				"channel_id", channelID,
				"date", date.Format("2006-01-02"),
				"error", err,
			)
			col.FailedDates++
			continue
		}

		for _, ep := range episodes {
			if ep.ChannelID != channelID {
				// guard against upstream responses attributed to the
				// wrong channel
				continue
			}

			start, err := time.Parse(srapi.TimeLayout, ep.StartTime)
			if err != nil {
				s.logger.Warn("unparseable start time",
					"channel_id", channelID,
					"title", ep.Title,
					"start", ep.StartTime,
				)
				continue
			}
			if !schedule.WithinWindow(start, now) {
				continue
			}

			prog := toProgram(ep)
			key := programKey{title: prog.Title, start: prog.StartTime}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			col.Programs = append(col.Programs, prog)
		}
	}

	s.logger.Debug("collected schedule",
		"channel_id", channelID,
		"programs", len(col.Programs),
		"failed_dates", col.FailedDates,
	)
	return col
}

// Apply merges a collection into the store. Must run on the event
// loop. The cache flag is set even after a total failure: an attempted
// channel is not re-fetched on simple selection, only by refresh.
func (s *Synchronizer) Apply(store *catalog.Store, channelID int, col Collection) {
	store.AppendPrograms(channelID, col.Programs)
	store.SetCacheValid(channelID, true)
}

// toProgram normalizes one raw episode: subtitle folded into the
// title, missing description replaced by the fixed fallback.
func toProgram(ep srapi.Episode) domain.Program {
	title := ep.Title
	if ep.Subtitle != "" {
		title = title + " " + ep.Subtitle
	}

	description := ep.Description
	if description == "" {
		description = domain.DescriptionFallback
	}

	return domain.Program{
		Title:       title,
		Description: description,
		StartTime:   ep.StartTime,
		EndTime:     ep.EndTime,
		ImageURL:    ep.ImageURL,
	}
}
