package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/hinokzakir/RadioPlan/internal/catalog"
	"github.com/hinokzakir/RadioPlan/internal/config"
	"github.com/hinokzakir/RadioPlan/internal/domain"
)

const aboutText = "Programmerat av Hinok Zakir Saleh 2024"

// Coordinator is the top-level scheduler: catalog bootstrap, periodic
// and manual refresh, per-channel on-demand population, and lazy image
// resolution. It is an actor: Run's loop is the single place where the
// catalog store is mutated and the presenter is notified. Background
// fetches re-enter the loop by posting a completion closure.
type Coordinator struct {
	store     *catalog.Store
	source    Source
	sync      *Synchronizer
	probe     Probe
	presenter Presenter
	logger    *slog.Logger
	cfg       config.RefreshConfig

	events chan func()
	// spawn runs work off the event loop and post marshals a
	// completion back onto it; both are replaced in tests to run
	// synchronously
	spawn func(func())
	post  func(func())
	now   func() time.Time

	// loop-owned state, only touched by closures executed in Run
	ctx          context.Context
	refreshing   bool
	bootstrapped bool
	active       *domain.Channel
}

func NewCoordinator(
	store *catalog.Store,
	source Source,
	sync *Synchronizer,
	probe Probe,
	presenter Presenter,
	logger *slog.Logger,
	cfg config.RefreshConfig,
) *Coordinator {
	c := &Coordinator{
		store:     store,
		source:    source,
		sync:      sync,
		probe:     probe,
		presenter: presenter,
		logger:    logger.With("component", "coordinator"),
		cfg:       cfg,
		events:    make(chan func(), 64),
		spawn:     func(fn func()) { go fn() },
		now:       time.Now,
	}
	c.post = func(fn func()) { c.events <- fn }
	return c
}

// Run bootstraps the catalog and then serves posted events and the
// periodic refresh ticker until ctx is cancelled.
func (c *Coordinator) Run(ctx context.Context) error {
	c.ctx = ctx
	c.logger.Info("coordinator started", "interval", c.cfg.Interval)

	c.startBootstrap()

	ticker := time.NewTicker(time.Duration(c.cfg.Interval))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			c.logger.Info("coordinator stopped")
			return ctx.Err()
		case fn := <-c.events:
			fn()
		case <-ticker.C:
			c.startRefreshAll()
		}
	}
}

// SelectChannel is the user intent of picking a channel from the menu.
func (c *Coordinator) SelectChannel(name string) {
	c.post(func() { c.handleSelectChannel(name) })
}

// ManualRefresh is the user intent of hitting the refresh control.
func (c *Coordinator) ManualRefresh() {
	c.post(func() { c.handleManualRefresh() })
}

// SelectProgramRow is the user intent of inspecting a schedule row.
func (c *Coordinator) SelectProgramRow(title string) {
	c.post(func() { c.handleSelectProgramRow(title) })
}

// RequestAbout is the user intent of opening the about box.
func (c *Coordinator) RequestAbout() {
	c.post(func() { c.presenter.ShowMessage(aboutText) })
}

// startBootstrap fetches the channel list once and populates the
// catalog. A failure leaves the catalog empty; manual refresh retries.
func (c *Coordinator) startBootstrap() {
	ctx := c.ctx
	c.spawn(func() {
		channels, err := c.source.FetchChannels(ctx)
		c.post(func() {
			if err != nil {
				c.logger.Error("channel list fetch failed", "error", err)
				c.presenter.ShowError("could not fetch the channel list")
				return
			}
			for _, raw := range channels {
				c.store.Upsert(raw)
			}
			c.bootstrapped = true
			c.logger.Info("catalog bootstrapped", "channels", c.store.Len())
			c.presenter.RenderChannelMenu(c.store.GroupedByType())
		})
	})
}

func (c *Coordinator) handleSelectChannel(name string) {
	ch := c.store.GetByName(name)
	if ch == nil {
		// lookup miss is a silent no-op
		return
	}
	c.active = ch
	c.presenter.ShowChannelInfo(ch.ImageURL, ch.About)

	if ch.CacheValid {
		c.presenter.ShowSchedule(ch.Programs)
		return
	}

	id := ch.ID
	now := c.now()
	ctx := c.ctx
	c.spawn(func() {
		col := c.sync.Collect(ctx, id, now)
		c.post(func() {
			c.sync.Apply(c.store, id, col)
			if c.active != nil && c.active.ID == id {
				c.presenter.ShowSchedule(c.store.Get(id).Programs)
			}
		})
	})
}

func (c *Coordinator) handleManualRefresh() {
	if !c.bootstrapped {
		c.startBootstrap()
		return
	}
	c.startRefreshAll()
}

// startRefreshAll sweeps every previously viewed channel. A second
// trigger while one sweep is in flight is a no-op, never queued.
func (c *Coordinator) startRefreshAll() {
	if c.refreshing {
		c.logger.Debug("refresh already in flight, skipping")
		return
	}
	c.refreshing = true
	c.presenter.SetRefreshEnabled(false)

	ids := c.store.CachedIDs()
	now := c.now()
	ctx := c.ctx
	c.spawn(func() {
		if !c.probe.Reachable() {
			c.post(func() {
				c.presenter.ShowError("schedule could not be refreshed: check your network connection")
				c.finishRefresh(false)
			})
			return
		}

		collections := make(map[int]Collection, len(ids))
		for _, id := range ids {
			collections[id] = c.sync.Collect(ctx, id, now)
		}
		c.post(func() {
			for _, id := range ids {
				c.store.ClearPrograms(id)
				c.sync.Apply(c.store, id, collections[id])
			}
			c.logger.Info("refresh sweep completed", "channels", len(ids))
			c.finishRefresh(true)
		})
	})
}

// finishRefresh runs on the loop after a sweep ends. swept is false
// when the sweep was abandoned on an unreachable network; the
// connectivity error has already been surfaced in that case.
func (c *Coordinator) finishRefresh(swept bool) {
	c.refreshing = false
	c.presenter.SetRefreshEnabled(true)
	if !swept {
		return
	}
	if c.active == nil {
		c.presenter.ShowMessage("nothing to refresh: no channel has been selected yet")
		return
	}
	c.presenter.ShowSchedule(c.active.Programs)
	c.presenter.ShowChannelInfo(c.active.ImageURL, c.active.About)
}

func (c *Coordinator) handleSelectProgramRow(title string) {
	if c.active == nil {
		return
	}
	idx := -1
	for i := range c.active.Programs {
		if c.active.Programs[i].Title == title {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}

	prog := c.active.Programs[idx]
	if prog.ImageURL != "" {
		c.presenter.ShowProgramDetail(prog)
		return
	}

	// One lazy attempt against the richer full-schedule feed. The
	// match is by title and start time; titles alone are not unique.
	id := c.active.ID
	ctx := c.ctx
	c.spawn(func() {
		imageURL := c.resolveImage(ctx, id, prog)
		c.post(func() {
			ch := c.store.Get(id)
			if ch == nil || idx >= len(ch.Programs) ||
				ch.Programs[idx].Title != prog.Title ||
				ch.Programs[idx].StartTime != prog.StartTime {
				// list changed under a concurrent refresh
				return
			}
			if imageURL != "" {
				ch.Programs[idx].ImageURL = imageURL
			}
			shown := ch.Programs[idx]
			if shown.ImageURL == "" {
				shown.ImageURL = domain.PlaceholderImageURL
			}
			c.presenter.ShowProgramDetail(shown)
		})
	})
}

func (c *Coordinator) resolveImage(ctx context.Context, channelID int, prog domain.Program) string {
	episodes, err := c.source.FetchFullSchedule(ctx, channelID)
	if err != nil {
		c.logger.Warn("image resolution fetch failed", "channel_id", channelID, "error", err)
		return ""
	}
	for _, ep := range episodes {
		composed := ep.Title
		if ep.Subtitle != "" {
			composed = composed + " " + ep.Subtitle
		}
		if composed == prog.Title && ep.StartTime == prog.StartTime && ep.ImageURL != "" {
			return ep.ImageURL
		}
	}
	return ""
}
