package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"github.com/hinokzakir/RadioPlan/internal/domain"
	"github.com/hinokzakir/RadioPlan/internal/source/srapi"
)

// Source is the upstream schedule API.
type Source interface {
	FetchChannels(ctx context.Context) ([]srapi.Channel, error)
	FetchEpisodes(ctx context.Context, channelID int, date time.Time) ([]srapi.Episode, error)
	FetchFullSchedule(ctx context.Context, channelID int) ([]srapi.Episode, error)
}

// Probe gates network operations with a cheap reachability check.
type Probe interface {
	Reachable() bool
}

// Presenter is the presentation collaborator the coordinator pushes
// results to. Implementations must not mutate what they are handed.
type Presenter interface {
	RenderChannelMenu(grouped map[domain.ChannelType][]*domain.Channel)
	ShowChannelInfo(imageURL, about string)
	ShowSchedule(programs []domain.Program)
	ShowProgramDetail(program domain.Program)
	ShowMessage(message string)
	ShowError(message string)
	SetRefreshEnabled(enabled bool)
}
