// Package catalog is the in-memory registry of channels and their
// cached programs. It has no locking: every mutation happens on the
// coordinator's event loop, which is the single writer.
package catalog

import (
	"github.com/hinokzakir/RadioPlan/internal/domain"
	"github.com/hinokzakir/RadioPlan/internal/source/srapi"
)

// Store maps channel id to channel. Channels are created once during
// catalog bootstrap and never deleted.
type Store struct {
	channels map[int]*domain.Channel
}

func NewStore() *Store {
	return &Store{channels: make(map[int]*domain.Channel)}
}

// Upsert inserts or overwrites the channel record for raw.ID. The
// program list and cache flag of an existing record are preserved so a
// bootstrap retry cannot wipe cached schedules.
func (s *Store) Upsert(raw srapi.Channel) *domain.Channel {
	ch := &domain.Channel{
		ID:       raw.ID,
		Name:     raw.Name,
		Type:     domain.ParseChannelType(raw.Type),
		ImageURL: raw.ImageURL,
		About:    raw.About,
	}
	if prev, ok := s.channels[raw.ID]; ok {
		ch.Programs = prev.Programs
		ch.CacheValid = prev.CacheValid
	}
	s.channels[raw.ID] = ch
	return ch
}

// Get returns the channel with the given id, or nil.
func (s *Store) Get(id int) *domain.Channel {
	return s.channels[id]
}

// GetByName returns the channel with the given display name, or nil.
// Linear scan; the catalog holds dozens of channels.
func (s *Store) GetByName(name string) *domain.Channel {
	for _, ch := range s.channels {
		if ch.Name == name {
			return ch
		}
	}
	return nil
}

// Len returns the number of channels in the catalog.
func (s *Store) Len() int {
	return len(s.channels)
}

// AppendPrograms appends to the channel's program list. Unknown ids
// are a silent no-op.
func (s *Store) AppendPrograms(id int, programs []domain.Program) {
	if ch, ok := s.channels[id]; ok {
		ch.Programs = append(ch.Programs, programs...)
	}
}

// ClearPrograms empties the channel's program list ahead of a refresh.
func (s *Store) ClearPrograms(id int) {
	if ch, ok := s.channels[id]; ok {
		ch.Programs = nil
	}
}

// SetCacheValid marks whether a fetch attempt for the channel has
// completed.
func (s *Store) SetCacheValid(id int, valid bool) {
	if ch, ok := s.channels[id]; ok {
		ch.CacheValid = valid
	}
}

// CachedIDs returns the ids of every channel whose cache flag is set,
// i.e. the channels a refresh sweep must revisit.
func (s *Store) CachedIDs() []int {
	var ids []int
	for id, ch := range s.channels {
		if ch.CacheValid {
			ids = append(ids, id)
		}
	}
	return ids
}

// GroupedByType returns the catalog bucketed for menu rendering.
// Iterate domain.ChannelTypes() for stable bucket order; empty buckets
// are omitted.
func (s *Store) GroupedByType() map[domain.ChannelType][]*domain.Channel {
	grouped := make(map[domain.ChannelType][]*domain.Channel)
	for _, ch := range s.channels {
		grouped[ch.Type] = append(grouped[ch.Type], ch)
	}
	return grouped
}
