package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hinokzakir/RadioPlan/internal/domain"
	"github.com/hinokzakir/RadioPlan/internal/source/srapi"
)

func seedStore() *Store {
	s := NewStore()
	s.Upsert(srapi.Channel{ID: 132, Name: "P1", Type: "Rikskanal", ImageURL: "img1", About: "about1"})
	s.Upsert(srapi.Channel{ID: 163, Name: "P2", Type: "Rikskanal"})
	s.Upsert(srapi.Channel{ID: 701, Name: "P4 Stockholm", Type: "Lokal kanal"})
	return s
}

func TestUpsertAndGet(t *testing.T) {
	s := seedStore()

	ch := s.Get(132)
	require.NotNil(t, ch)
	assert.Equal(t, "P1", ch.Name)
	assert.Equal(t, domain.ChannelNational, ch.Type)
	assert.False(t, ch.CacheValid)
	assert.Empty(t, ch.Programs)

	assert.Nil(t, s.Get(999))
	assert.Equal(t, 3, s.Len())
}

func TestUpsertIsIdempotentOnID(t *testing.T) {
	s := seedStore()
	s.Upsert(srapi.Channel{ID: 132, Name: "P1", Type: "Rikskanal", About: "updated"})

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, "updated", s.Get(132).About)
}

func TestUpsertPreservesCachedPrograms(t *testing.T) {
	s := seedStore()
	s.AppendPrograms(132, []domain.Program{{Title: "Ekot"}})
	s.SetCacheValid(132, true)

	// bootstrap retry must not wipe cached schedules
	s.Upsert(srapi.Channel{ID: 132, Name: "P1", Type: "Rikskanal"})

	ch := s.Get(132)
	assert.True(t, ch.CacheValid)
	require.Len(t, ch.Programs, 1)
	assert.Equal(t, "Ekot", ch.Programs[0].Title)
}

func TestGetByName(t *testing.T) {
	s := seedStore()

	ch := s.GetByName("P4 Stockholm")
	require.NotNil(t, ch)
	assert.Equal(t, 701, ch.ID)

	assert.Nil(t, s.GetByName("no such channel"))
}

func TestAppendAndClearPrograms(t *testing.T) {
	s := seedStore()

	s.AppendPrograms(132, []domain.Program{{Title: "Ekot"}, {Title: "Studio Ett"}})
	s.AppendPrograms(132, []domain.Program{{Title: "Kulturnytt"}})
	require.Len(t, s.Get(132).Programs, 3)

	s.ClearPrograms(132)
	assert.Empty(t, s.Get(132).Programs)

	// unknown ids are silent no-ops
	s.AppendPrograms(999, []domain.Program{{Title: "x"}})
	s.ClearPrograms(999)
}

func TestCachedIDs(t *testing.T) {
	s := seedStore()
	assert.Empty(t, s.CachedIDs())

	s.SetCacheValid(132, true)
	s.SetCacheValid(701, true)

	assert.ElementsMatch(t, []int{132, 701}, s.CachedIDs())

	s.SetCacheValid(132, false)
	assert.ElementsMatch(t, []int{701}, s.CachedIDs())
}

func TestGroupedByType(t *testing.T) {
	s := seedStore()
	s.Upsert(srapi.Channel{ID: 800, Name: "Junk FM", Type: "Something new"})

	grouped := s.GroupedByType()

	assert.Len(t, grouped[domain.ChannelNational], 2)
	assert.Len(t, grouped[domain.ChannelLocal], 1)
	assert.Len(t, grouped[domain.ChannelOther], 1)
	assert.Empty(t, grouped[domain.ChannelMinority])
}
