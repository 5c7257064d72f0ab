package srapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const channelsXML = `<?xml version="1.0" encoding="utf-8"?>
<sr>
  <channels>
    <channel id="132" name="P1">
      <channeltype>Rikskanal</channeltype>
      <image>https://static-cdn.sr.se/images/132/p1.jpg</image>
      <tagline>Talat innehåll om samhälle och kultur</tagline>
    </channel>
    <channel id="701" name="P4 Stockholm">
      <channeltype>Lokal kanal</channeltype>
      <image></image>
      <tagline></tagline>
    </channel>
  </channels>
</sr>`

const scheduleXML = `<?xml version="1.0" encoding="utf-8"?>
<sr>
  <schedule>
    <scheduledepisode>
      <title>Ekot</title>
      <starttimeutc>2024-03-15T14:00:00Z</starttimeutc>
      <endtimeutc>2024-03-15T14:30:00Z</endtimeutc>
      <channel id="132" name="P1"/>
    </scheduledepisode>
    <scheduledepisode>
      <title>Studio Ett</title>
      <subtitle>eftermiddag</subtitle>
      <description>Aktualitetsmagasin</description>
      <starttimeutc>2024-03-15T15:00:00Z</starttimeutc>
      <endtimeutc>2024-03-15T16:45:00Z</endtimeutc>
      <imageurl>https://static-cdn.sr.se/images/studio-ett.jpg</imageurl>
      <channel id="132" name="P1"/>
    </scheduledepisode>
  </schedule>
</sr>`

const missingTitleXML = `<?xml version="1.0" encoding="utf-8"?>
<sr>
  <schedule>
    <scheduledepisode>
      <starttimeutc>2024-03-15T14:00:00Z</starttimeutc>
      <endtimeutc>2024-03-15T14:30:00Z</endtimeutc>
      <channel id="132" name="P1"/>
    </scheduledepisode>
  </schedule>
</sr>`

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(Config{BaseURL: srv.URL, Timeout: 5 * time.Second}, testLogger())
}

func TestFetchChannels(t *testing.T) {
	var gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path + "?" + r.URL.RawQuery
		w.Write([]byte(channelsXML))
	})

	channels, err := client.FetchChannels(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "/channels?pagination=false", gotPath)
	require.Len(t, channels, 2)
	assert.Equal(t, Channel{
		ID:       132,
		Name:     "P1",
		Type:     "Rikskanal",
		ImageURL: "https://static-cdn.sr.se/images/132/p1.jpg",
		About:    "Talat innehåll om samhälle och kultur",
	}, channels[0])
	assert.Equal(t, 701, channels[1].ID)
	assert.Equal(t, "Lokal kanal", channels[1].Type)
}

func TestFetchEpisodes(t *testing.T) {
	var gotQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(scheduleXML))
	})

	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	episodes, err := client.FetchEpisodes(context.Background(), 132, date)

	require.NoError(t, err)
	assert.Equal(t, "channelid=132&date=2024-03-15&pagination=false", gotQuery)
	require.Len(t, episodes, 2)

	assert.Equal(t, Episode{
		Title:     "Ekot",
		StartTime: "2024-03-15T14:00:00Z",
		EndTime:   "2024-03-15T14:30:00Z",
		ChannelID: 132,
	}, episodes[0])

	assert.Equal(t, "Studio Ett", episodes[1].Title)
	assert.Equal(t, "eftermiddag", episodes[1].Subtitle)
	assert.Equal(t, "Aktualitetsmagasin", episodes[1].Description)
	assert.Equal(t, "https://static-cdn.sr.se/images/studio-ett.jpg", episodes[1].ImageURL)
}

func TestFetchFullSchedule(t *testing.T) {
	var gotQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(scheduleXML))
	})

	episodes, err := client.FetchFullSchedule(context.Background(), 132)

	require.NoError(t, err)
	assert.Equal(t, "channelid=132&pagination=false", gotQuery)
	assert.Len(t, episodes, 2)
}

func TestFetchEpisodesMissingRequiredField(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(missingTitleXML))
	})

	_, err := client.FetchEpisodes(context.Background(), 132, time.Now())

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestFetchEpisodesMalformedXML(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<sr><schedule>"))
	})

	_, err := client.FetchEpisodes(context.Background(), 132, time.Now())

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestFetchEpisodesServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.FetchEpisodes(context.Background(), 132, time.Now())

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
}

func TestFetchEpisodesUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := New(Config{BaseURL: url, Timeout: time.Second}, testLogger())

	_, err := client.FetchChannels(context.Background())

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.False(t, errors.As(err, new(*ParseError)))
}

func TestFetchChannelsMissingID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<sr><channels><channel name="P1"><channeltype>Rikskanal</channeltype></channel></channels></sr>`))
	})

	_, err := client.FetchChannels(context.Background())

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}
