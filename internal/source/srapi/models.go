package srapi

// Channel is one raw catalog entry as served by the channel list feed.
type Channel struct {
	ID       int
	Name     string
	Type     string
	ImageURL string
	About    string
}

// Episode is one raw schedule entry. ChannelID is the channel the
// upstream attributed the episode to, used by callers to re-validate
// the target channel.
type Episode struct {
	Title       string
	Subtitle    string
	Description string
	StartTime   string
	EndTime     string
	ImageURL    string
	ChannelID   int
}

// wire representations of the upstream XML documents

type channelsDocument struct {
	Channels []wireChannel `xml:"channels>channel"`
}

type wireChannel struct {
	ID      int    `xml:"id,attr"`
	Name    string `xml:"name,attr"`
	Type    string `xml:"channeltype"`
	Image   string `xml:"image"`
	Tagline string `xml:"tagline"`
}

type scheduleDocument struct {
	Episodes []wireEpisode `xml:"schedule>scheduledepisode"`
}

type wireEpisode struct {
	Title       string `xml:"title"`
	Subtitle    string `xml:"subtitle"`
	Description string `xml:"description"`
	Start       string `xml:"starttimeutc"`
	End         string `xml:"endtimeutc"`
	ImageURL    string `xml:"imageurl"`
	Channel     struct {
		ID int `xml:"id,attr"`
	} `xml:"channel"`
}
