package domain

// ChannelType is the closed set of presentation buckets a channel can
// belong to, mapped from the upstream channeltype strings.
type ChannelType int

const (
	ChannelNational ChannelType = iota
	ChannelLocal
	ChannelExtra
	ChannelMore
	ChannelMinority
	ChannelOther
)

// upstream channeltype values as served by the API
var channelTypeNames = map[string]ChannelType{
	"Rikskanal":           ChannelNational,
	"Lokal kanal":         ChannelLocal,
	"Extrakanaler":        ChannelExtra,
	"Fler kanaler":        ChannelMore,
	"Minoritet och språk": ChannelMinority,
}

var channelTypeLabels = map[ChannelType]string{
	ChannelNational: "Rikskanaler",
	ChannelLocal:    "Lokala kanaler",
	ChannelExtra:    "Extrakanaler",
	ChannelMore:     "Fler kanaler",
	ChannelMinority: "Minoritet och språk",
	ChannelOther:    "Övriga",
}

// ParseChannelType maps an upstream channeltype string to its bucket.
// Unrecognized values land in ChannelOther instead of being dropped.
func ParseChannelType(s string) ChannelType {
	if t, ok := channelTypeNames[s]; ok {
		return t
	}
	return ChannelOther
}

func (t ChannelType) String() string {
	return channelTypeLabels[t]
}

// ChannelTypes lists all buckets in menu order.
func ChannelTypes() []ChannelType {
	return []ChannelType{
		ChannelNational,
		ChannelLocal,
		ChannelExtra,
		ChannelMore,
		ChannelMinority,
		ChannelOther,
	}
}

// Channel is a broadcast station with its cached schedule. ID is the
// stable join key to the upstream source; Name is the key the
// presentation layer selects by, so it must be unique in the catalog.
type Channel struct {
	ID       int
	Name     string
	Type     ChannelType
	ImageURL string
	About    string

	// CacheValid means a fetch attempt for this channel has completed,
	// not that Programs is fresh.
	CacheValid bool
	Programs   []Program
}
