package domain

// DescriptionFallback is shown when the upstream episode carries no
// description.
const DescriptionFallback = "Kunde inte hitta beskrivning till program"

// PlaceholderImageURL is the detail-view artwork used when no episode
// image could be resolved.
const PlaceholderImageURL = "https://i3.radionomy.com/radios/400/c16d64a1-3ef8-473e-94f1-13651dcfa1f2.jpg"

// Program is one scheduled broadcast. Start and end times are kept as
// the upstream ISO-8601 UTC strings and parsed on demand for display.
// ImageURL starts empty and may be filled in by lazy resolution when
// the user inspects the program.
type Program struct {
	Title       string
	Description string
	StartTime   string
	EndTime     string
	ImageURL    string
}
