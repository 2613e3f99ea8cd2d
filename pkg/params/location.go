package params

// Location names the part of the request a Model is read from.
type Location string

const (
	LocationQuery  Location = "query"
	LocationPath   Location = "path"
	LocationHeader Location = "header"
	LocationCookie Location = "cookie"
	LocationBody   Location = "body"
	LocationForm   Location = "form"
	LocationFile   Location = "file"
)

// Locations lists every supported location.
var Locations = []Location{
	LocationQuery,
	LocationPath,
	LocationHeader,
	LocationCookie,
	LocationBody,
	LocationForm,
	LocationFile,
}

func (l Location) String() string { return string(l) }

// Valid reports whether l is a supported location.
func (l Location) Valid() bool {
	_, ok := sources[l]
	return ok
}

// ParseLocation converts a location name, as used in struct tags, to a Location.
func ParseLocation(s string) (Location, bool) {
	l := Location(s)
	return l, l.Valid()
}
