package srs

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// Sentinel errors for reference-system resolution.
var (
	// ErrUnknownSRS indicates the source matches no registered system.
	ErrUnknownSRS = errors.New("srs: unknown spatial reference system")
	// ErrInvalidWKT indicates well-known text without a recognized root node.
	ErrInvalidWKT = errors.New("srs: invalid well-known text")
)

// SRS describes a spatial reference system as a plain value. Code is the
// EPSG identifier (0 for ad-hoc WKT systems), Name the preset shortcut if
// one exists.
type SRS struct {
	Code  int
	Name  string
	WKT   string
	Proj4 string
}

// String renders the conventional authority form, e.g. "EPSG:4326".
func (s SRS) String() string {
	if s.Code > 0 {
		return fmt.Sprintf("EPSG:%d", s.Code)
	}

	return "custom"
}

// LatLon is the basic SRS for unprojected latitude and longitude
// coordinates. Units: degrees.
var LatLon = SRS{
	Code:  4326,
	Name:  "latlon",
	WKT:   `GEOGCS["WGS 84",DATUM["WGS_1984",SPHEROID["WGS 84",6378137,298.257223563]],PRIMEM["Greenwich",0],UNIT["degree",0.0174532925199433]]`,
	Proj4: "+proj=longlat +datum=WGS84 +no_defs",
}

// EuropeM is an equal-area projection centered around Europe, suited to
// relational operations within Europe. Units: meters.
var EuropeM = SRS{
	Code:  3035,
	Name:  "europe_m",
	WKT:   `PROJCS["ETRS89-extended / LAEA Europe",GEOGCS["ETRS89",DATUM["European_Terrestrial_Reference_System_1989",SPHEROID["GRS 1980",6378137,298.257222101]],PRIMEM["Greenwich",0],UNIT["degree",0.0174532925199433]],PROJECTION["Lambert_Azimuthal_Equal_Area"],PARAMETER["latitude_of_center",52],PARAMETER["longitude_of_center",10],PARAMETER["false_easting",4321000],PARAMETER["false_northing",3210000],UNIT["metre",1]]`,
	Proj4: "+proj=laea +lat_0=52 +lon_0=10 +x_0=4321000 +y_0=3210000 +ellps=GRS80 +units=m +no_defs",
}

// registry holds every known system, addressable by EPSG code and preset
// name. Guarded by mu; reads vastly outnumber writes.
var (
	mu     sync.RWMutex
	byCode = map[int]SRS{
		LatLon.Code:  LatLon,
		EuropeM.Code: EuropeM,
	}
	byName = map[string]SRS{
		LatLon.Name:  LatLon,
		EuropeM.Name: EuropeM,
	}
)

// Register adds s to the registry, keyed by its Code and, when set, its
// Name. Existing entries with the same keys are replaced.
func Register(s SRS) {
	mu.Lock()
	defer mu.Unlock()
	if s.Code > 0 {
		byCode[s.Code] = s
	}
	if s.Name != "" {
		byName[s.Name] = s
	}
}

// FromEPSG resolves a reference system by EPSG code.
// Returns ErrUnknownSRS for codes absent from the registry.
func FromEPSG(code int) (SRS, error) {
	mu.RLock()
	s, ok := byCode[code]
	mu.RUnlock()
	if !ok {
		return SRS{}, fmt.Errorf("EPSG:%d: %w", code, ErrUnknownSRS)
	}

	return s, nil
}

// FromName resolves a reference system by preset name, e.g. "latlon".
func FromName(name string) (SRS, error) {
	mu.RLock()
	s, ok := byName[name]
	mu.RUnlock()
	if !ok {
		return SRS{}, fmt.Errorf("preset %q: %w", name, ErrUnknownSRS)
	}

	return s, nil
}

// FromWKT wraps a well-known-text string in an ad-hoc SRS. Only the root
// node is checked; the body is carried verbatim.
func FromWKT(wkt string) (SRS, error) {
	if !isWKT(wkt) {
		return SRS{}, ErrInvalidWKT
	}

	return SRS{WKT: wkt}, nil
}

// Resolve normalizes the textual shapes a reference system arrives in:
// "EPSG:4326", a bare numeric code, a preset name, or a raw WKT string.
// Unrecognized input fails with ErrUnknownSRS (or ErrInvalidWKT when the
// source looks like WKT but has no recognized root).
func Resolve(source string) (SRS, error) {
	src := strings.TrimSpace(source)
	if src == "" {
		return SRS{}, fmt.Errorf("empty source: %w", ErrUnknownSRS)
	}

	if rest, ok := strings.CutPrefix(src, "EPSG:"); ok {
		code, err := strconv.Atoi(rest)
		if err != nil {
			return SRS{}, fmt.Errorf("source %q: %w", source, ErrUnknownSRS)
		}

		return FromEPSG(code)
	}
	if code, err := strconv.Atoi(src); err == nil {
		return FromEPSG(code)
	}
	if isWKT(src) {
		return FromWKT(src)
	}

	return FromName(src)
}

// wktRoots are the node keywords accepted at the start of well-known text,
// covering both the 2001 and 2015 flavors of the format.
var wktRoots = []string{"GEOGCS[", "PROJCS[", "GEOGCRS[", "PROJCRS[", "GEODCRS["}

func isWKT(s string) bool {
	for _, root := range wktRoots {
		if strings.HasPrefix(s, root) {
			return true
		}
	}

	return false
}
