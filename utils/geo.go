package utils

import (
	"net"
	"strings"

	"github.com/oschwald/geoip2-golang"
)

// GeoLocation is the resolved location for a caller IP. Fields the lookup
// cannot fill carry the "Unknown" sentinel; CountryCode is empty when there
// is no match so downstream country checks simply fail to match.
type GeoLocation struct {
	Country     string `json:"country"`
	CountryCode string `json:"country_code"`
	City        string `json:"city"`
	Region      string `json:"region"`
	Timezone    string `json:"timezone"`
}

const geoUnknown = "Unknown"

// GeoResolver wraps the MaxMind city database. A nil reader is valid and
// resolves everything to Unknown, keeping geo lookup best-effort.
type GeoResolver struct {
	reader *geoip2.Reader
}

// NewGeoResolver opens the GeoIP database at path. An unreadable database is
// logged and yields a degraded resolver rather than an error.
func NewGeoResolver(path string) *GeoResolver {
	if path == "" {
		LogInfo("GEOIP_DB_PATH not set, geo resolution disabled")
		return &GeoResolver{}
	}
	reader, err := geoip2.Open(path)
	if err != nil {
		LogError("Failed to open GeoIP database at %s: %v", path, err)
		return &GeoResolver{}
	}
	return &GeoResolver{reader: reader}
}

// Close releases the underlying database handle
func (g *GeoResolver) Close() {
	if g.reader != nil {
		g.reader.Close()
	}
}

// Resolve looks up the location for an IP string
func (g *GeoResolver) Resolve(ipStr string) GeoLocation {
	loc := GeoLocation{
		Country:  geoUnknown,
		City:     geoUnknown,
		Region:   geoUnknown,
		Timezone: geoUnknown,
	}

	if g.reader == nil {
		return loc
	}

	ip := net.ParseIP(strings.TrimSpace(ipStr))
	if ip == nil {
		return loc
	}

	record, err := g.reader.City(ip)
	if err != nil {
		LogDebug("Geo lookup failed for %s: %v", ipStr, err)
		return loc
	}

	if name := record.Country.Names["en"]; name != "" {
		loc.Country = name
	}
	loc.CountryCode = strings.ToLower(record.Country.IsoCode)
	if name := record.City.Names["en"]; name != "" {
		loc.City = name
	}
	if len(record.Subdivisions) > 0 {
		if name := record.Subdivisions[0].Names["en"]; name != "" {
			loc.Region = name
		}
	}
	if record.Location.TimeZone != "" {
		loc.Timezone = record.Location.TimeZone
	}

	return loc
}

// ClientIP extracts the caller IP, preferring the first entry of the
// X-Forwarded-For header over the socket address.
func ClientIP(forwardedFor, remoteAddr string) string {
	if forwardedFor != "" {
		parts := strings.Split(forwardedFor, ",")
		return strings.TrimSpace(parts[0])
	}
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		return remoteAddr
	}
	return host
}
