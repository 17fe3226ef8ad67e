package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientIP(t *testing.T) {
	tests := []struct {
		name         string
		forwardedFor string
		remoteAddr   string
		want         string
	}{
		{"forwarded single", "41.66.1.2", "10.0.0.1:4567", "41.66.1.2"},
		{"forwarded chain takes first", "41.66.1.2, 10.0.0.5, 10.0.0.6", "10.0.0.1:4567", "41.66.1.2"},
		{"forwarded with spaces", "  41.66.1.2 , 10.0.0.5", "10.0.0.1:4567", "41.66.1.2"},
		{"remote addr with port", "", "197.0.0.1:51234", "197.0.0.1"},
		{"remote addr without port", "", "197.0.0.1", "197.0.0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClientIP(tt.forwardedFor, tt.remoteAddr))
		})
	}
}

func TestGeoResolver_Degraded(t *testing.T) {
	// No database path: resolver still works, everything is Unknown
	resolver := NewGeoResolver("")
	defer resolver.Close()

	loc := resolver.Resolve("41.66.1.2")
	assert.Equal(t, "Unknown", loc.Country)
	assert.Equal(t, "Unknown", loc.City)
	assert.Equal(t, "Unknown", loc.Region)
	assert.Equal(t, "Unknown", loc.Timezone)
	assert.Empty(t, loc.CountryCode)
}

func TestGeoResolver_UnreadableDatabase(t *testing.T) {
	resolver := NewGeoResolver("/nonexistent/GeoLite2-City.mmdb")
	defer resolver.Close()

	loc := resolver.Resolve("41.66.1.2")
	assert.Equal(t, "Unknown", loc.Country)
}
