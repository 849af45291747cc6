package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLocation(t *testing.T) {
	testCases := []struct {
		name     string
		timezone string
		wantErr  bool
	}{
		{name: "shipped default", timezone: "Africa/Casablanca"},
		{name: "utc", timezone: "UTC"},
		{name: "host local", timezone: "Local"},
		{name: "unknown zone", timezone: "Morocco/Atlantis", wantErr: true},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := loadLocation(tt.timezone)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.timezone, loc.String())
		})
	}
}
