package redis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr string
	}{
		{name: "defaults", config: NewRedisConfig()},
		{name: "empty host", config: NewRedisConfig().WithHost(""), wantErr: "host cannot be empty"},
		{name: "bad port", config: NewRedisConfig().WithPort(70000), wantErr: "invalid port"},
		{name: "bad database", config: NewRedisConfig().WithDatabase(16), wantErr: "invalid database"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestNewClient_RejectsInvalidConfig(t *testing.T) {
	_, err := NewClient(NewRedisConfig().WithPort(0))
	assert.ErrorContains(t, err, "invalid Redis configuration")
}

func TestPublisher_ChannelName(t *testing.T) {
	client, err := NewClient(NewRedisConfig().WithPassword("secret"))
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	assert.Equal(t, "weather-view::state", NewPublisher(client, "weather-view").ChannelName("state"))
	assert.Equal(t, "state", NewPublisher(client, "").ChannelName("state"))
	assert.Equal(t, "localhost:6379", client.GetConfig().Addr())
}
