package resource

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-view/configs"
)

func TestLoad_ResolvesPlaceholders(t *testing.T) {
	t.Setenv("WEATHER_VIEW_TEST_PORT", "9090")

	yml := `
app:
  server:
    port: ${WEATHER_VIEW_TEST_PORT:8080}
    context-path: ${WEATHER_VIEW_TEST_UNSET:/weather-view}
    empty: ${WEATHER_VIEW_TEST_UNSET:}
  weather:
    min-loading: 1500ms
    fallback-city: 臺中市
    enabled: true
`
	require.NoError(t, Load(strings.NewReader(yml)))

	assert.Equal(t, 9090, GetInt("app.server.port"))
	assert.Equal(t, "/weather-view", GetString("app.server.context-path"))
	assert.Equal(t, "", GetString("app.server.empty"))
	assert.Equal(t, 1500*time.Millisecond, GetDuration("app.weather.min-loading"))
	assert.Equal(t, "臺中市", GetString("app.weather.fallback-city"))
	assert.True(t, GetBool("app.weather.enabled"))
}

func TestLoad_EmbeddedDefaults(t *testing.T) {
	require.NoError(t, Load(bytes.NewReader(configs.ApplicationYAML)))

	assert.Equal(t, "/api/weather", GetString("app.weather.api.path"))
}

func TestResolveEnvVariable_LeavesPlainValues(t *testing.T) {
	assert.Equal(t, "plain", resolveEnvVariable("plain"))
	assert.Equal(t, "prefix ${X:y}", resolveEnvVariable("prefix ${X:y}"))
}
