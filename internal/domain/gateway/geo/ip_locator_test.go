package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-view/internal/domain/model"
)

func TestIPLocator_CurrentPosition(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		delay   time.Duration
		want    model.Coordinates
		wantErr error
	}{
		{
			name:   "success",
			status: http.StatusOK,
			body:   `{"status":"success","lat":24.1477,"lon":120.6736}`,
			want:   model.Coordinates{Latitude: 24.1477, Longitude: 120.6736},
		},
		{
			name:    "lookup failure",
			status:  http.StatusOK,
			body:    `{"status":"fail","message":"private range"}`,
			wantErr: ErrPositionUnavailable,
		},
		{
			name:    "http error",
			status:  http.StatusTooManyRequests,
			body:    `{}`,
			wantErr: ErrPositionUnavailable,
		},
		{
			name:    "timeout",
			status:  http.StatusOK,
			body:    `{"status":"success","lat":1,"lon":2}`,
			delay:   500 * time.Millisecond,
			wantErr: ErrTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/json/", r.URL.Path)
				assert.Equal(t, ipLookupFields, r.URL.Query().Get("fields"))
				if tt.delay > 0 {
					select {
					case <-time.After(tt.delay):
					case <-r.Context().Done():
						return
					}
				}
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			locator := NewIPLocator(server.URL)
			got, err := locator.CurrentPosition(context.Background(), PositionOptions{Timeout: 100 * time.Millisecond})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStaticLocator_CurrentPosition(t *testing.T) {
	want := model.Coordinates{Latitude: 23.5, Longitude: 121}
	locator := NewStaticLocator(want)

	got, err := locator.CurrentPosition(context.Background(), PositionOptions{})
	require.NoError(t, err)
	assert.Equal(t, want, got)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = locator.CurrentPosition(ctx, PositionOptions{})
	assert.ErrorIs(t, err, context.Canceled)
}
