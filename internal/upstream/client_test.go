package upstream

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUpstream mimics the single-endpoint API: the posted form fields select
// which response comes back.
func fakeUpstream(t *testing.T) *httptest.Server {
	t.Helper()
	imgPayload := base64.StdEncoding.EncodeToString([]byte("png-bytes"))

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, r.ParseForm())
		require.Equal(t, "test-token", r.PostFormValue("token"))

		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.PostFormValue("numer") != "":
			if r.PostFormValue("numer") == "missing" {
				json.NewEncoder(w).Encode(map[string]any{"status": 0, "img": ""})
				return
			}
			json.NewEncoder(w).Encode(map[string]any{
				"status": 1,
				"img":    "data:image/png;base64, " + imgPayload,
			})
		case r.PostFormValue("ulica") != "":
			json.NewEncoder(w).Encode([]map[string]string{
				{"id": "0", "name": "-Brak-"},
				{"id": "101", "name": "1 DJ"},
				{"id": "102", "name": "3 CA"},
			})
		default:
			json.NewEncoder(w).Encode([]map[string]string{
				{"id": "0", "name": " -Brak- "},
				{"id": "39936", "name": "Krakowska"},
				{"id": "40001", "name": "Wielicka"},
			})
		}
	}))
}

func TestClientCatalogs(t *testing.T) {
	srv := fakeUpstream(t)
	defer srv.Close()
	c := NewClient(srv.URL, "test-token")
	ctx := context.Background()

	t.Run("Should list streets without the placeholder row", func(t *testing.T) {
		streets, err := c.Streets(ctx)
		require.NoError(t, err)
		require.Len(t, streets, 2)
		assert.Equal(t, "39936", streets[0].ID)
		assert.Equal(t, "Krakowska", streets[0].Name)
		assert.Equal(t, "Wielicka", streets[1].Name)
	})

	t.Run("Should list house numbers for a street", func(t *testing.T) {
		numbers, err := c.HouseNumbers(ctx, "39936")
		require.NoError(t, err)
		require.Len(t, numbers, 2)
		assert.Equal(t, "1 DJ", numbers[0].Name)
		assert.Equal(t, "3 CA", numbers[1].Name)
	})
}

func TestClientScheduleImage(t *testing.T) {
	srv := fakeUpstream(t)
	defer srv.Close()
	c := NewClient(srv.URL, "test-token")
	ctx := context.Background()

	t.Run("Should decode the data-URI payload", func(t *testing.T) {
		img, err := c.ScheduleImage(ctx, "39936", "101")
		require.NoError(t, err)
		assert.Equal(t, []byte("png-bytes"), img)
	})

	t.Run("Should fail when upstream reports no image", func(t *testing.T) {
		_, err := c.ScheduleImage(ctx, "39936", "missing")
		assert.Error(t, err)
	})
}

func TestClientUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()
	c := NewClient(srv.URL, "test-token")

	_, err := c.Streets(context.Background())
	assert.Error(t, err)

	_, err = c.ScheduleImage(context.Background(), "1", "2")
	assert.Error(t, err)
}
