package clients

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stellarlog/launchdeck/common/config"
	"github.com/stellarlog/launchdeck/common/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, handler http.Handler) *SpaceXClient {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg, err := config.Load("launchdeck-test")
	require.NoError(t, err)
	cfg.SpaceX.BaseURL = srv.URL

	return NewSpaceXClient(cfg, logger.New("error", "json"))
}

func TestLaunches_ExtractsBrowseFields(t *testing.T) {
	payload := `[
		{
			"id": "l1",
			"name": "CRS-20",
			"date_utc": "2020-03-07T04:50:31.000Z",
			"rocket": "r1",
			"success": true,
			"links": {"patch": {"small": "https://images.example/crs20.png"}},
			"crew": []
		},
		{
			"id": "l2",
			"name": "Crew-1",
			"date_utc": "2020-11-16T00:27:00.000Z",
			"rocket": "r1",
			"crew": [{"crew": "c1", "role": "Commander"}, {"crew": "c2", "role": "Pilot"}]
		}
	]`

	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/launches", r.URL.Path)
		w.Write([]byte(payload))
	}))

	launches, err := client.Launches(context.Background())
	require.NoError(t, err)
	require.Len(t, launches, 2)

	first := launches[0]
	assert.Equal(t, "l1", first.ID)
	assert.Equal(t, "CRS-20", first.Name)
	assert.Equal(t, "r1", first.Rocket)
	assert.Equal(t, "https://images.example/crs20.png", first.PatchSmall)
	assert.Empty(t, first.Crew)
	require.NotNil(t, first.Success)
	assert.True(t, *first.Success)
	assert.Equal(t, 2020, first.DateUTC.Year())
	assert.JSONEq(t, `{
		"id": "l1",
		"name": "CRS-20",
		"date_utc": "2020-03-07T04:50:31.000Z",
		"rocket": "r1",
		"success": true,
		"links": {"patch": {"small": "https://images.example/crs20.png"}},
		"crew": []
	}`, string(first.Raw))

	second := launches[1]
	assert.Equal(t, []string{"c1", "c2"}, second.Crew)
	assert.Nil(t, second.Success)
}

func TestLaunches_CrewAsPlainIDs(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id": "l1", "name": "Demo-2", "crew": ["c9", "c7"]}]`))
	}))

	launches, err := client.Launches(context.Background())
	require.NoError(t, err)
	require.Len(t, launches, 1)
	assert.Equal(t, []string{"c9", "c7"}, launches[0].Crew)
}

func TestLaunches_ServerErrorIsRemoteFetchFailure(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	_, err := client.Launches(context.Background())
	require.ErrorIs(t, err, ErrRemoteFetch)
}

func TestLaunch_NotFoundIsRemoteFetchFailure(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))

	_, err := client.Launch(context.Background(), "missing")
	require.ErrorIs(t, err, ErrRemoteFetch)
}

func TestCrewMember(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/crew/c1", r.URL.Path)
		w.Write([]byte(`{
			"id": "c1",
			"name": "Robert Behnken",
			"agency": "NASA",
			"image": "https://images.example/behnken.png",
			"wikipedia": "https://en.wikipedia.org/wiki/Robert_L._Behnken"
		}`))
	}))

	member, err := client.CrewMember(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "Robert Behnken", member.Name)
	assert.Equal(t, "NASA", member.Agency)
}

func TestRockets_KeepsNestedMeasurements(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rockets", r.URL.Path)
		w.Write([]byte(`[{
			"id": "r1",
			"name": "Falcon 9",
			"description": "A two stage rocket",
			"height": {"meters": 70},
			"mass": {"kg": 549054},
			"first_flight": "2010-06-04",
			"cost_per_launch": 50000000,
			"success_rate_pct": 98,
			"active": true,
			"stages": 2,
			"boosters": 0,
			"wikipedia": "https://en.wikipedia.org/wiki/Falcon_9"
		}]`))
	}))

	rockets, err := client.Rockets(context.Background())
	require.NoError(t, err)
	require.Len(t, rockets, 1)

	rocket := rockets[0]
	assert.Equal(t, "Falcon 9", rocket.Name)
	require.NotNil(t, rocket.Height.Meters)
	assert.Equal(t, 70.0, *rocket.Height.Meters)
	require.NotNil(t, rocket.Mass.Kg)
	assert.Equal(t, int64(549054), *rocket.Mass.Kg)
	assert.Equal(t, "2010-06-04", rocket.FirstFlight)
}

func TestGetJSON_RespectsContext(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`[]`))
	}))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.Launches(ctx)
	require.ErrorIs(t, err, ErrRemoteFetch)
}
