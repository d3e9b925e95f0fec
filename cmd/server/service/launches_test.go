package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stellarlog/launchdeck/common/logger"
	"github.com/stellarlog/launchdeck/common/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSource serves a fixed launch collection and crew roster
type fakeSource struct {
	launches    []models.Launch
	crew        map[string]models.CrewMember
	launchErr   error
	crewErrFor  string
	crewCalls   []string
	launchCalls int
}

func (f *fakeSource) Launches(ctx context.Context) ([]models.Launch, error) {
	f.launchCalls++
	if f.launchErr != nil {
		return nil, f.launchErr
	}
	return f.launches, nil
}

func (f *fakeSource) Launch(ctx context.Context, id string) (*models.Launch, error) {
	if f.launchErr != nil {
		return nil, f.launchErr
	}
	for i := range f.launches {
		if f.launches[i].ID == id {
			return &f.launches[i], nil
		}
	}
	return nil, errors.New("launch not found")
}

func (f *fakeSource) CrewMember(ctx context.Context, id string) (*models.CrewMember, error) {
	f.crewCalls = append(f.crewCalls, id)
	if id == f.crewErrFor {
		return nil, errors.New("crew endpoint down")
	}
	member, ok := f.crew[id]
	if !ok {
		return nil, errors.New("crew member not found")
	}
	return &member, nil
}

func testLaunches(n int) []models.Launch {
	launches := make([]models.Launch, 0, n)
	for i := 0; i < n; i++ {
		launches = append(launches, models.Launch{
			ID:   fmt.Sprintf("l%d", i+1),
			Name: fmt.Sprintf("Mission %d", i+1),
		})
	}
	return launches
}

func newLaunchService(source LaunchSource) *LaunchService {
	return NewLaunchService(source, logger.New("error", "json"))
}

func TestBrowse_PaginationWindows(t *testing.T) {
	tests := []struct {
		name       string
		total      int
		page       int
		perPage    int
		wantLen    int
		wantFirst  string
		wantPages  int
		wantPrev   bool
		wantNext   bool
	}{
		{"first page", 12, 1, 5, 5, "l1", 3, false, true},
		{"middle page", 12, 2, 5, 5, "l6", 3, true, true},
		{"short last page", 12, 3, 5, 2, "l11", 3, true, false},
		{"exact fit", 10, 2, 5, 5, "l6", 2, true, false},
		{"single page", 3, 1, 5, 3, "l1", 1, false, false},
		{"page out of range", 12, 9, 5, 0, "", 3, true, false},
		{"empty collection", 0, 1, 5, 0, "", 0, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newLaunchService(&fakeSource{launches: testLaunches(tt.total)})

			result, err := svc.Browse(context.Background(), tt.page, tt.perPage)
			require.NoError(t, err)

			assert.Len(t, result.Launches, tt.wantLen)
			if tt.wantLen > 0 {
				assert.Equal(t, tt.wantFirst, result.Launches[0].ID)
			}
			assert.Equal(t, tt.total, result.Total)
			assert.Equal(t, tt.page, result.Page)
			assert.Equal(t, tt.wantPages, result.TotalPages)
			assert.Equal(t, tt.wantPrev, result.HasPrev)
			assert.Equal(t, tt.wantNext, result.HasNext)
		})
	}
}

func TestBrowse_WindowMatchesSliceArithmetic(t *testing.T) {
	const total = 23
	for _, perPage := range []int{1, 4, 5, 23, 40} {
		all := testLaunches(total)
		svc := newLaunchService(&fakeSource{launches: all})

		wantPages := (total + perPage - 1) / perPage
		for page := 1; page <= wantPages+1; page++ {
			result, err := svc.Browse(context.Background(), page, perPage)
			require.NoError(t, err)

			start := (page - 1) * perPage
			end := start + perPage
			if start > total {
				start = total
			}
			if end > total {
				end = total
			}

			assert.Equal(t, all[start:end], result.Launches, "page %d size %d", page, perPage)
			assert.Equal(t, wantPages, result.TotalPages)
			assert.Equal(t, page > 1, result.HasPrev)
			assert.Equal(t, page < wantPages, result.HasNext)
		}
	}
}

func TestBrowse_DefaultsInvalidInputs(t *testing.T) {
	svc := newLaunchService(&fakeSource{launches: testLaunches(12)})

	result, err := svc.Browse(context.Background(), 0, 0)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Page)
	assert.Equal(t, DefaultPerPage, result.PerPage)
	assert.Len(t, result.Launches, DefaultPerPage)
}

func TestBrowse_RefetchesEveryCall(t *testing.T) {
	source := &fakeSource{launches: testLaunches(6)}
	svc := newLaunchService(source)

	for i := 0; i < 3; i++ {
		_, err := svc.Browse(context.Background(), 1, 5)
		require.NoError(t, err)
	}

	assert.Equal(t, 3, source.launchCalls)
}

func TestBrowse_RemoteFailurePropagates(t *testing.T) {
	svc := newLaunchService(&fakeSource{launchErr: errors.New("status 500")})

	result, err := svc.Browse(context.Background(), 1, 5)
	require.Error(t, err)
	assert.Nil(t, result)
}

func TestDetail_ResolvesCrewInOrder(t *testing.T) {
	source := &fakeSource{
		launches: []models.Launch{{ID: "l1", Name: "Crew-1", Crew: []string{"c3", "c1", "c2"}}},
		crew: map[string]models.CrewMember{
			"c1": {ID: "c1", Name: "One"},
			"c2": {ID: "c2", Name: "Two"},
			"c3": {ID: "c3", Name: "Three"},
		},
	}
	svc := newLaunchService(source)

	launch, crew, err := svc.Detail(context.Background(), "l1")
	require.NoError(t, err)

	assert.Equal(t, "Crew-1", launch.Name)
	require.Len(t, crew, 3)
	assert.Equal(t, []string{"c3", "c1", "c2"}, source.crewCalls)
	assert.Equal(t, "Three", crew[0].Name)
	assert.Equal(t, "One", crew[1].Name)
	assert.Equal(t, "Two", crew[2].Name)
}

func TestDetail_UncrewedLaunch(t *testing.T) {
	svc := newLaunchService(&fakeSource{
		launches: []models.Launch{{ID: "l1", Name: "Starlink-4", Crew: []string{}}},
	})

	launch, crew, err := svc.Detail(context.Background(), "l1")
	require.NoError(t, err)
	require.NotNil(t, launch)
	assert.Empty(t, crew)
}

func TestDetail_CrewFailureKeepsPartialPrefix(t *testing.T) {
	source := &fakeSource{
		launches: []models.Launch{{ID: "l1", Crew: []string{"c1", "c2", "c3"}}},
		crew: map[string]models.CrewMember{
			"c1": {ID: "c1", Name: "One"},
			"c3": {ID: "c3", Name: "Three"},
		},
		crewErrFor: "c2",
	}
	svc := newLaunchService(source)

	launch, crew, err := svc.Detail(context.Background(), "l1")
	require.NoError(t, err)
	require.NotNil(t, launch)

	// The loop stops at the failed member; c3 is never fetched
	require.Len(t, crew, 1)
	assert.Equal(t, "One", crew[0].Name)
	assert.Equal(t, []string{"c1", "c2"}, source.crewCalls)
}

func TestDetail_UnknownLaunchFails(t *testing.T) {
	svc := newLaunchService(&fakeSource{launches: testLaunches(1)})

	_, _, err := svc.Detail(context.Background(), "nope")
	require.Error(t, err)
}
