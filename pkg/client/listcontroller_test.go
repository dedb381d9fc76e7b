package client

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTimer struct {
	deadline time.Time
	fn       func()
	stopped  bool
}

func (t *fakeTimer) Stop() bool {
	wasRunning := !t.stopped
	t.stopped = true
	return wasRunning
}

// fakeClock fires AfterFunc callbacks only when advanced, so debounce
// behaviour is deterministic.
type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*fakeTimer
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) AfterFunc(d time.Duration, fn func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{deadline: c.now.Add(d), fn: fn}
	c.timers = append(c.timers, t)
	return t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	var due []*fakeTimer
	for _, t := range c.timers {
		if !t.stopped && !t.deadline.After(c.now) {
			t.stopped = true
			due = append(due, t)
		}
	}
	c.mu.Unlock()

	for _, t := range due {
		t.fn()
	}
}

type fakeListAPI struct {
	mu          sync.Mutex
	listCalls   []int // pages requested
	searchCalls []SearchQuery
	deleteCalls []int64

	listPage  Page
	searchFn  func(SearchQuery) (Page, error)
	deleteErr error
}

func (f *fakeListAPI) ListPage(ctx context.Context, page, size int, sortBy, sortDirection string) (Page, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls = append(f.listCalls, page)
	result := f.listPage
	result.Number = page
	result.Size = size
	return result, nil
}

func (f *fakeListAPI) Search(ctx context.Context, query SearchQuery) (Page, error) {
	f.mu.Lock()
	f.searchCalls = append(f.searchCalls, query)
	f.mu.Unlock()
	if f.searchFn != nil {
		return f.searchFn(query)
	}
	return Page{}, nil
}

func (f *fakeListAPI) Delete(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleteCalls = append(f.deleteCalls, id)
	return f.deleteErr
}

func newTestController(api *fakeListAPI, clock *fakeClock) *ListController {
	return NewListController(api, ListOptions{
		PageSize:         10,
		FilteredPageSize: 500,
		Debounce:         300 * time.Millisecond,
		Clock:            clock,
	})
}

func TestListControllerBrowsing(t *testing.T) {
	t.Run("initial load fetches page zero", func(t *testing.T) {
		api := &fakeListAPI{listPage: Page{
			Content:       []Employee{{ID: 1}, {ID: 2}},
			TotalElements: 12,
			TotalPages:    2,
		}}
		c := newTestController(api, newFakeClock())

		c.Load(context.Background())

		snap := c.Snapshot()
		assert.False(t, snap.Loading)
		assert.Len(t, snap.Employees, 2)
		assert.Equal(t, 0, snap.Page)
		assert.Equal(t, 2, snap.TotalPages)
		assert.Equal(t, []int{0}, api.listCalls)
	})

	t.Run("next and prev are bounded", func(t *testing.T) {
		api := &fakeListAPI{listPage: Page{TotalPages: 2}}
		c := newTestController(api, newFakeClock())
		c.Load(context.Background())

		c.NextPage(context.Background())
		assert.Equal(t, 1, c.Snapshot().Page)

		// Already on the last page; no fetch happens.
		c.NextPage(context.Background())
		assert.Equal(t, 1, c.Snapshot().Page)
		assert.Equal(t, []int{0, 1}, api.listCalls)

		c.PrevPage(context.Background())
		assert.Equal(t, 0, c.Snapshot().Page)

		c.PrevPage(context.Background())
		assert.Equal(t, 0, c.Snapshot().Page)
		assert.Equal(t, []int{0, 1, 0}, api.listCalls)
	})

	t.Run("page change is immediate, no debounce", func(t *testing.T) {
		api := &fakeListAPI{listPage: Page{TotalPages: 3}}
		clock := newFakeClock()
		c := newTestController(api, clock)
		c.Load(context.Background())

		c.SetPage(context.Background(), 2)

		// No clock advance needed.
		assert.Equal(t, []int{0, 2}, api.listCalls)
	})

	t.Run("page change before the first load is ignored", func(t *testing.T) {
		api := &fakeListAPI{listPage: Page{TotalPages: 3}}
		c := newTestController(api, newFakeClock())

		c.SetPage(context.Background(), 2)

		assert.Empty(t, api.listCalls)
		assert.Equal(t, 0, c.Snapshot().Page)
	})
}

func TestListControllerFiltering(t *testing.T) {
	t.Run("rapid filter changes collapse into one request", func(t *testing.T) {
		api := &fakeListAPI{}
		clock := newFakeClock()
		c := newTestController(api, clock)

		c.SetFilters(context.Background(), Filters{Name: "a"})
		clock.Advance(100 * time.Millisecond)
		c.SetFilters(context.Background(), Filters{Name: "ad"})
		clock.Advance(100 * time.Millisecond)
		c.SetFilters(context.Background(), Filters{Name: "ada"})

		// Nothing fired yet.
		assert.Empty(t, api.searchCalls)

		clock.Advance(300 * time.Millisecond)

		require.Len(t, api.searchCalls, 1)
		assert.Equal(t, "ada", api.searchCalls[0].Name)
	})

	t.Run("filtered mode requests one oversized page", func(t *testing.T) {
		api := &fakeListAPI{}
		clock := newFakeClock()
		c := newTestController(api, clock)

		c.SetFilters(context.Background(), Filters{Status: StatusActive})
		clock.Advance(300 * time.Millisecond)

		require.Len(t, api.searchCalls, 1)
		assert.Equal(t, 0, api.searchCalls[0].Page)
		assert.Equal(t, 500, api.searchCalls[0].Size)
		assert.True(t, c.Snapshot().Filtered)
	})

	t.Run("filter change resets to page zero", func(t *testing.T) {
		api := &fakeListAPI{listPage: Page{TotalPages: 3}}
		clock := newFakeClock()
		c := newTestController(api, clock)
		c.Load(context.Background())
		c.SetPage(context.Background(), 2)
		require.Equal(t, 2, c.Snapshot().Page)

		c.SetFilters(context.Background(), Filters{Name: "ada"})
		clock.Advance(300 * time.Millisecond)

		assert.Equal(t, 0, c.Snapshot().Page)
	})

	t.Run("matches beyond the oversized page stay reachable", func(t *testing.T) {
		// The server caps page sizes, so a huge match set can span
		// several filtered pages. Paging must engage rather than
		// silently dropping the overflow.
		api := &fakeListAPI{searchFn: func(q SearchQuery) (Page, error) {
			return Page{
				Content:       []Employee{{ID: int64(q.Page + 1)}},
				TotalElements: 1200,
				TotalPages:    3,
				Number:        q.Page,
				Last:          q.Page == 2,
			}, nil
		}}
		clock := newFakeClock()
		c := newTestController(api, clock)

		c.SetFilters(context.Background(), Filters{Name: "a"})
		clock.Advance(300 * time.Millisecond)

		c.NextPage(context.Background())

		require.Len(t, api.searchCalls, 2)
		assert.Equal(t, 1, api.searchCalls[1].Page)
		assert.Equal(t, 500, api.searchCalls[1].Size)
		assert.Equal(t, "a", api.searchCalls[1].Name)
		assert.Equal(t, 1, c.Snapshot().Page)
	})

	t.Run("sort alone stays in browsing mode", func(t *testing.T) {
		api := &fakeListAPI{listPage: Page{TotalPages: 1}}
		clock := newFakeClock()
		c := newTestController(api, clock)

		c.SetFilters(context.Background(), Filters{SortBy: "startDate", SortDirection: "desc"})
		clock.Advance(300 * time.Millisecond)

		assert.Empty(t, api.searchCalls)
		assert.Equal(t, []int{0}, api.listCalls)
		assert.False(t, c.Snapshot().Filtered)
	})

	t.Run("stale response is dropped", func(t *testing.T) {
		release := make(chan struct{})
		started := make(chan struct{}, 2)
		api := &fakeListAPI{searchFn: func(q SearchQuery) (Page, error) {
			started <- struct{}{}
			if q.Name == "old" {
				<-release
				return Page{Content: []Employee{{ID: 1, FirstName: "old"}}}, nil
			}
			return Page{Content: []Employee{{ID: 2, FirstName: "new"}}}, nil
		}}
		clock := newFakeClock()
		c := newTestController(api, clock)

		c.SetFilters(context.Background(), Filters{Name: "old"})
		go clock.Advance(300 * time.Millisecond)
		<-started // first request in flight, blocked

		c.SetFilters(context.Background(), Filters{Name: "new"})
		clock.Advance(300 * time.Millisecond)
		<-started

		// The newer response lands first; the stale one must not
		// overwrite it.
		require.Eventually(t, func() bool {
			snap := c.Snapshot()
			return len(snap.Employees) == 1 && snap.Employees[0].FirstName == "new"
		}, time.Second, 5*time.Millisecond)

		close(release)

		assert.Never(t, func() bool {
			snap := c.Snapshot()
			return len(snap.Employees) > 0 && snap.Employees[0].FirstName == "old"
		}, 50*time.Millisecond, 5*time.Millisecond)
	})
}

func TestListControllerDelete(t *testing.T) {
	t.Run("removes the record optimistically", func(t *testing.T) {
		api := &fakeListAPI{listPage: Page{
			Content:       []Employee{{ID: 1}, {ID: 2}},
			TotalElements: 2,
			TotalPages:    1,
		}}
		c := newTestController(api, newFakeClock())
		c.Load(context.Background())

		require.NoError(t, c.DeleteEmployee(context.Background(), 1))

		snap := c.Snapshot()
		require.Len(t, snap.Employees, 1)
		assert.Equal(t, int64(2), snap.Employees[0].ID)
		assert.Equal(t, int64(1), snap.TotalElements)
		assert.Equal(t, []int64{1}, api.deleteCalls)
	})

	t.Run("failed delete refetches", func(t *testing.T) {
		api := &fakeListAPI{
			listPage: Page{
				Content:       []Employee{{ID: 1}, {ID: 2}},
				TotalElements: 2,
				TotalPages:    1,
			},
			deleteErr: errors.New("boom"),
		}
		c := newTestController(api, newFakeClock())
		c.Load(context.Background())

		err := c.DeleteEmployee(context.Background(), 1)
		assert.Error(t, err)

		// The refetch restores the server's view.
		snap := c.Snapshot()
		assert.Len(t, snap.Employees, 2)
		assert.Equal(t, int64(2), snap.TotalElements)
	})
}
