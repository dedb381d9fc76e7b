package client

import (
	"context"
	"sync"
	"time"
)

const (
	defaultPageSize         = 10
	defaultFilteredPageSize = 500
	defaultDebounce         = 300 * time.Millisecond
)

// listAPI is the slice of Client the list controller needs.
type listAPI interface {
	ListPage(ctx context.Context, page, size int, sortBy, sortDirection string) (Page, error)
	Search(ctx context.Context, query SearchQuery) (Page, error)
	Delete(ctx context.Context, id int64) error
}

// Filters are the user-facing search controls. The zero value means
// unfiltered browsing.
type Filters struct {
	Name            string
	ContractType    ContractTypeFilter
	EmploymentBasis EmploymentBasisFilter
	Status          StatusFilter
	SortBy          string
	SortDirection   string
}

// active reports whether any dimension narrows the result set. Sort
// settings alone do not switch the controller into filtered mode.
func (f Filters) active() bool {
	if f.Name != "" {
		return true
	}
	if f.ContractType != "" && f.ContractType != ContractAll {
		return true
	}
	if f.EmploymentBasis != "" && f.EmploymentBasis != BasisAll {
		return true
	}
	if f.Status != "" && f.Status != StatusAll {
		return true
	}
	return false
}

// ListSnapshot is an immutable view of the controller state for
// rendering.
type ListSnapshot struct {
	Employees     []Employee
	Loading       bool
	Err           error
	Page          int
	TotalPages    int
	TotalElements int64
	Filtered      bool
}

// ListOptions configures a ListController.
type ListOptions struct {
	// PageSize is the browsing-mode page size.
	PageSize int
	// FilteredPageSize is the single oversized page requested in
	// filtered mode, which normally renders without pagination. When a
	// result set outgrows even that page, the controller pages through
	// it instead of hiding the overflow.
	FilteredPageSize int
	// Debounce delays filter-driven fetches so fast typing coalesces
	// into one request.
	Debounce time.Duration
	Clock    Clock
	// OnChange is invoked after every state transition, outside the
	// controller lock.
	OnChange func(ListSnapshot)
}

// ListController drives the employee list view: debounced filtering,
// bounded pagination in browsing mode, and optimistic deletes. All
// methods are safe for concurrent use.
type ListController struct {
	api   listAPI
	clock Clock
	opts  ListOptions

	mu      sync.Mutex
	filters Filters
	page    int
	gen     uint64
	timer   Timer

	employees     []Employee
	loading       bool
	err           error
	totalPages    int
	totalElements int64
}

func NewListController(api listAPI, opts ListOptions) *ListController {
	if opts.PageSize <= 0 {
		opts.PageSize = defaultPageSize
	}
	if opts.FilteredPageSize <= 0 {
		opts.FilteredPageSize = defaultFilteredPageSize
	}
	if opts.Debounce <= 0 {
		opts.Debounce = defaultDebounce
	}
	if opts.Clock == nil {
		opts.Clock = NewRealClock()
	}
	return &ListController{
		api:   api,
		clock: opts.Clock,
		opts:  opts,
	}
}

// Load performs the initial fetch.
func (c *ListController) Load(ctx context.Context) {
	c.fetch(ctx)
}

// SetFilters replaces the filters, resets to the first page, and
// schedules a debounced fetch. Calling it again before the delay fires
// cancels the pending fetch.
func (c *ListController) SetFilters(ctx context.Context, filters Filters) {
	c.mu.Lock()
	c.filters = filters
	c.page = 0
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = c.clock.AfterFunc(c.opts.Debounce, func() {
		c.fetch(ctx)
	})
	c.mu.Unlock()
}

// Filters returns the current filter settings.
func (c *ListController) Filters() Filters {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filters
}

// SetPage jumps to a page immediately, without debounce. Out-of-range
// pages are ignored; until the first result lands every page is out of
// range. In filtered mode all matches normally fit on the one oversized
// page, so paging only engages when the server reported more pages.
func (c *ListController) SetPage(ctx context.Context, page int) {
	c.mu.Lock()
	if page < 0 || page >= c.totalPages || page == c.page {
		c.mu.Unlock()
		return
	}
	c.page = page
	c.mu.Unlock()
	c.fetch(ctx)
}

// NextPage advances one page in browsing mode.
func (c *ListController) NextPage(ctx context.Context) {
	c.mu.Lock()
	page := c.page + 1
	c.mu.Unlock()
	c.SetPage(ctx, page)
}

// PrevPage steps back one page in browsing mode.
func (c *ListController) PrevPage(ctx context.Context) {
	c.mu.Lock()
	page := c.page - 1
	c.mu.Unlock()
	c.SetPage(ctx, page)
}

// Refresh refetches the current view immediately.
func (c *ListController) Refresh(ctx context.Context) {
	c.fetch(ctx)
}

// DeleteEmployee removes the record optimistically, then calls the API.
// On failure the list is refetched so the view converges with the
// server.
func (c *ListController) DeleteEmployee(ctx context.Context, id int64) error {
	c.mu.Lock()
	for i, emp := range c.employees {
		if emp.ID == id {
			c.employees = append(c.employees[:i:i], c.employees[i+1:]...)
			c.totalElements--
			break
		}
	}
	c.mu.Unlock()
	c.notify()

	if err := c.api.Delete(ctx, id); err != nil {
		c.fetch(ctx)
		return err
	}
	return nil
}

// Snapshot returns the current view state.
func (c *ListController) Snapshot() ListSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Close cancels any pending debounced fetch.
func (c *ListController) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

// fetch issues the request for the current filters and page. A
// generation counter taken under the lock ensures that a response only
// lands if no newer request has started since.
func (c *ListController) fetch(ctx context.Context) {
	c.mu.Lock()
	c.gen++
	gen := c.gen
	c.loading = true
	filters := c.filters
	page := c.page
	c.mu.Unlock()
	c.notify()

	var (
		result Page
		err    error
	)
	if filters.active() {
		result, err = c.api.Search(ctx, SearchQuery{
			Name:            filters.Name,
			ContractType:    filters.ContractType,
			EmploymentBasis: filters.EmploymentBasis,
			Status:          filters.Status,
			SortBy:          filters.SortBy,
			SortDirection:   filters.SortDirection,
			Page:            page,
			Size:            c.opts.FilteredPageSize,
		})
	} else {
		result, err = c.api.ListPage(ctx, page, c.opts.PageSize, filters.SortBy, filters.SortDirection)
	}

	c.mu.Lock()
	if gen != c.gen {
		// A newer request superseded this one; drop the response.
		c.mu.Unlock()
		return
	}
	c.loading = false
	if err != nil {
		c.err = err
	} else {
		c.err = nil
		c.employees = result.Content
		c.totalPages = result.TotalPages
		c.totalElements = result.TotalElements
	}
	c.mu.Unlock()
	c.notify()
}

func (c *ListController) snapshotLocked() ListSnapshot {
	employees := make([]Employee, len(c.employees))
	copy(employees, c.employees)
	return ListSnapshot{
		Employees:     employees,
		Loading:       c.loading,
		Err:           c.err,
		Page:          c.page,
		TotalPages:    c.totalPages,
		TotalElements: c.totalElements,
		Filtered:      c.filters.active(),
	}
}

func (c *ListController) notify() {
	if c.opts.OnChange == nil {
		return
	}
	c.mu.Lock()
	snapshot := c.snapshotLocked()
	c.mu.Unlock()
	c.opts.OnChange(snapshot)
}
