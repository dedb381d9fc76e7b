// Package client is a typed HTTP client for the employee API, plus the
// stateful controllers (list browsing, form editing) that front-ends
// build on.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// ErrNotFound is returned when the server answers 404 for a record.
var ErrNotFound = errors.New("employee not found")

// APIError carries the HTTP status and the server's error envelope.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Details    map[string]string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error [%d] %s: %s", e.StatusCode, e.Code, e.Message)
}

// Is lets errors.Is(err, ErrNotFound) match 404 responses.
func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// Employee is the wire shape of a single record.
type Employee struct {
	ID                 int64      `json:"id"`
	FirstName          string     `json:"firstName"`
	MiddleName         *string    `json:"middleName,omitempty"`
	LastName           string     `json:"lastName"`
	Email              string     `json:"email"`
	MobileNumber       string     `json:"mobileNumber"`
	ResidentialAddress string     `json:"residentialAddress"`
	ContractType       string     `json:"contractType"`
	EmploymentBasis    string     `json:"employmentBasis"`
	Role               string     `json:"role"`
	StartDate          string     `json:"startDate"`
	FinishDate         *string    `json:"finishDate,omitempty"`
	Ongoing            bool       `json:"ongoing"`
	HoursPerWeek       *int       `json:"hoursPerWeek,omitempty"`
	ThumbnailURL       *string    `json:"thumbnailUrl,omitempty"`
	CreatedAt          *time.Time `json:"createdAt,omitempty"`
	UpdatedAt          *time.Time `json:"updatedAt,omitempty"`
}

// FullName joins the name parts, skipping an absent middle name.
func (e Employee) FullName() string {
	if e.MiddleName != nil {
		return e.FirstName + " " + *e.MiddleName + " " + e.LastName
	}
	return e.FirstName + " " + e.LastName
}

// Page is the paged envelope produced by the list/search endpoints.
type Page struct {
	Content          []Employee `json:"content"`
	TotalElements    int64      `json:"totalElements"`
	TotalPages       int        `json:"totalPages"`
	Number           int        `json:"number"`
	Size             int        `json:"size"`
	First            bool       `json:"first"`
	Last             bool       `json:"last"`
	NumberOfElements int        `json:"numberOfElements"`
}

// DashboardStats mirrors the stats endpoint payload.
type DashboardStats struct {
	TotalEmployees int64 `json:"totalEmployees"`

	ActiveCount   int64 `json:"activeCount"`
	InactiveCount int64 `json:"inactiveCount"`

	FullTimeCount int64 `json:"fullTimeCount"`
	PartTimeCount int64 `json:"partTimeCount"`

	PermanentCount int64 `json:"permanentCount"`
	ContractCount  int64 `json:"contractCount"`

	AdminCount      int64 `json:"adminCount"`
	HRCount         int64 `json:"hrCount"`
	ManagerCount    int64 `json:"managerCount"`
	EmployeeCount   int64 `json:"employeeCount"`
	InternCount     int64 `json:"internCount"`
	ContractorCount int64 `json:"contractorCount"`

	ActiveFullTimeCount   int64 `json:"activeFullTimeCount"`
	ActivePartTimeCount   int64 `json:"activePartTimeCount"`
	InactiveFullTimeCount int64 `json:"inactiveFullTimeCount"`
	InactivePartTimeCount int64 `json:"inactivePartTimeCount"`
}

// Filter enums. The ALL value means the dimension is unfiltered and is
// never sent on the wire.
type ContractTypeFilter string

const (
	ContractAll       ContractTypeFilter = "ALL"
	ContractPermanent ContractTypeFilter = "PERMANENT"
	ContractContract  ContractTypeFilter = "CONTRACT"
)

type EmploymentBasisFilter string

const (
	BasisAll      EmploymentBasisFilter = "ALL"
	BasisFullTime EmploymentBasisFilter = "FULL_TIME"
	BasisPartTime EmploymentBasisFilter = "PART_TIME"
)

type StatusFilter string

const (
	StatusAll      StatusFilter = "ALL"
	StatusActive   StatusFilter = "ACTIVE"
	StatusInactive StatusFilter = "INACTIVE"
)

// SearchQuery holds the search parameters. Zero values and ALL filters
// are omitted from the request.
type SearchQuery struct {
	Name            string
	ContractType    ContractTypeFilter
	EmploymentBasis EmploymentBasisFilter
	Status          StatusFilter
	SortBy          string
	SortDirection   string
	Page            int
	Size            int
}

// EmployeeInput is the payload for creating an employee. Empty optional
// fields are omitted.
type EmployeeInput struct {
	FirstName          string  `json:"firstName"`
	MiddleName         *string `json:"middleName,omitempty"`
	LastName           string  `json:"lastName"`
	Email              string  `json:"email"`
	MobileNumber       string  `json:"mobileNumber"`
	ResidentialAddress string  `json:"residentialAddress"`
	ContractType       string  `json:"contractType"`
	EmploymentBasis    string  `json:"employmentBasis"`
	Role               string  `json:"role"`
	StartDate          string  `json:"startDate"`
	FinishDate         *string `json:"finishDate,omitempty"`
	Ongoing            bool    `json:"ongoing"`
	HoursPerWeek       *int    `json:"hoursPerWeek,omitempty"`
	ThumbnailURL       *string `json:"thumbnailUrl,omitempty"`
}

// EmployeeUpdate is a partial update; only non-nil fields are sent.
type EmployeeUpdate struct {
	FirstName          *string `json:"firstName,omitempty"`
	MiddleName         *string `json:"middleName,omitempty"`
	LastName           *string `json:"lastName,omitempty"`
	Email              *string `json:"email,omitempty"`
	MobileNumber       *string `json:"mobileNumber,omitempty"`
	ResidentialAddress *string `json:"residentialAddress,omitempty"`
	ContractType       *string `json:"contractType,omitempty"`
	EmploymentBasis    *string `json:"employmentBasis,omitempty"`
	Role               *string `json:"role,omitempty"`
	StartDate          *string `json:"startDate,omitempty"`
	FinishDate         *string `json:"finishDate,omitempty"`
	Ongoing            *bool   `json:"ongoing,omitempty"`
	HoursPerWeek       *int    `json:"hoursPerWeek,omitempty"`
	ThumbnailURL       *string `json:"thumbnailUrl,omitempty"`
}

// IsEmpty reports whether the update carries no changes.
func (u EmployeeUpdate) IsEmpty() bool {
	return u == EmployeeUpdate{}
}

// Client talks to the employee API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListAll fetches the whole collection as a plain array.
func (c *Client) ListAll(ctx context.Context) ([]Employee, error) {
	var employees []Employee
	if err := c.do(ctx, http.MethodGet, "/api/employees", nil, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

// ListPage fetches one page of the unfiltered collection.
func (c *Client) ListPage(ctx context.Context, page, size int, sortBy, sortDirection string) (Page, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("size", strconv.Itoa(size))
	if sortBy != "" {
		params.Set("sortBy", sortBy)
	}
	if sortDirection != "" {
		params.Set("sortDirection", sortDirection)
	}

	var result Page
	if err := c.do(ctx, http.MethodGet, "/api/employees?"+params.Encode(), nil, &result); err != nil {
		return Page{}, err
	}
	return result, nil
}

// Search runs a filtered query. ALL filters and empty strings never
// appear in the URL, so the server treats them as unfiltered.
func (c *Client) Search(ctx context.Context, query SearchQuery) (Page, error) {
	params := url.Values{}
	if query.Name != "" {
		params.Set("firstName", query.Name)
	}
	if query.ContractType != "" && query.ContractType != ContractAll {
		params.Set("contractType", string(query.ContractType))
	}
	if query.EmploymentBasis != "" && query.EmploymentBasis != BasisAll {
		params.Set("employmentBasis", string(query.EmploymentBasis))
	}
	switch query.Status {
	case StatusActive:
		params.Set("ongoing", "true")
	case StatusInactive:
		params.Set("ongoing", "false")
	}
	if query.SortBy != "" {
		params.Set("sortBy", query.SortBy)
	}
	if query.SortDirection != "" {
		params.Set("sortDirection", query.SortDirection)
	}
	params.Set("page", strconv.Itoa(query.Page))
	if query.Size > 0 {
		params.Set("size", strconv.Itoa(query.Size))
	}

	var result Page
	if err := c.do(ctx, http.MethodGet, "/api/employees/search?"+params.Encode(), nil, &result); err != nil {
		return Page{}, err
	}
	return result, nil
}

// GetByID fetches a single record.
func (c *Client) GetByID(ctx context.Context, id int64) (Employee, error) {
	var result Employee
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/employees/%d", id), nil, &result); err != nil {
		return Employee{}, err
	}
	return result, nil
}

// Create adds a new employee.
func (c *Client) Create(ctx context.Context, input EmployeeInput) (Employee, error) {
	var result Employee
	if err := c.do(ctx, http.MethodPost, "/api/employees", input, &result); err != nil {
		return Employee{}, err
	}
	return result, nil
}

// Update applies a partial update.
func (c *Client) Update(ctx context.Context, id int64, update EmployeeUpdate) (Employee, error) {
	var result Employee
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/employees/%d", id), update, &result); err != nil {
		return Employee{}, err
	}
	return result, nil
}

// Delete removes an employee.
func (c *Client) Delete(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/employees/%d", id), nil, nil)
}

// DashboardStats fetches the aggregate counts.
func (c *Client) DashboardStats(ctx context.Context) (DashboardStats, error) {
	var result DashboardStats
	if err := c.do(ctx, http.MethodGet, "/api/employees/stats", nil, &result); err != nil {
		return DashboardStats{}, err
	}
	return result, nil
}

type errorEnvelope struct {
	Error struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var envelope errorEnvelope
		if decodeErr := json.NewDecoder(resp.Body).Decode(&envelope); decodeErr == nil {
			apiErr.Code = envelope.Error.Code
			apiErr.Message = envelope.Error.Message
			apiErr.Details = envelope.Error.Details
		}
		return apiErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
