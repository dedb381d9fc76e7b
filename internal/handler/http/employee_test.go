package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/nology-tech/employee-creator-go/internal/config"
	"github.com/nology-tech/employee-creator-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeService struct {
	listResponse   []employee.EmployeeResponse
	pageResponse   employee.Page
	getResponse    employee.EmployeeResponse
	createResponse employee.EmployeeResponse
	err            error

	lastPageQuery employee.PageQuery
	lastFilter    employee.SearchFilter
	deletedID     int64
}

func (f *fakeEmployeeService) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.createResponse, f.err
}

func (f *fakeEmployeeService) GetEmployee(ctx context.Context, id int64) (employee.EmployeeResponse, error) {
	return f.getResponse, f.err
}

func (f *fakeEmployeeService) UpdateEmployee(ctx context.Context, id int64, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.getResponse, f.err
}

func (f *fakeEmployeeService) DeleteEmployee(ctx context.Context, id int64) error {
	f.deletedID = id
	return f.err
}

func (f *fakeEmployeeService) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	return f.listResponse, f.err
}

func (f *fakeEmployeeService) ListEmployeePage(ctx context.Context, query employee.PageQuery) (employee.Page, error) {
	f.lastPageQuery = query
	return f.pageResponse, f.err
}

func (f *fakeEmployeeService) SearchEmployees(ctx context.Context, filter employee.SearchFilter) (employee.Page, error) {
	f.lastFilter = filter
	return f.pageResponse, f.err
}

func newTestHandler(svc employee.EmployeeService) EmployeeHandler {
	return NewEmployeeHandler(svc, config.PaginationConfig{DefaultPageSize: 10, MaxPageSize: 200})
}

func routeWithID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestListEmployees(t *testing.T) {
	t.Run("no paging params returns a plain array", func(t *testing.T) {
		svc := &fakeEmployeeService{listResponse: []employee.EmployeeResponse{{ID: 1, FirstName: "Ada"}}}
		handler := newTestHandler(svc)

		rec := httptest.NewRecorder()
		handler.List(rec, httptest.NewRequest(http.MethodGet, "/api/employees", nil))

		require.Equal(t, http.StatusOK, rec.Code)

		var got []employee.EmployeeResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, "Ada", got[0].FirstName)
	})

	t.Run("paging params return the paged envelope", func(t *testing.T) {
		svc := &fakeEmployeeService{pageResponse: employee.Page{
			Content:       []employee.EmployeeResponse{{ID: 1}},
			TotalElements: 11,
			TotalPages:    3,
			Number:        1,
			Size:          5,
		}}
		handler := newTestHandler(svc)

		rec := httptest.NewRecorder()
		handler.List(rec, httptest.NewRequest(http.MethodGet, "/api/employees?page=1&size=5", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 1, svc.lastPageQuery.Page)
		assert.Equal(t, 5, svc.lastPageQuery.Size)

		var got employee.Page
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, int64(11), got.TotalElements)
	})

	t.Run("oversized page size is clamped", func(t *testing.T) {
		svc := &fakeEmployeeService{}
		handler := newTestHandler(svc)

		rec := httptest.NewRecorder()
		handler.List(rec, httptest.NewRequest(http.MethodGet, "/api/employees?page=0&size=9999", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 200, svc.lastPageQuery.Size)
	})

	t.Run("negative page is rejected", func(t *testing.T) {
		handler := newTestHandler(&fakeEmployeeService{})

		rec := httptest.NewRecorder()
		handler.List(rec, httptest.NewRequest(http.MethodGet, "/api/employees?page=-1&size=5", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSearchEmployees(t *testing.T) {
	t.Run("absent params leave filters nil", func(t *testing.T) {
		svc := &fakeEmployeeService{}
		handler := newTestHandler(svc)

		rec := httptest.NewRecorder()
		handler.Search(rec, httptest.NewRequest(http.MethodGet, "/api/employees/search?page=0&size=10", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Nil(t, svc.lastFilter.Name)
		assert.Nil(t, svc.lastFilter.ContractType)
		assert.Nil(t, svc.lastFilter.EmploymentBasis)
		assert.Nil(t, svc.lastFilter.Ongoing)
	})

	t.Run("present params are forwarded", func(t *testing.T) {
		svc := &fakeEmployeeService{}
		handler := newTestHandler(svc)

		target := "/api/employees/search?firstName=ada&contractType=CONTRACT&employmentBasis=PART_TIME&ongoing=true&sortBy=startDate&sortDirection=desc"
		rec := httptest.NewRecorder()
		handler.Search(rec, httptest.NewRequest(http.MethodGet, target, nil))

		require.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, svc.lastFilter.Name)
		assert.Equal(t, "ada", *svc.lastFilter.Name)
		require.NotNil(t, svc.lastFilter.ContractType)
		assert.Equal(t, "CONTRACT", *svc.lastFilter.ContractType)
		require.NotNil(t, svc.lastFilter.Ongoing)
		assert.True(t, *svc.lastFilter.Ongoing)
		assert.Equal(t, "startDate", svc.lastFilter.SortBy)
		assert.Equal(t, "desc", svc.lastFilter.SortDirection)
	})

	t.Run("malformed ongoing is rejected", func(t *testing.T) {
		handler := newTestHandler(&fakeEmployeeService{})

		rec := httptest.NewRecorder()
		handler.Search(rec, httptest.NewRequest(http.MethodGet, "/api/employees/search?ongoing=maybe", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetEmployee(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc := &fakeEmployeeService{getResponse: employee.EmployeeResponse{ID: 7, FirstName: "Grace"}}
		handler := newTestHandler(svc)

		req := routeWithID(httptest.NewRequest(http.MethodGet, "/api/employees/7", nil), "7")
		rec := httptest.NewRecorder()
		handler.GetByID(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("not found maps to 404", func(t *testing.T) {
		svc := &fakeEmployeeService{err: employee.ErrEmployeeNotFound}
		handler := newTestHandler(svc)

		req := routeWithID(httptest.NewRequest(http.MethodGet, "/api/employees/99", nil), "99")
		rec := httptest.NewRecorder()
		handler.GetByID(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("non-numeric id maps to 400", func(t *testing.T) {
		handler := newTestHandler(&fakeEmployeeService{})

		req := routeWithID(httptest.NewRequest(http.MethodGet, "/api/employees/abc", nil), "abc")
		rec := httptest.NewRecorder()
		handler.GetByID(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCreateEmployeeHandler(t *testing.T) {
	t.Run("created with location header", func(t *testing.T) {
		svc := &fakeEmployeeService{createResponse: employee.EmployeeResponse{ID: 42}}
		handler := newTestHandler(svc)

		body, err := json.Marshal(employee.CreateEmployeeRequest{FirstName: "Ada"})
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		handler.Create(rec, httptest.NewRequest(http.MethodPost, "/api/employees", bytes.NewReader(body)))

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "/api/employees/42", rec.Header().Get("Location"))
	})

	t.Run("duplicate email maps to 409", func(t *testing.T) {
		svc := &fakeEmployeeService{err: employee.ErrEmailExists}
		handler := newTestHandler(svc)

		rec := httptest.NewRecorder()
		handler.Create(rec, httptest.NewRequest(http.MethodPost, "/api/employees", bytes.NewReader([]byte(`{}`))))

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("malformed body maps to 400", func(t *testing.T) {
		handler := newTestHandler(&fakeEmployeeService{})

		rec := httptest.NewRecorder()
		handler.Create(rec, httptest.NewRequest(http.MethodPost, "/api/employees", bytes.NewReader([]byte(`{`))))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDeleteEmployeeHandler(t *testing.T) {
	t.Run("deleted returns 204", func(t *testing.T) {
		svc := &fakeEmployeeService{}
		handler := newTestHandler(svc)

		req := routeWithID(httptest.NewRequest(http.MethodDelete, "/api/employees/3", nil), "3")
		rec := httptest.NewRecorder()
		handler.Delete(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, int64(3), svc.deletedID)
	})

	t.Run("missing employee returns 404", func(t *testing.T) {
		svc := &fakeEmployeeService{err: employee.ErrEmployeeNotFound}
		handler := newTestHandler(svc)

		req := routeWithID(httptest.NewRequest(http.MethodDelete, "/api/employees/3", nil), "3")
		rec := httptest.NewRecorder()
		handler.Delete(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
