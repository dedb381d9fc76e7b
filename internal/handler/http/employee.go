package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/nology-tech/employee-creator-go/internal/config"
	"github.com/nology-tech/employee-creator-go/internal/domain/employee"
	"github.com/nology-tech/employee-creator-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Search(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService employee.EmployeeService
	pagination      config.PaginationConfig
}

func NewEmployeeHandler(employeeService employee.EmployeeService, pagination config.PaginationConfig) EmployeeHandler {
	return &EmployeeHandlerImpl{
		employeeService: employeeService,
		pagination:      pagination,
	}
}

// List implements EmployeeHandler. Without page/size parameters the
// whole collection comes back as a plain array; with them it comes back
// as a paged envelope.
func (h *EmployeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	if query.Get("page") == "" && query.Get("size") == "" {
		employees, err := h.employeeService.ListEmployees(r.Context())
		if err != nil {
			slog.Error("Failed to list employees", "error", err)
			response.HandleError(w, err)
			return
		}
		response.JSON(w, http.StatusOK, employees)
		return
	}

	page, size, ok := h.parsePaging(w, query.Get("page"), query.Get("size"))
	if !ok {
		return
	}

	result, err := h.employeeService.ListEmployeePage(r.Context(), employee.PageQuery{
		Page:          page,
		Size:          size,
		SortBy:        query.Get("sortBy"),
		SortDirection: query.Get("sortDirection"),
	})
	if err != nil {
		slog.Error("Failed to list employee page", "error", err)
		response.HandleError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, result)
}

// Search implements EmployeeHandler. Absent parameters leave their
// dimension unfiltered.
func (h *EmployeeHandlerImpl) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := employee.SearchFilter{
		SortBy:        query.Get("sortBy"),
		SortDirection: query.Get("sortDirection"),
	}

	if v := query.Get("firstName"); v != "" {
		filter.Name = &v
	}
	if v := query.Get("contractType"); v != "" {
		filter.ContractType = &v
	}
	if v := query.Get("employmentBasis"); v != "" {
		filter.EmploymentBasis = &v
	}
	if v := query.Get("ongoing"); v != "" {
		ongoing, err := strconv.ParseBool(v)
		if err != nil {
			response.BadRequest(w, "ongoing must be true or false", nil)
			return
		}
		filter.Ongoing = &ongoing
	}

	page, size, ok := h.parsePaging(w, query.Get("page"), query.Get("size"))
	if !ok {
		return
	}
	filter.Page = page
	filter.Size = size

	result, err := h.employeeService.SearchEmployees(r.Context(), filter)
	if err != nil {
		slog.Error("Failed to search employees", "error", err)
		response.HandleError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, result)
}

// GetByID implements EmployeeHandler.
func (h *EmployeeHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	found, err := h.employeeService.GetEmployee(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, found)
}

// Create implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create employee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.employeeService.CreateEmployee(r.Context(), req)
	if err != nil {
		slog.Error("Failed to create employee", "error", err)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/employees/%d", created.ID))
	response.JSON(w, http.StatusCreated, created)
}

// Update implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var req employee.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update employee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.employeeService.UpdateEmployee(r.Context(), id, req)
	if err != nil {
		slog.Error("Failed to update employee", "error", err, "employee_id", id)
		response.HandleError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

// Delete implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if err := h.employeeService.DeleteEmployee(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.NoContent(w)
}

func (h *EmployeeHandlerImpl) parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Employee id must be an integer", nil)
		return 0, false
	}
	return id, true
}

func (h *EmployeeHandlerImpl) parsePaging(w http.ResponseWriter, pageStr, sizeStr string) (int, int, bool) {
	page := 0
	if pageStr != "" {
		parsed, err := strconv.Atoi(pageStr)
		if err != nil || parsed < 0 {
			response.BadRequest(w, "page must be a non-negative integer", nil)
			return 0, 0, false
		}
		page = parsed
	}

	size := h.pagination.DefaultPageSize
	if sizeStr != "" {
		parsed, err := strconv.Atoi(sizeStr)
		if err != nil || parsed < 1 {
			response.BadRequest(w, "size must be a positive integer", nil)
			return 0, 0, false
		}
		size = parsed
	}
	if size > h.pagination.MaxPageSize {
		size = h.pagination.MaxPageSize
	}
	return page, size, true
}
