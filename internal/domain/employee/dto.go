package employee

import (
	"strings"
	"time"

	"github.com/nology-tech/employee-creator-go/internal/pkg/validator"
)

// CreateEmployeeRequest is the payload for POST /api/employees. Optional
// string fields arrive as nil or non-empty; empty strings are normalised
// away before validation so the backend never stores "".
type CreateEmployeeRequest struct {
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

// Normalize trims whitespace and collapses empty optional fields to nil.
func (r *CreateEmployeeRequest) Normalize() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = strings.TrimSpace(r.Email)
	r.MobileNumber = strings.TrimSpace(r.MobileNumber)
	r.ResidentialAddress = strings.TrimSpace(r.ResidentialAddress)
	r.MiddleName = trimOptional(r.MiddleName)
	r.FinishDate = trimOptional(r.FinishDate)
	r.ThumbnailURL = trimOptional(r.ThumbnailURL)
}

func (r *CreateEmployeeRequest) Validate() error {
	r.Normalize()

	var errs validator.ValidationErrors

	if len(r.FirstName) < 2 {
		errs = append(errs, validator.ValidationError{Field: "firstName", Message: "first name must be at least 2 characters"})
	}
	if len(r.LastName) < 2 {
		errs = append(errs, validator.ValidationError{Field: "lastName", Message: "last name must be at least 2 characters"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if !validator.IsValidMobileNumber(r.MobileNumber) {
		errs = append(errs, validator.ValidationError{Field: "mobileNumber", Message: "must contain only digits and be at least 10 characters"})
	}
	if len(r.ResidentialAddress) < 5 {
		errs = append(errs, validator.ValidationError{Field: "residentialAddress", Message: "address must be at least 5 characters"})
	}
	if !validator.IsInSlice(r.ContractType, ContractTypes()) {
		errs = append(errs, validator.ValidationError{Field: "contractType", Message: "must be PERMANENT or CONTRACT"})
	}
	if !validator.IsInSlice(r.EmploymentBasis, EmploymentBases()) {
		errs = append(errs, validator.ValidationError{Field: "employmentBasis", Message: "must be FULL_TIME or PART_TIME"})
	}
	if !validator.IsInSlice(r.Role, Roles()) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "must be a valid role"})
	}

	startDate, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "startDate", Message: "must be a valid date (YYYY-MM-DD)"})
	}

	if r.Ongoing {
		// Finish date is meaningless for ongoing employment; drop it
		// rather than reject, matching the submission contract.
		r.FinishDate = nil
	} else if r.FinishDate != nil {
		finishDate, finishOK := validator.IsValidDate(*r.FinishDate)
		if !finishOK {
			errs = append(errs, validator.ValidationError{Field: "finishDate", Message: "must be a valid date (YYYY-MM-DD)"})
		} else if startOK && !finishDate.After(startDate) {
			errs = append(errs, validator.ValidationError{Field: "finishDate", Message: "finish date must be after the start date"})
		}
	}

	if r.HoursPerWeek != nil && (*r.HoursPerWeek < 1 || *r.HoursPerWeek > 168) {
		errs = append(errs, validator.ValidationError{Field: "hoursPerWeek", Message: "must be between 1 and 168"})
	}
	if r.ThumbnailURL != nil && !validator.IsValidURL(*r.ThumbnailURL) {
		errs = append(errs, validator.ValidationError{Field: "thumbnailUrl", Message: "must be a well-formed URL"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateEmployeeRequest carries a partial update; only non-nil fields
// are written.
type UpdateEmployeeRequest struct {
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

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FirstName != nil && len(strings.TrimSpace(*r.FirstName)) < 2 {
		errs = append(errs, validator.ValidationError{Field: "firstName", Message: "first name must be at least 2 characters"})
	}
	if r.LastName != nil && len(strings.TrimSpace(*r.LastName)) < 2 {
		errs = append(errs, validator.ValidationError{Field: "lastName", Message: "last name must be at least 2 characters"})
	}
	if r.Email != nil && !validator.IsValidEmail(strings.TrimSpace(*r.Email)) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if r.MobileNumber != nil && !validator.IsValidMobileNumber(strings.TrimSpace(*r.MobileNumber)) {
		errs = append(errs, validator.ValidationError{Field: "mobileNumber", Message: "must contain only digits and be at least 10 characters"})
	}
	if r.ResidentialAddress != nil && len(strings.TrimSpace(*r.ResidentialAddress)) < 5 {
		errs = append(errs, validator.ValidationError{Field: "residentialAddress", Message: "address must be at least 5 characters"})
	}
	if r.ContractType != nil && !validator.IsInSlice(*r.ContractType, ContractTypes()) {
		errs = append(errs, validator.ValidationError{Field: "contractType", Message: "must be PERMANENT or CONTRACT"})
	}
	if r.EmploymentBasis != nil && !validator.IsInSlice(*r.EmploymentBasis, EmploymentBases()) {
		errs = append(errs, validator.ValidationError{Field: "employmentBasis", Message: "must be FULL_TIME or PART_TIME"})
	}
	if r.Role != nil && !validator.IsInSlice(*r.Role, Roles()) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "must be a valid role"})
	}
	if r.StartDate != nil {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "startDate", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}
	if r.FinishDate != nil && *r.FinishDate != "" {
		if _, ok := validator.IsValidDate(*r.FinishDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "finishDate", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}
	if r.HoursPerWeek != nil && (*r.HoursPerWeek < 1 || *r.HoursPerWeek > 168) {
		errs = append(errs, validator.ValidationError{Field: "hoursPerWeek", Message: "must be between 1 and 168"})
	}
	if r.ThumbnailURL != nil && *r.ThumbnailURL != "" && !validator.IsValidURL(*r.ThumbnailURL) {
		errs = append(errs, validator.ValidationError{Field: "thumbnailUrl", Message: "must be a well-formed URL"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// EmployeeResponse is the wire shape for a single record. Dates are
// emitted date-only, timestamps as RFC3339. Status and RecencyTag are
// derived at read time, never stored.
type EmployeeResponse struct {
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
	Status             Status     `json:"status,omitempty"`
	RecencyTag         RecencyTag `json:"recencyTag,omitempty"`
	CreatedAt          *time.Time `json:"createdAt,omitempty"`
	UpdatedAt          *time.Time `json:"updatedAt,omitempty"`
}

// Page is the paged envelope produced by the list/search endpoints.
type Page struct {
	Content          []EmployeeResponse `json:"content"`
	TotalElements    int64              `json:"totalElements"`
	TotalPages       int                `json:"totalPages"`
	Number           int                `json:"number"`
	Size             int                `json:"size"`
	First            bool               `json:"first"`
	Last             bool               `json:"last"`
	NumberOfElements int                `json:"numberOfElements"`
}

// PageQuery selects one page of the unfiltered collection.
type PageQuery struct {
	Page          int
	Size          int
	SortBy        string
	SortDirection string
}

// SearchFilter holds the optional search parameters. Nil means the
// dimension is unfiltered; "ALL" never reaches this struct.
type SearchFilter struct {
	Name            *string
	ContractType    *string
	EmploymentBasis *string
	Ongoing         *bool
	SortBy          string
	SortDirection   string
	Page            int
	Size            int
}

// ToResponse maps the entity onto its wire shape, deriving the status
// and recency tag as of now.
func (e Employee) ToResponse(now time.Time, w RecencyWindows) EmployeeResponse {
	resp := EmployeeResponse{
		ID:                 e.ID,
		FirstName:          e.FirstName,
		MiddleName:         e.MiddleName,
		LastName:           e.LastName,
		Email:              e.Email,
		MobileNumber:       e.MobileNumber,
		ResidentialAddress: e.ResidentialAddress,
		ContractType:       string(e.ContractType),
		EmploymentBasis:    string(e.EmploymentBasis),
		Role:               string(e.Role),
		StartDate:          e.StartDate.Format("2006-01-02"),
		Ongoing:            e.Ongoing,
		HoursPerWeek:       e.HoursPerWeek,
		ThumbnailURL:       e.ThumbnailURL,
		Status:             e.StatusAt(now),
		RecencyTag:         e.RecencyTagAt(now, w),
	}
	if e.FinishDate != nil {
		finish := e.FinishDate.Format("2006-01-02")
		resp.FinishDate = &finish
	}
	if !e.CreatedAt.IsZero() {
		createdAt := e.CreatedAt
		resp.CreatedAt = &createdAt
	}
	if !e.UpdatedAt.IsZero() {
		updatedAt := e.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}
	return resp
}

// NewPage assembles the paged envelope from one page of results.
func NewPage(employees []Employee, total int64, page, size int, now time.Time, w RecencyWindows) Page {
	content := make([]EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		content = append(content, emp.ToResponse(now, w))
	}

	totalPages := 0
	if size > 0 {
		totalPages = int((total + int64(size) - 1) / int64(size))
	}

	return Page{
		Content:          content,
		TotalElements:    total,
		TotalPages:       totalPages,
		Number:           page,
		Size:             size,
		First:            page == 0,
		Last:             page >= totalPages-1,
		NumberOfElements: len(content),
	}
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
