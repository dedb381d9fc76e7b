package client

import (
	"context"
	"net/url"
	"regexp"
	"strings"
	"time"
)

var (
	emailPattern  = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	mobilePattern = regexp.MustCompile(`^\d{10,}$`)
)

var (
	contractTypes    = []string{"PERMANENT", "CONTRACT"}
	employmentBases  = []string{"FULL_TIME", "PART_TIME"}
	roles            = []string{"ADMIN", "HR", "MANAGER", "EMPLOYEE", "INTERN", "CONTRACTOR"}
	defaultHours     = 38
	defaultFormState = Form{
		ContractType:    "PERMANENT",
		EmploymentBasis: "FULL_TIME",
		Role:            "EMPLOYEE",
		Ongoing:         true,
		HoursPerWeek:    defaultHours,
	}
)

// Form holds the employee form fields as entered, before validation.
// All fields are plain strings so partially-typed input round-trips.
type Form struct {
	FirstName          string
	MiddleName         string
	LastName           string
	Email              string
	MobileNumber       string
	ResidentialAddress string
	ContractType       string
	EmploymentBasis    string
	Role               string
	StartDate          string
	FinishDate         string
	Ongoing            bool
	HoursPerWeek       int
	ThumbnailURL       string
}

// NewForm returns a form pre-filled with sensible defaults for a new
// hire.
func NewForm() Form {
	return defaultFormState
}

// FormFromEmployee fills a form from an existing record for editing.
func FormFromEmployee(e Employee) Form {
	f := Form{
		FirstName:          e.FirstName,
		LastName:           e.LastName,
		Email:              e.Email,
		MobileNumber:       e.MobileNumber,
		ResidentialAddress: e.ResidentialAddress,
		ContractType:       e.ContractType,
		EmploymentBasis:    e.EmploymentBasis,
		Role:               e.Role,
		StartDate:          e.StartDate,
		Ongoing:            e.Ongoing,
		HoursPerWeek:       defaultHours,
	}
	if e.MiddleName != nil {
		f.MiddleName = *e.MiddleName
	}
	if e.FinishDate != nil {
		f.FinishDate = *e.FinishDate
	}
	if e.HoursPerWeek != nil {
		f.HoursPerWeek = *e.HoursPerWeek
	}
	if e.ThumbnailURL != nil {
		f.ThumbnailURL = *e.ThumbnailURL
	}
	return f
}

// Validate checks every field and returns a map of field name to
// message. An empty map means the form can be submitted.
func (f Form) Validate() map[string]string {
	errs := make(map[string]string)

	if len(strings.TrimSpace(f.FirstName)) < 2 {
		errs["firstName"] = "first name must be at least 2 characters"
	}
	if len(strings.TrimSpace(f.LastName)) < 2 {
		errs["lastName"] = "last name must be at least 2 characters"
	}
	if !emailPattern.MatchString(strings.TrimSpace(f.Email)) {
		errs["email"] = "must be a valid email address"
	}
	if !mobilePattern.MatchString(strings.TrimSpace(f.MobileNumber)) {
		errs["mobileNumber"] = "must contain only digits and be at least 10 characters"
	}
	if len(strings.TrimSpace(f.ResidentialAddress)) < 5 {
		errs["residentialAddress"] = "address must be at least 5 characters"
	}
	if !contains(contractTypes, f.ContractType) {
		errs["contractType"] = "must be PERMANENT or CONTRACT"
	}
	if !contains(employmentBases, f.EmploymentBasis) {
		errs["employmentBasis"] = "must be FULL_TIME or PART_TIME"
	}
	if !contains(roles, f.Role) {
		errs["role"] = "must be a valid role"
	}

	startDate, startErr := time.Parse("2006-01-02", f.StartDate)
	if startErr != nil {
		errs["startDate"] = "must be a valid date (YYYY-MM-DD)"
	}

	if !f.Ongoing && f.FinishDate != "" {
		finishDate, err := time.Parse("2006-01-02", f.FinishDate)
		if err != nil {
			errs["finishDate"] = "must be a valid date (YYYY-MM-DD)"
		} else if startErr == nil && !finishDate.After(startDate) {
			errs["finishDate"] = "finish date must be after the start date"
		}
	}

	if f.HoursPerWeek < 1 || f.HoursPerWeek > 168 {
		errs["hoursPerWeek"] = "must be between 1 and 168"
	}
	if f.ThumbnailURL != "" {
		parsed, err := url.Parse(f.ThumbnailURL)
		if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
			errs["thumbnailUrl"] = "must be a well-formed URL"
		}
	}

	return errs
}

// CreatePayload converts the form into the create request. Ongoing
// employment never carries a finish date.
func (f Form) CreatePayload() EmployeeInput {
	hours := f.HoursPerWeek
	input := EmployeeInput{
		FirstName:          strings.TrimSpace(f.FirstName),
		MiddleName:         optional(f.MiddleName),
		LastName:           strings.TrimSpace(f.LastName),
		Email:              strings.TrimSpace(f.Email),
		MobileNumber:       strings.TrimSpace(f.MobileNumber),
		ResidentialAddress: strings.TrimSpace(f.ResidentialAddress),
		ContractType:       f.ContractType,
		EmploymentBasis:    f.EmploymentBasis,
		Role:               f.Role,
		StartDate:          f.StartDate,
		Ongoing:            f.Ongoing,
		HoursPerWeek:       &hours,
		ThumbnailURL:       optional(f.ThumbnailURL),
	}
	if !f.Ongoing {
		input.FinishDate = optional(f.FinishDate)
	}
	return input
}

// UpdatePayload diffs the form against the original record and returns
// only the changed fields.
func (f Form) UpdatePayload(orig Employee) EmployeeUpdate {
	var update EmployeeUpdate

	if trimmed := strings.TrimSpace(f.FirstName); trimmed != orig.FirstName {
		update.FirstName = &trimmed
	}
	if f.MiddleName != deref(orig.MiddleName) {
		middleName := f.MiddleName
		update.MiddleName = &middleName
	}
	if trimmed := strings.TrimSpace(f.LastName); trimmed != orig.LastName {
		update.LastName = &trimmed
	}
	if trimmed := strings.TrimSpace(f.Email); trimmed != orig.Email {
		update.Email = &trimmed
	}
	if trimmed := strings.TrimSpace(f.MobileNumber); trimmed != orig.MobileNumber {
		update.MobileNumber = &trimmed
	}
	if trimmed := strings.TrimSpace(f.ResidentialAddress); trimmed != orig.ResidentialAddress {
		update.ResidentialAddress = &trimmed
	}
	if f.ContractType != orig.ContractType {
		contractType := f.ContractType
		update.ContractType = &contractType
	}
	if f.EmploymentBasis != orig.EmploymentBasis {
		basis := f.EmploymentBasis
		update.EmploymentBasis = &basis
	}
	if f.Role != orig.Role {
		role := f.Role
		update.Role = &role
	}
	if f.StartDate != orig.StartDate {
		startDate := f.StartDate
		update.StartDate = &startDate
	}
	if f.Ongoing != orig.Ongoing {
		ongoing := f.Ongoing
		update.Ongoing = &ongoing
	}
	finish := ""
	if !f.Ongoing {
		finish = f.FinishDate
	}
	if finish != deref(orig.FinishDate) {
		update.FinishDate = &finish
	}
	if orig.HoursPerWeek == nil || f.HoursPerWeek != *orig.HoursPerWeek {
		hours := f.HoursPerWeek
		update.HoursPerWeek = &hours
	}
	if f.ThumbnailURL != deref(orig.ThumbnailURL) {
		thumbnail := f.ThumbnailURL
		update.ThumbnailURL = &thumbnail
	}

	return update
}

// formAPI is the slice of Client the form needs to submit.
type formAPI interface {
	Create(ctx context.Context, input EmployeeInput) (Employee, error)
	Update(ctx context.Context, id int64, update EmployeeUpdate) (Employee, error)
}

// Submit validates and sends the form. With a nil original it creates;
// otherwise it sends the diff, skipping the network round-trip entirely
// when nothing changed.
func (f Form) Submit(ctx context.Context, api formAPI, orig *Employee) (Employee, map[string]string, error) {
	if errs := f.Validate(); len(errs) > 0 {
		return Employee{}, errs, nil
	}

	if orig == nil {
		created, err := api.Create(ctx, f.CreatePayload())
		return created, nil, err
	}

	update := f.UpdatePayload(*orig)
	if update.IsEmpty() {
		return *orig, nil, nil
	}
	updated, err := api.Update(ctx, orig.ID, update)
	return updated, nil, err
}

func optional(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}
