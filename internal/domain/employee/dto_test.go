package employee

import (
	"testing"

	"github.com/nology-tech/employee-creator-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func validCreateRequest() CreateEmployeeRequest {
	return CreateEmployeeRequest{
		FirstName:          "Alice",
		LastName:           "Nguyen",
		Email:              "alice.nguyen@example.com",
		MobileNumber:       "0412345678",
		ResidentialAddress: "1 Flinders St, Melbourne",
		ContractType:       "PERMANENT",
		EmploymentBasis:    "FULL_TIME",
		Role:               "EMPLOYEE",
		StartDate:          "2024-01-15",
		Ongoing:            true,
	}
}

func TestCreateRequest_Valid(t *testing.T) {
	req := validCreateRequest()
	assert.NoError(t, req.Validate())
}

func TestCreateRequest_FieldRules(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*CreateEmployeeRequest)
		field  string
	}{
		{"short first name", func(r *CreateEmployeeRequest) { r.FirstName = "A" }, "firstName"},
		{"short last name", func(r *CreateEmployeeRequest) { r.LastName = "N" }, "lastName"},
		{"bad email", func(r *CreateEmployeeRequest) { r.Email = "not-an-email" }, "email"},
		{"mobile with spaces", func(r *CreateEmployeeRequest) { r.MobileNumber = "04 1234 5678" }, "mobileNumber"},
		{"short mobile", func(r *CreateEmployeeRequest) { r.MobileNumber = "0412345" }, "mobileNumber"},
		{"short address", func(r *CreateEmployeeRequest) { r.ResidentialAddress = "1 St" }, "residentialAddress"},
		{"bad contract type", func(r *CreateEmployeeRequest) { r.ContractType = "CASUAL" }, "contractType"},
		{"bad employment basis", func(r *CreateEmployeeRequest) { r.EmploymentBasis = "WEEKENDS" }, "employmentBasis"},
		{"bad role", func(r *CreateEmployeeRequest) { r.Role = "CEO" }, "role"},
		{"bad start date", func(r *CreateEmployeeRequest) { r.StartDate = "15-01-2024" }, "startDate"},
		{"hours too low", func(r *CreateEmployeeRequest) { r.HoursPerWeek = intPtr(0) }, "hoursPerWeek"},
		{"hours too high", func(r *CreateEmployeeRequest) { r.HoursPerWeek = intPtr(169) }, "hoursPerWeek"},
		{"bad thumbnail URL", func(r *CreateEmployeeRequest) { r.ThumbnailURL = strPtr("not a url") }, "thumbnailUrl"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := validCreateRequest()
			c.mutate(&req)

			err := req.Validate()
			require.Error(t, err)

			var errs validator.ValidationErrors
			require.ErrorAs(t, err, &errs)
			assert.Contains(t, errs.ToMap(), c.field)
		})
	}
}

func TestCreateRequest_FinishDateMustFollowStart(t *testing.T) {
	req := validCreateRequest()
	req.Ongoing = false
	req.FinishDate = strPtr("2024-01-15") // equal to start

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "finishDate")

	req.FinishDate = strPtr("2024-01-16")
	assert.NoError(t, req.Validate())
}

func TestCreateRequest_OngoingDropsFinishDate(t *testing.T) {
	req := validCreateRequest()
	req.Ongoing = true
	req.FinishDate = strPtr("2020-01-01")

	require.NoError(t, req.Validate())
	assert.Nil(t, req.FinishDate)
}

func TestCreateRequest_EmptyOptionalsBecomeAbsent(t *testing.T) {
	req := validCreateRequest()
	req.MiddleName = strPtr("  ")
	req.ThumbnailURL = strPtr("")

	require.NoError(t, req.Validate())
	assert.Nil(t, req.MiddleName)
	assert.Nil(t, req.ThumbnailURL)
}

func TestUpdateRequest_PartialValidation(t *testing.T) {
	// An empty partial update is valid.
	empty := UpdateEmployeeRequest{}
	assert.NoError(t, empty.Validate())

	bad := UpdateEmployeeRequest{
		Email:        strPtr("nope"),
		HoursPerWeek: intPtr(200),
	}
	err := bad.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "email")
	assert.Contains(t, errs.ToMap(), "hoursPerWeek")
}
