package dashboard

// StatsResponse is the combined response for the dashboard stats
// endpoint. Active/inactive are derived from finish dates server-side
// so every consumer applies the same calendar-day rule.
type StatsResponse struct {
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
