package employee

import "time"

type Employee struct {
	ID                 int64
	FirstName          string
	MiddleName         *string
	LastName           string
	Email              string
	MobileNumber       string
	ResidentialAddress string
	ContractType       ContractType
	EmploymentBasis    EmploymentBasis
	Role               Role
	StartDate          time.Time
	FinishDate         *time.Time
	Ongoing            bool
	HoursPerWeek       *int
	ThumbnailURL       *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type ContractType string

const (
	ContractTypePermanent ContractType = "PERMANENT"
	ContractTypeContract  ContractType = "CONTRACT"
)

type EmploymentBasis string

const (
	EmploymentBasisFullTime EmploymentBasis = "FULL_TIME"
	EmploymentBasisPartTime EmploymentBasis = "PART_TIME"
)

type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleHR         Role = "HR"
	RoleManager    Role = "MANAGER"
	RoleEmployee   Role = "EMPLOYEE"
	RoleIntern     Role = "INTERN"
	RoleContractor Role = "CONTRACTOR"
)

func ContractTypes() []string {
	return []string{string(ContractTypePermanent), string(ContractTypeContract)}
}

func EmploymentBases() []string {
	return []string{string(EmploymentBasisFullTime), string(EmploymentBasisPartTime)}
}

func Roles() []string {
	return []string{
		string(RoleAdmin), string(RoleHR), string(RoleManager),
		string(RoleEmployee), string(RoleIntern), string(RoleContractor),
	}
}
