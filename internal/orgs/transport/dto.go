package transport

type CreateStudentRequest struct {
	StudentNumber string `json:"student_number"`
	FirstName     string `json:"first_name"`
	MiddleName    string `json:"middle_name"`
	LastName      string `json:"last_name"`
	DegreeProgram string `json:"degree_program"`
	Gender        string `json:"gender"`
	Birthdate     string `json:"birthdate"`
	Username      string `json:"username"`
	Password      string `json:"password"`
}

// UpdateStudentRequest is a partial update: nil fields keep their prior
// values.
type UpdateStudentRequest struct {
	FirstName     *string `json:"first_name"`
	MiddleName    *string `json:"middle_name"`
	LastName      *string `json:"last_name"`
	DegreeProgram *string `json:"degree_program"`
	Gender        *string `json:"gender"`
	Birthdate     *string `json:"birthdate"`
	Username      *string `json:"username"`
}

type CreateOrganizationRequest struct {
	OrganizationName string `json:"organization_name"`
	Classification   string `json:"classification"`
}

type CreateMembershipRequest struct {
	StudentNumber    string `json:"student_number"`
	OrganizationName string `json:"organization_name"`
	AcademicYear     string `json:"academic_year"`
	Semester         string `json:"semester"`
	Status           string `json:"status"`
	Committee        string `json:"committee"`
	SemesterJoined   string `json:"semester_joined"`
	Role             string `json:"role"`
}

type CreateFeeRequest struct {
	Amount           float64 `json:"amount"`
	AcademicYear     string  `json:"academic_year"`
	Semester         string  `json:"semester"`
	DatePaid         *string `json:"date_paid"`
	DueDate          string  `json:"due_date"`
	Type             string  `json:"type"`
	DateIssued       string  `json:"date_issued"`
	Status           string  `json:"status"`
	StudentNumber    string  `json:"student_number"`
	OrganizationName string  `json:"organization_name"`
}
