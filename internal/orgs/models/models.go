package models

// Student password hashes never serialize into responses.
type Student struct {
	StudentNumber string `gorm:"primaryKey"     json:"student_number"`
	FirstName     string `gorm:"not null"       json:"first_name"`
	MiddleName    string `json:"middle_name,omitempty"`
	LastName      string `gorm:"not null"       json:"last_name"`
	DegreeProgram string `json:"degree_program"`
	Gender        string `json:"gender"`
	Birthdate     string `json:"birthdate"`
	Username      string `json:"username"`
	Password      string `json:"-"`
}

type Organization struct {
	OrganizationName string `gorm:"primaryKey" json:"organization_name"`
	Classification   string `json:"classification"`
}

// Membership allows at most one row per (student, organization) pair.
// The unique index backs the pre-insert guard, so a race between two
// create requests surfaces as a store conflict instead of a second row.
type Membership struct {
	ID               uint   `gorm:"primaryKey;autoIncrement"                         json:"id"`
	StudentNumber    string `gorm:"uniqueIndex:idx_membership_pair;not null"         json:"student_number"`
	OrganizationName string `gorm:"uniqueIndex:idx_membership_pair;not null"         json:"organization_name"`
	AcademicYear     string `json:"academic_year"`
	Semester         string `json:"semester"`
	Status           string `json:"status"`
	Committee        string `json:"committee,omitempty"`
	SemesterJoined   string `json:"semester_joined"`
	Role             string `json:"role"`
}

// Fee's transaction id is store-generated. The composite index forbids a
// second fee for the same (student, organization, year, semester, type).
type Fee struct {
	TransactionID    uint    `gorm:"primaryKey;autoIncrement"             json:"transaction_id"`
	Amount           float64 `json:"amount"`
	AcademicYear     string  `gorm:"uniqueIndex:idx_fee_once;not null"    json:"academic_year"`
	Semester         string  `gorm:"uniqueIndex:idx_fee_once;not null"    json:"semester"`
	DatePaid         *string `json:"date_paid,omitempty"`
	DueDate          string  `json:"due_date"`
	Type             string  `gorm:"uniqueIndex:idx_fee_once;not null"    json:"type"`
	DateIssued       string  `json:"date_issued"`
	Status           string  `json:"status"`
	StudentNumber    string  `gorm:"uniqueIndex:idx_fee_once;not null"    json:"student_number"`
	OrganizationName string  `gorm:"uniqueIndex:idx_fee_once;not null"    json:"organization_name"`
}

func All() []any {
	return []any{&Student{}, &Organization{}, &Membership{}, &Fee{}}
}
