package models

// StudentRecord is the relational student row (registration data), distinct
// from the sheet-backed StudentRow used by the attendance ledger.
type StudentRecord struct {
	RollNumber  string `json:"roll_number"`
	Name        string `json:"name"`
	Class       string `json:"class"`
	Section     string `json:"section"`
	ParentEmail string `json:"parent_email"`
}

type RegisterStudentRequest struct {
	RollNumber  string `json:"roll_number" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Class       string `json:"class" binding:"required"`
	Section     string `json:"section" binding:"required"`
	ParentEmail string `json:"parent_email" binding:"required,email"`
}

type UpdateStudentRecordRequest struct {
	Name        string `json:"name" binding:"required"`
	Class       string `json:"class" binding:"required"`
	Section     string `json:"section" binding:"required"`
	ParentEmail string `json:"parent_email" binding:"required,email"`
}
