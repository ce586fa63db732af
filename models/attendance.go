package models

// AttendanceStatus is the value of one attendance cell.
type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "Present"
	StatusAbsent  AttendanceStatus = "Absent"
)

// Valid returns true when the status is a supported value. The empty string is
// a legal cell (no record for that day) but not a submittable status.
func (s AttendanceStatus) Valid() bool {
	return s == StatusPresent || s == StatusAbsent
}

type SaveStudentRequest struct {
	Class            string `json:"Class" binding:"required"`
	RollNumber       string `json:"RollNumber" binding:"required"`
	NameOfTheStudent string `json:"NameOfTheStudent" binding:"required"`
	ParentEmail      string `json:"ParentEmail" binding:"required"`
	Section          string `json:"Section" binding:"required"`
}

type SearchStudentRequest struct {
	Class      string `json:"Class" binding:"required"`
	RollNumber string `json:"RollNumber" binding:"required"`
}

type UpdateStudentRequest struct {
	Class            string `json:"Class" binding:"required"`
	RollNumber       string `json:"RollNumber" binding:"required"`
	NameOfTheStudent string `json:"NameOfTheStudent" binding:"required"`
	ParentEmail      string `json:"ParentEmail" binding:"required"`
	Section          string `json:"Section" binding:"required"`
}

type TrackerRequest struct {
	ClassSheet string `json:"classSheet" binding:"required"`
}

// RecordAttendanceRequest submits one day's statuses for a class. The date
// column is today's date in IST, appended to the header row if absent.
type RecordAttendanceRequest struct {
	ClassSheet string             `json:"classSheet" binding:"required"`
	Records    []AttendanceRecord `json:"records" binding:"required"`
}

type AttendanceRecord struct {
	RollNumber string `json:"rollNumber" binding:"required"`
	Status     string `json:"status" binding:"required"`
}

// TodayEntry is one student's status for today's date column.
type TodayEntry struct {
	RollNumber  string `json:"rollNumber"`
	StudentName string `json:"studentName"`
	Status      string `json:"status"`
}

// StudentAttendance zips the date axis with one student's status sequence.
type StudentAttendance struct {
	RollNumber  string   `json:"rollNumber"`
	StudentName string   `json:"studentName"`
	Dates       []string `json:"dates"`
	Statuses    []string `json:"statuses"`
}

// TrackerRow is the per-student aggregation across all date columns.
type TrackerRow struct {
	RollNumber           string `json:"rollNumber"`
	StudentName          string `json:"studentName"`
	TotalPresent         int    `json:"totalPresent"`
	TotalAbsent          int    `json:"totalAbsent"`
	AttendancePercentage string `json:"attendancePercentage"`
}

// TrackerSummary reduces the per-student totals across the cohort.
type TrackerSummary struct {
	TotalStudents int `json:"totalStudents"`
	TotalPresent  int `json:"totalPresent"`
	TotalAbsent   int `json:"totalAbsent"`
}

// StudentRow is the fixed-column projection of one sheet row.
type StudentRow struct {
	RollNumber  string `json:"rollNumber"`
	StudentName string `json:"studentName"`
	ParentEmail string `json:"parentEmail"`
	Section     string `json:"section"`
}
