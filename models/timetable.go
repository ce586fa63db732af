package models

// Timetable categories partition file-host folders and in-memory tracking keys.
const (
	CategoryGeneral = "general-timetable"
	CategoryExam    = "exam-timetable"
)

// TimetableFile is the projection of one hosted file returned to clients.
type TimetableFile struct {
	FileName string `json:"fileName"`
	URL      string `json:"url"`
	FileID   string `json:"fileId"`
}

type UploadTimetableResponse struct {
	Message string `json:"message"`
	FileID  string `json:"fileId"`
	URL     string `json:"url"`
	Class   string `json:"class"`
}
