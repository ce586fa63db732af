package models

type MarksEntry struct {
	RollNumber string `json:"roll_number"`
	Subject    string `json:"subject"`
	Exam       string `json:"exam"`
	Marks      int    `json:"marks"`
	MaxMarks   int    `json:"max_marks"`
}

type CreateMarksRequest struct {
	RollNumber string `json:"roll_number" binding:"required"`
	Subject    string `json:"subject" binding:"required"`
	Exam       string `json:"exam" binding:"required"`
	Marks      int    `json:"marks" binding:"min=0"`
	MaxMarks   int    `json:"max_marks" binding:"required,min=1"`
}
