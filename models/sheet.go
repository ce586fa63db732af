package models

type CreateSheetRequest struct {
	SheetName string `json:"sheetName" binding:"required"`
}
