package models

type FeeStatus struct {
	RollNumber string `json:"roll_number"`
	Term       string `json:"term"`
	Status     string `json:"status"`
	AmountDue  int    `json:"amount_due"`
}

type SetFeeStatusRequest struct {
	RollNumber string `json:"roll_number" binding:"required"`
	Term       string `json:"term" binding:"required"`
	Status     string `json:"status" binding:"required,oneof=paid pending overdue"`
	AmountDue  int    `json:"amount_due" binding:"min=0"`
}
