package gsheets

// FixedColumns is the number of identity columns at the start of every
// attendance tab: RollNumber, StudentName, ParentEmail, Section. Columns past
// this point are date columns in append order.
const FixedColumns = 4

// HeaderRow is the fixed part of row 0 in every attendance tab.
var HeaderRow = []string{"RollNumber", "StudentName", "ParentEmail", "Section"}

// StudentCells is the named-field codec for the fixed columns. Every component
// that touches a tab goes through it, so the fixed-column layout is defined in
// exactly one place.
type StudentCells struct {
	RollNumber  string
	StudentName string
	ParentEmail string
	Section     string
}

// DecodeStudent reads the fixed columns from a raw row. Short rows decode to
// empty fields.
func DecodeStudent(row []string) StudentCells {
	return StudentCells{
		RollNumber:  cellAt(row, 0),
		StudentName: cellAt(row, 1),
		ParentEmail: cellAt(row, 2),
		Section:     cellAt(row, 3),
	}
}

// Encode returns the fixed-column cells in sheet order.
func (s StudentCells) Encode() []string {
	return []string{s.RollNumber, s.StudentName, s.ParentEmail, s.Section}
}

func cellAt(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
