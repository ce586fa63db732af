package models

// ClassSheets enumerates the classes the school operates. Each class has one
// attendance tab named after it and one timetable slot per category.
var ClassSheets = []string{
	"Class1", "Class2", "Class3", "Class4", "Class5",
	"Class6", "Class7", "Class8", "Class9", "Class10",
}

// IsValidClass reports whether classID names a known class.
func IsValidClass(classID string) bool {
	for _, c := range ClassSheets {
		if c == classID {
			return true
		}
	}
	return false
}
