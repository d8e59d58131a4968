package reportcard

import (
	"strconv"
	"strings"
)

// String renders every field for debugging and logs.
func (c *Card) String() string {
	var b strings.Builder
	b.WriteString("ReportCard{courseIndex=")
	writeList(&b, c.CourseIndexes(), strconv.Itoa)
	b.WriteString(", courses=")
	writeList(&b, c.Courses(), func(s string) string { return s })
	b.WriteString(", grades=")
	writeList(&b, c.Grades(), formatGrade)
	b.WriteString(", letterGrades=")
	writeList(&b, c.LetterGrades(), Letter.String)
	b.WriteString(", year=")
	b.WriteString(strconv.Itoa(c.year))
	b.WriteString(", GPA=")
	b.WriteString(formatGrade(c.gpa))
	b.WriteString("}")
	return b.String()
}

// FormatGrade renders a grade with the shortest float32 representation,
// or GradeNAString for the unset sentinel when na is true.
func FormatGrade(grade float32, na bool) string {
	if na && grade == GradeNA {
		return gradeNAString
	}
	return formatGrade(grade)
}

func formatGrade(grade float32) string {
	return strconv.FormatFloat(float64(grade), 'f', -1, 32)
}

func writeList[T any](b *strings.Builder, items []T, format func(T) string) {
	b.WriteByte('[')
	for i, item := range items {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(format(item))
	}
	b.WriteByte(']')
}
