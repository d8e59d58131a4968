package reportcard

import (
	"strconv"

	apperrors "github.com/louisbranch/reportcard/internal/platform/errors"
)

const (
	maxCourseQuantity = 10

	// CourseNA fills course names that were not supplied.
	CourseNA = "NA"
	// GradeNA fills grades that were not supplied.
	GradeNA float32 = -1
	// CourseIndexNA is returned for course indexes outside the card.
	CourseIndexNA = 0

	gradeNAString = "NA"
	gpaScale      = 25
)

// Slot is one course position on a card.
type Slot struct {
	Index  int
	Course string
	Grade  float32
	Letter Letter
}

// Card is a single year's report card with a fixed number of course slots.
//
// A Card is not safe for concurrent mutation.
type Card struct {
	slots  [maxCourseQuantity]Slot
	year   int
	gpa    float32
	quirks Quirks
}

// MaxCourseQuantity returns the number of slots on every card.
func MaxCourseQuantity() int {
	return maxCourseQuantity
}

// GradeNAString returns the display form of an unset grade.
func GradeNAString() string {
	return gradeNAString
}

// New builds a card from parallel course and grade lists.
//
// The lists may have different lengths. Entries past the tenth are dropped
// and missing entries are padded with CourseNA and GradeNA. The initial GPA
// is the mean of grades as supplied, sentinels included, divided by 25.
func New(courses []string, grades []float32, year int, opts ...Option) *Card {
	c := &Card{year: year, quirks: DefaultQuirks}
	for _, opt := range opts {
		opt(c)
	}

	for i := range c.slots {
		slot := Slot{Index: i + 1, Course: CourseNA, Grade: GradeNA, Letter: LetterNA}
		if i < len(courses) {
			slot.Course = courses[i]
		}
		if i < len(grades) {
			slot.Grade = grades[i]
			slot.Letter = Classify(grades[i])
		} else if !c.quirks.HideUngradedLetters {
			slot.Letter = Classify(slot.Grade)
		}
		c.slots[i] = slot
	}

	if len(grades) > 0 {
		var sum float32
		for _, grade := range grades {
			sum += grade
		}
		c.gpa = (sum / float32(len(grades))) / gpaScale
	}
	return c
}

// Year returns the academic year of the card.
func (c *Card) Year() int {
	return c.year
}

// SetYear replaces the academic year.
func (c *Card) SetYear(year int) {
	c.year = year
}

// GPA returns the current grade-point average.
func (c *Card) GPA() float32 {
	return c.gpa
}

// Quirks returns the compatibility behaviors the card was built with.
func (c *Card) Quirks() Quirks {
	return c.quirks
}

// CourseIndex returns the 1-based index of slot n, or CourseIndexNA when n
// is outside the card.
func (c *Card) CourseIndex(n int) int {
	if !inRange(n) {
		return CourseIndexNA
	}
	return c.slots[n-1].Index
}

// Course returns the course name in slot n, or CourseNA when n is outside
// the card.
func (c *Card) Course(n int) string {
	if !inRange(n) {
		return CourseNA
	}
	return c.slots[n-1].Course
}

// Grade returns the numeric grade in slot n, or GradeNA when n is outside
// the card.
func (c *Card) Grade(n int) float32 {
	if !inRange(n) {
		return GradeNA
	}
	return c.slots[n-1].Grade
}

// LetterGrade returns the letter grade in slot n, or LetterNA when n is
// outside the card.
func (c *Card) LetterGrade(n int) Letter {
	if !inRange(n) {
		return LetterNA
	}
	return c.slots[n-1].Letter
}

// SetCourse renames the course in slot n. Only slots 1 through 9 can be
// renamed; any other n is ignored.
func (c *Card) SetCourse(name string, n int) {
	if n > 0 && n < maxCourseQuantity {
		c.slots[n-1].Course = name
	}
}

// SetGrade stores a numeric grade in slot n and recalculates the GPA.
// The slot's letter grade is left as it was.
func (c *Card) SetGrade(grade float32, n int) error {
	if err := checkSlot(n); err != nil {
		return err
	}
	c.slots[n-1].Grade = grade
	c.RecalculateGPA()
	return nil
}

// SetLetterGrade forces the letter grade in slot n. Tokens other than A, B,
// C, D, F, W and NA are stored as LetterInvalidEntry.
func (c *Card) SetLetterGrade(letter string, n int) error {
	if err := checkSlot(n); err != nil {
		return err
	}
	c.slots[n-1].Letter = ParseLetter(letter)
	return nil
}

// RecalculateGPA averages every grade above -1 and divides by 25.
//
// With AccumulateGPA set, the previous GPA is added to the sum before
// averaging. Nothing changes when no slot holds a gradeable grade.
func (c *Card) RecalculateGPA() {
	var (
		sum       float32
		gradeable int
	)
	for _, slot := range c.slots {
		if slot.Grade > GradeNA {
			sum += slot.Grade
			gradeable++
		}
	}
	if gradeable == 0 {
		return
	}
	if c.quirks.AccumulateGPA {
		sum += c.gpa
	}
	c.gpa = (sum / float32(gradeable)) / gpaScale
}

func inRange(n int) bool {
	return n >= 1 && n <= maxCourseQuantity
}

func checkSlot(n int) error {
	if inRange(n) {
		return nil
	}
	return apperrors.WithMetadata(
		apperrors.CodeReportCardSlotOutOfRange,
		"course slot "+strconv.Itoa(n)+" out of range",
		map[string]string{
			"Index": strconv.Itoa(n),
			"Max":   strconv.Itoa(maxCourseQuantity),
		},
	)
}
