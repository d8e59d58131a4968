package reportcard

import (
	stderrors "errors"
	"math"
	"strings"
	"testing"

	apperrors "github.com/louisbranch/reportcard/internal/platform/errors"
)

func approxEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}

func TestNewTwoCourses(t *testing.T) {
	card := New([]string{"Math", "Art"}, []float32{95, 72}, 2024)

	if got := card.Course(1); got != "Math" {
		t.Fatalf("expected slot 1 course Math, got %q", got)
	}
	if got := card.Grade(1); got != 95 {
		t.Fatalf("expected slot 1 grade 95, got %v", got)
	}
	if got := card.LetterGrade(1); got != LetterA {
		t.Fatalf("expected slot 1 letter A, got %q", got)
	}
	if got := card.Course(2); got != "Art" {
		t.Fatalf("expected slot 2 course Art, got %q", got)
	}
	if got := card.LetterGrade(2); got != LetterC {
		t.Fatalf("expected slot 2 letter C, got %q", got)
	}
	for n := 3; n <= MaxCourseQuantity(); n++ {
		if got := card.Course(n); got != CourseNA {
			t.Errorf("slot %d: expected course NA, got %q", n, got)
		}
		if got := card.Grade(n); got != GradeNA {
			t.Errorf("slot %d: expected grade -1, got %v", n, got)
		}
		if got := card.LetterGrade(n); got != LetterNA {
			t.Errorf("slot %d: expected letter NA, got %q", n, got)
		}
	}
	if card.Year() != 2024 {
		t.Fatalf("expected year 2024, got %d", card.Year())
	}
	if !approxEqual(card.GPA(), 3.34) {
		t.Fatalf("expected GPA 3.34, got %v", card.GPA())
	}
}

func TestNewPadsAndTruncates(t *testing.T) {
	courses := []string{"c1", "c2", "c3", "c4", "c5", "c6", "c7", "c8", "c9", "c10", "c11", "c12"}
	grades := []float32{90, 90, 90, 90, 90, 90, 90, 90, 90, 80, 0, 0}
	card := New(courses, grades, 2023)

	if got := len(card.Slots()); got != MaxCourseQuantity() {
		t.Fatalf("expected %d slots, got %d", MaxCourseQuantity(), got)
	}
	if got := card.Course(10); got != "c10" {
		t.Fatalf("expected slot 10 course c10, got %q", got)
	}
	if got := card.Grade(10); got != 80 {
		t.Fatalf("expected slot 10 grade 80, got %v", got)
	}
	// The initial GPA averages every supplied grade, dropped ones included.
	want := float32(890) / 12 / 25
	if !approxEqual(card.GPA(), want) {
		t.Fatalf("expected GPA %v, got %v", want, card.GPA())
	}
}

func TestNewMismatchedLengths(t *testing.T) {
	card := New([]string{"Math"}, []float32{95, 85, 75}, 2024)

	if got := card.Course(2); got != CourseNA {
		t.Fatalf("expected slot 2 course NA, got %q", got)
	}
	if got := card.Grade(2); got != 85 {
		t.Fatalf("expected slot 2 grade 85, got %v", got)
	}
	if got := card.LetterGrade(3); got != LetterC {
		t.Fatalf("expected slot 3 letter C, got %q", got)
	}
	if got := card.LetterGrade(4); got != LetterNA {
		t.Fatalf("expected slot 4 letter NA, got %q", got)
	}
}

func TestNewGPAIncludesSentinels(t *testing.T) {
	card := New([]string{"Math", "Art"}, []float32{80, -1}, 2024)
	want := float32(79) / 2 / 25
	if !approxEqual(card.GPA(), want) {
		t.Fatalf("expected GPA %v, got %v", want, card.GPA())
	}
	if got := card.LetterGrade(2); got != LetterW {
		t.Fatalf("expected slot 2 letter W, got %q", got)
	}
}

func TestNewEmpty(t *testing.T) {
	card := New(nil, nil, 2020)
	if card.GPA() != 0 {
		t.Fatalf("expected GPA 0, got %v", card.GPA())
	}
	for n := 1; n <= MaxCourseQuantity(); n++ {
		if got := card.LetterGrade(n); got != LetterNA {
			t.Errorf("slot %d: expected letter NA, got %q", n, got)
		}
	}
}

func TestCourseIndex(t *testing.T) {
	card := New(nil, nil, 2024)
	for n := 1; n <= MaxCourseQuantity(); n++ {
		if got := card.CourseIndex(n); got != n {
			t.Errorf("CourseIndex(%d) = %d", n, got)
		}
	}
	for _, n := range []int{0, -1, 11} {
		if got := card.CourseIndex(n); got != CourseIndexNA {
			t.Errorf("CourseIndex(%d) = %d, want %d", n, got, CourseIndexNA)
		}
	}
}

func TestOutOfRangeReads(t *testing.T) {
	card := New([]string{"Math"}, []float32{95}, 2024)
	for _, n := range []int{0, 11} {
		if got := card.Course(n); got != CourseNA {
			t.Errorf("Course(%d) = %q, want NA", n, got)
		}
		if got := card.Grade(n); got != GradeNA {
			t.Errorf("Grade(%d) = %v, want -1", n, got)
		}
		if got := card.LetterGrade(n); got != LetterNA {
			t.Errorf("LetterGrade(%d) = %q, want NA", n, got)
		}
	}
}

func TestSetCourse(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		applied bool
	}{
		{"first slot", 1, true},
		{"ninth slot", 9, true},
		{"tenth slot is excluded", 10, false},
		{"zero", 0, false},
		{"past end", 11, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := New(nil, nil, 2024)
			card.SetCourse("Bio", tt.n)
			got := card.Course(tt.n) == "Bio"
			if got != tt.applied {
				t.Errorf("SetCourse(Bio, %d) applied = %v, want %v", tt.n, got, tt.applied)
			}
		})
	}
}

func TestSetGradeOutOfRange(t *testing.T) {
	card := New([]string{"Math"}, []float32{95}, 2024)
	before := card.GPA()

	for _, n := range []int{0, 11} {
		err := card.SetGrade(88, n)
		if err == nil {
			t.Fatalf("SetGrade(88, %d): expected error", n)
		}
		if !apperrors.IsCode(err, apperrors.CodeReportCardSlotOutOfRange) {
			t.Fatalf("expected slot out of range code, got %s", apperrors.GetCode(err))
		}
	}
	if card.GPA() != before {
		t.Fatalf("expected GPA unchanged after faults, got %v", card.GPA())
	}
}

func TestSetGradeRecalculatesAccumulating(t *testing.T) {
	card := New([]string{"Math", "Art"}, []float32{95, 72}, 2024)
	first := card.GPA()

	if err := card.SetGrade(88, 3); err != nil {
		t.Fatalf("set grade: %v", err)
	}
	// Accumulation: the previous GPA joins the sum.
	want := (first + 255) / 3 / 25
	if !approxEqual(card.GPA(), want) {
		t.Fatalf("expected GPA %v, got %v", want, card.GPA())
	}
	if got := card.LetterGrade(3); got != LetterNA {
		t.Fatalf("expected letter grade untouched by SetGrade, got %q", got)
	}

	second := card.GPA()
	if err := card.SetGrade(88, 3); err != nil {
		t.Fatalf("set grade: %v", err)
	}
	want = (second + 255) / 3 / 25
	if !approxEqual(card.GPA(), want) {
		t.Fatalf("expected repeated set to accumulate to %v, got %v", want, card.GPA())
	}
	if card.GPA() == second {
		t.Fatal("expected repeated identical SetGrade to move the GPA")
	}
}

func TestSetGradeCorrectedQuirks(t *testing.T) {
	card := New([]string{"Math", "Art"}, []float32{95, 72}, 2024, WithQuirks(CorrectedQuirks))
	for i := 0; i < 3; i++ {
		if err := card.SetGrade(88, 3); err != nil {
			t.Fatalf("set grade: %v", err)
		}
		if !approxEqual(card.GPA(), 3.4) {
			t.Fatalf("iteration %d: expected stable GPA 3.4, got %v", i, card.GPA())
		}
	}
}

func TestCorrectedQuirksClassifyPaddedSlots(t *testing.T) {
	card := New([]string{"Math"}, []float32{95}, 2024, WithQuirks(CorrectedQuirks))
	if got := card.LetterGrade(2); got != LetterW {
		t.Fatalf("expected padded slot letter W, got %q", got)
	}
	if card.Quirks() != CorrectedQuirks {
		t.Fatalf("expected corrected quirks, got %+v", card.Quirks())
	}
}

func TestRecalculateGPANoGradeable(t *testing.T) {
	card := New([]string{"Math", "Art"}, []float32{-1, -2}, 2024)
	before := card.GPA()
	card.RecalculateGPA()
	if card.GPA() != before {
		t.Fatalf("expected GPA unchanged, got %v want %v", card.GPA(), before)
	}

	if err := card.SetGrade(-1, 1); err != nil {
		t.Fatalf("set grade: %v", err)
	}
	if card.GPA() != before {
		t.Fatalf("expected GPA unchanged after withdrawn grade, got %v", card.GPA())
	}
}

func TestRecalculateGPASkipsSentinelsWithGaps(t *testing.T) {
	card := New(nil, []float32{-1, 80}, 2024, WithQuirks(CorrectedQuirks))
	card.RecalculateGPA()
	if !approxEqual(card.GPA(), 3.2) {
		t.Fatalf("expected GPA 3.2, got %v", card.GPA())
	}
}

func TestSetLetterGrade(t *testing.T) {
	card := New([]string{"Math"}, []float32{95}, 2024)

	if err := card.SetLetterGrade("Z", 1); err != nil {
		t.Fatalf("set letter grade: %v", err)
	}
	if got := card.LetterGrade(1); got != LetterInvalidEntry {
		t.Fatalf("expected INVALID ENTRY, got %q", got)
	}
	if err := card.SetLetterGrade("B", 1); err != nil {
		t.Fatalf("set letter grade: %v", err)
	}
	if got := card.LetterGrade(1); got != LetterB {
		t.Fatalf("expected B, got %q", got)
	}

	err := card.SetLetterGrade("A", 11)
	if !stderrors.Is(err, apperrors.New(apperrors.CodeReportCardSlotOutOfRange, "")) {
		t.Fatalf("expected slot out of range error, got %v", err)
	}
	meta := apperrors.GetMetadata(err)
	if meta["Index"] != "11" || meta["Max"] != "10" {
		t.Fatalf("unexpected metadata %v", meta)
	}
}

func TestSetYear(t *testing.T) {
	card := New(nil, nil, 2024)
	card.SetYear(-5)
	if card.Year() != -5 {
		t.Fatalf("expected year -5, got %d", card.Year())
	}
}

func TestMaxCourseQuantity(t *testing.T) {
	_ = New([]string{"a", "b"}, nil, 1)
	if MaxCourseQuantity() != 10 {
		t.Fatalf("expected 10, got %d", MaxCourseQuantity())
	}
	if GradeNAString() != "NA" {
		t.Fatalf("expected NA, got %q", GradeNAString())
	}
}

func TestBulkAccessorsReturnCopies(t *testing.T) {
	card := New([]string{"Math"}, []float32{95}, 2024)

	courses := card.Courses()
	courses[0] = "Changed"
	grades := card.Grades()
	grades[0] = 0
	letters := card.LetterGrades()
	letters[0] = LetterF
	slots := card.Slots()
	slots[0].Course = "Changed"

	if card.Course(1) != "Math" || card.Grade(1) != 95 || card.LetterGrade(1) != LetterA {
		t.Fatal("expected card to be unaffected by mutation of returned slices")
	}
	indexes := card.CourseIndexes()
	if len(indexes) != 10 || indexes[0] != 1 || indexes[9] != 10 {
		t.Fatalf("unexpected course indexes %v", indexes)
	}
}

func TestString(t *testing.T) {
	card := New([]string{"Math", "Art"}, []float32{95, 72}, 2024)
	got := card.String()

	for _, want := range []string{
		"ReportCard{",
		"courseIndex=[1, 2, 3, 4, 5, 6, 7, 8, 9, 10]",
		"courses=[Math, Art, NA,",
		"grades=[95, 72, -1,",
		"letterGrades=[A, C, NA,",
		"year=2024",
		"GPA=3.34}",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("String() = %q, missing %q", got, want)
		}
	}
}

func TestFormatGrade(t *testing.T) {
	if got := FormatGrade(-1, true); got != "NA" {
		t.Fatalf("expected NA, got %q", got)
	}
	if got := FormatGrade(-1, false); got != "-1" {
		t.Fatalf("expected -1, got %q", got)
	}
	if got := FormatGrade(89.5, true); got != "89.5" {
		t.Fatalf("expected 89.5, got %q", got)
	}
}
