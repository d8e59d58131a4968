package reportcard

// Letter is a letter grade for a single course.
type Letter string

const (
	LetterA            Letter = "A"
	LetterB            Letter = "B"
	LetterC            Letter = "C"
	LetterD            Letter = "D"
	LetterF            Letter = "F"
	LetterW            Letter = "W"
	LetterNA           Letter = "NA"
	LetterInvalidEntry Letter = "INVALID ENTRY"
)

// Minimum grades for each passing letter.
const (
	MinA float32 = 90
	MinB float32 = 80
	MinC float32 = 70
	MinD float32 = 60
)

// WithdrawnGrade marks a course as withdrawn when set explicitly.
const WithdrawnGrade float32 = -1

var recognizedLetters = []Letter{LetterA, LetterB, LetterC, LetterD, LetterF, LetterW, LetterNA}

// Classify maps a numeric grade to its letter grade.
//
// Thresholds are checked from A downwards and the first match wins. Grades
// below D but above -1 are F, exactly -1 is W, and anything lower is NA.
func Classify(grade float32) Letter {
	switch {
	case grade >= MinA:
		return LetterA
	case grade >= MinB:
		return LetterB
	case grade >= MinC:
		return LetterC
	case grade >= MinD:
		return LetterD
	case grade > WithdrawnGrade:
		return LetterF
	case grade == WithdrawnGrade:
		return LetterW
	default:
		return LetterNA
	}
}

// ParseLetter returns the letter for a recognized token, or
// LetterInvalidEntry when the token is not one of A, B, C, D, F, W or NA.
// Matching is exact; "a" is not "A".
func ParseLetter(token string) Letter {
	for _, letter := range recognizedLetters {
		if string(letter) == token {
			return letter
		}
	}
	return LetterInvalidEntry
}

// Recognized reports whether l is a letter a caller may force onto a slot.
func (l Letter) Recognized() bool {
	return ParseLetter(string(l)) != LetterInvalidEntry
}

// String returns the letter token.
func (l Letter) String() string {
	return string(l)
}
