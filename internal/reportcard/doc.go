// Package reportcard models a fixed-capacity academic report card.
//
// A Card holds exactly ten slots. Each slot pairs a course name with a
// numeric grade and a letter grade derived from it. The card also records
// the academic year and a grade-point average computed from the grades.
//
// # Sentinels
//
// Absent values are represented in-band rather than with pointers:
//   - Course names default to "NA".
//   - Grades default to -1. An explicit -1 means the course was withdrawn.
//   - Letter grades default to "NA".
//
// # Range behavior
//
// Reads outside slots 1..10 return the sentinel for the field. SetCourse
// outside 1..9 is ignored. SetGrade and SetLetterGrade outside 1..10 return
// an error coded REPORT_CARD_SLOT_OUT_OF_RANGE.
//
// # Quirks
//
// Two legacy behaviors are kept by default and can be switched off with
// WithQuirks: RecalculateGPA averaging onto the previous GPA, and slots past
// the supplied grades showing "NA" instead of a classified letter.
package reportcard
