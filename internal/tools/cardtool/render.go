package cardtool

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/louisbranch/reportcard/internal/reportcard"
)

type cardJSON struct {
	Year  int        `json:"year"`
	GPA   float32    `json:"gpa"`
	Slots []slotJSON `json:"slots"`
}

type slotJSON struct {
	Index  int     `json:"index"`
	Course string  `json:"course"`
	Grade  float32 `json:"grade"`
	Letter string  `json:"letter"`
}

func renderJSON(out io.Writer, card *reportcard.Card) error {
	payload := cardJSON{Year: card.Year(), GPA: card.GPA()}
	for _, slot := range card.Slots() {
		payload.Slots = append(payload.Slots, slotJSON{
			Index:  slot.Index,
			Course: slot.Course,
			Grade:  slot.Grade,
			Letter: slot.Letter.String(),
		})
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

func renderText(out io.Writer, card *reportcard.Card) error {
	if _, err := fmt.Fprintf(out, "Report card %d\n\n", card.Year()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(out, "%-4s %-24s %6s  %s\n", "#", "Course", "Grade", "Letter"); err != nil {
		return err
	}
	for _, slot := range card.Slots() {
		if _, err := fmt.Fprintf(out, "%-4d %-24s %6s  %s\n",
			slot.Index,
			slot.Course,
			reportcard.FormatGrade(slot.Grade, true),
			slot.Letter,
		); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(out, "\nGPA %s\n", reportcard.FormatGrade(card.GPA(), false)); err != nil {
		return err
	}
	_, err := fmt.Fprintf(out, "\n%s\n", card)
	return err
}
