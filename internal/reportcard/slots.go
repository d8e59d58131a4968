package reportcard

// The bulk accessors return copies; mutating them does not touch the card.

// Slots returns all slots in index order.
func (c *Card) Slots() []Slot {
	out := make([]Slot, len(c.slots))
	copy(out, c.slots[:])
	return out
}

// CourseIndexes returns the 1-based index of every slot.
func (c *Card) CourseIndexes() []int {
	out := make([]int, len(c.slots))
	for i, slot := range c.slots {
		out[i] = slot.Index
	}
	return out
}

// Courses returns every course name.
func (c *Card) Courses() []string {
	out := make([]string, len(c.slots))
	for i, slot := range c.slots {
		out[i] = slot.Course
	}
	return out
}

// Grades returns every numeric grade.
func (c *Card) Grades() []float32 {
	out := make([]float32, len(c.slots))
	for i, slot := range c.slots {
		out[i] = slot.Grade
	}
	return out
}

// LetterGrades returns every letter grade.
func (c *Card) LetterGrades() []Letter {
	out := make([]Letter, len(c.slots))
	for i, slot := range c.slots {
		out[i] = slot.Letter
	}
	return out
}
