package reportcard

// Quirks toggles legacy behaviors kept for compatibility with existing
// report cards.
type Quirks struct {
	// AccumulateGPA adds the previous GPA into the sum on every
	// RecalculateGPA call instead of starting from zero.
	AccumulateGPA bool
	// HideUngradedLetters leaves slots past the supplied grades at "NA"
	// instead of classifying their padded grade (which would read "W").
	HideUngradedLetters bool
}

var (
	// DefaultQuirks matches existing report cards.
	DefaultQuirks = Quirks{AccumulateGPA: true, HideUngradedLetters: true}
	// CorrectedQuirks disables every legacy behavior.
	CorrectedQuirks = Quirks{}
)

// Option configures a Card at construction.
type Option func(*Card)

// WithQuirks replaces the card's compatibility behaviors.
func WithQuirks(q Quirks) Option {
	return func(c *Card) {
		c.quirks = q
	}
}
