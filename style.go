package cards

// Style defines the visual appearance of the quiz scene.
type Style struct {
	// Colors
	BackgroundColor uint32
	InkColor        uint32 // score and typed text
	RevealColor     uint32 // revealed answer
	OutlineColor    uint32 // border around the card image

	// Sizing
	ScoreTextSize    float32
	AnswerTextSize   float32
	OutlineThickness float32
}

// DefaultStyle returns the classic flash-card look: warm paper
// background, near-black ink, bright green reveal.
func DefaultStyle() Style {
	return Style{
		BackgroundColor: RGBA(255, 250, 233, 255),
		InkColor:        RGBA(25, 25, 25, 255),
		RevealColor:     RGBA(0, 250, 0, 255),
		OutlineColor:    ColorBlack,

		ScoreTextSize:    25,
		AnswerTextSize:   50,
		OutlineThickness: 2,
	}
}
