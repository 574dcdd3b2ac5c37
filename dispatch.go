package cards

// Dispatch translates one frame of input into quiz transitions.
// It returns false when the quit action (escape) was requested.
// Errors from advancing (notably ErrPoolExhausted) are passed through.
func Dispatch(in *InputState, q *Quiz) (bool, error) {
	if in.KeyPressed(KeyEscape) {
		return false, nil
	}

	if in.KeyPressed(KeyEnter) {
		if err := q.Submit(); err != nil {
			return false, err
		}
	}
	if in.KeyPressed(KeyDelete) {
		q.Clear()
	}
	if in.KeyPressed(KeyBackspace) {
		q.Backspace()
	}

	for _, r := range in.InputChars {
		if err := q.TypeChar(r); err != nil {
			return false, err
		}
	}
	return true, nil
}
