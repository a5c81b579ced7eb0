package buffer

// wordSpan locates the span starting at charPosition in the line at lineIndex.
// The span ends before the next space or at the end of the line. Positions
// count runes. Returns the line as runes and the [start, end) rune span.
func (b *LineBuffer) wordSpan(lineIndex, charPosition int) ([]rune, int, int, error) {
	if lineIndex < 0 || lineIndex >= len(b.lines) {
		return nil, 0, 0, ErrInvalidLineIndex
	}

	runes := []rune(b.lines[lineIndex])
	if charPosition < 0 || charPosition > len(runes) {
		return nil, 0, 0, ErrInvalidPosition
	}

	end := charPosition
	for end < len(runes) && runes[end] != ' ' {
		end++
	}
	return runes, charPosition, end, nil
}

// RemoveWordAt deletes the span from charPosition to the next space or end of line.
func (b *LineBuffer) RemoveWordAt(lineIndex, charPosition int) error {
	runes, start, end, err := b.wordSpan(lineIndex, charPosition)
	if err != nil {
		return err
	}

	b.lines[lineIndex] = string(runes[:start]) + string(runes[end:])
	return nil
}

// SubstituteWordAt replaces the span from charPosition to the next space or
// end of line with newWord.
func (b *LineBuffer) SubstituteWordAt(lineIndex, charPosition int, newWord string) error {
	runes, start, end, err := b.wordSpan(lineIndex, charPosition)
	if err != nil {
		return err
	}
	if hasLineBreak(newWord) {
		return ErrInvalidArgument
	}

	b.lines[lineIndex] = string(runes[:start]) + newWord + string(runes[end:])
	return nil
}
