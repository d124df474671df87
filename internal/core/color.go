package core

// Color is the semantic color of a screen cell.
// The platform layer decides how each color looks in the terminal.
type Color uint8

// Cell colors used by the verse games.
const (
	ColorDefault Color = iota
	ColorMuted         // separators, help text, hidden-word blanks
	ColorTitle         // headers and references
	ColorCipher        // encrypted letters and scrambled tiles
	ColorGuess         // player-entered letters
	ColorFocus         // the active input cell
	ColorHint          // letters revealed by a hint
	ColorCorrect       // locked/correct answers and matched cards
	ColorError         // transient mistake flash
	ColorSelected      // selected match card
)

// String returns the color's name, mostly useful in test failures.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorMuted:
		return "muted"
	case ColorTitle:
		return "title"
	case ColorCipher:
		return "cipher"
	case ColorGuess:
		return "guess"
	case ColorFocus:
		return "focus"
	case ColorHint:
		return "hint"
	case ColorCorrect:
		return "correct"
	case ColorError:
		return "error"
	case ColorSelected:
		return "selected"
	default:
		return "unknown"
	}
}
