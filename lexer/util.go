package lexer

import "strconv"

// parseFloat converts a validated numeric lexeme (one the scanner has
// already confirmed matches the number grammar) into its float64 value.
// The error is ignored because scanNumber guarantees the lexeme is
// well-formed; ParseFloat cannot fail on input it produced itself.
func parseFloat(lexeme string) float64 {
	v, _ := strconv.ParseFloat(lexeme, 64)
	return v
}
