// Package token implements the tokenizer for the interpreter.
//
// Source text is scanned into an ordered sequence of Token values, one per
// recognized symbol. Any character outside the eight-symbol instruction set
// is a comment and produces no token. Tokenizing never fails; bracket
// balance is not checked here, only at the moment a jump is taken.
package token

// Token is a single instruction of the language.
type Token int

//go:generate go tool stringer -linecomment -type=Token
const (
	TOKEN_MOVE_LEFT  = Token(0) // <
	TOKEN_MOVE_RIGHT = Token(1) // >
	TOKEN_INCREMENT  = Token(2) // +
	TOKEN_DECREMENT  = Token(3) // -
	TOKEN_OUTPUT     = Token(4) // .
	TOKEN_INPUT      = Token(5) // ,
	TOKEN_LOOP_START = Token(6) // [
	TOKEN_LOOP_END   = Token(7) // ]
)

// The eight recognized symbols. Everything else is a comment.
var symbolMap = map[rune]Token{
	'<': TOKEN_MOVE_LEFT,
	'>': TOKEN_MOVE_RIGHT,
	'+': TOKEN_INCREMENT,
	'-': TOKEN_DECREMENT,
	'.': TOKEN_OUTPUT,
	',': TOKEN_INPUT,
	'[': TOKEN_LOOP_START,
	']': TOKEN_LOOP_END,
}

// Tokenizer scans source text into tokens.
type Tokenizer struct {
	input []rune
}

// NewTokenizer creates a tokenizer over the full source text.
func NewTokenizer(text string) (tk *Tokenizer) {
	tk = &Tokenizer{
		input: []rune(text),
	}

	return
}

// Tokenize returns the token sequence in source order.
func (tk *Tokenizer) Tokenize() (tokens []Token) {
	for _, char := range tk.input {
		tok, ok := symbolMap[char]
		if !ok {
			continue
		}
		tokens = append(tokens, tok)
	}

	return
}

// Count returns the number of occurrences of tok in tokens.
func Count(tokens []Token, tok Token) (count int) {
	for _, t := range tokens {
		if t == tok {
			count++
		}
	}

	return
}
