package turtle

import "fmt"

// SyntaxError reports malformed Turtle input. It is fatal for the document
// that produced it: parsing stops at the failure point, but other documents
// in a bundle are still attempted.
type SyntaxError struct {
	// Document is the name of the source being parsed.
	Document string

	// Line and Col are 1-based; Offset is the byte offset into the input.
	Line, Col, Offset int

	// Expected describes the token class the parser wanted.
	Expected string

	// Got is the text or token actually found.
	Got string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d:%d: expected %s, got %s", e.Document, e.Line, e.Col, e.Expected, e.Got)
}
