package cmark

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidHeadingLevel reports a heading level outside 1..6.
	ErrInvalidHeadingLevel = errors.New("invalid heading level")
	// ErrNewlineInInline reports a line break inside inline-only content.
	ErrNewlineInInline = errors.New("newline in inline element")
	// ErrInvalidStructure reports a node placed where it cannot be rendered.
	ErrInvalidStructure = errors.New("invalid structure")
	// ErrInvalidHTMLTag reports a tag name containing angle brackets.
	ErrInvalidHTMLTag = errors.New("invalid HTML tag")
	// ErrInvalidHTMLAttribute reports an attribute name containing angle brackets.
	ErrInvalidHTMLAttribute = errors.New("invalid HTML attribute")
	// ErrUnsupportedNode reports a node the writer cannot render.
	ErrUnsupportedNode = errors.New("unsupported node")
	// ErrHTMLFallback reports a failure of the HTML renderer.
	ErrHTMLFallback = errors.New("HTML fallback failed")
	// ErrDepthExceeded reports a tree nested deeper than Options.MaxDepth.
	ErrDepthExceeded = errors.New("maximum nesting depth exceeded")
)

// CustomError is an error raised by custom node implementations. Code is
// optional.
type CustomError struct {
	Message string
	Code    string
}

// NewCustomError returns a CustomError without a code.
func NewCustomError(message string) *CustomError {
	return &CustomError{Message: message}
}

// NewCodedError returns a CustomError carrying code.
func NewCodedError(message, code string) *CustomError {
	return &CustomError{Message: message, Code: code}
}

func (e *CustomError) Error() string {
	if e.Code == "" {
		return "custom error: " + e.Message
	}
	return fmt.Sprintf("custom error [%s]: %s", e.Code, e.Message)
}
