package errors

import (
	"fmt"
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures theme configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// RenderError represents a failure while rendering a component to markup.
type RenderError struct {
	Story string
	Err   error
}

// NewRenderError constructs a RenderError for the given story.
func NewRenderError(story string, err error) error {
	return &RenderError{Story: story, Err: err}
}

func (e *RenderError) Error() string {
	if e == nil {
		return ""
	}
	if e.Story != "" {
		return fmt.Sprintf("render error on story %s: %v", e.Story, e.Err)
	}
	return fmt.Sprintf("render error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *RenderError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// StoryError indicates issues within story registration or lookup.
type StoryError struct {
	Story   string
	Message string
	Err     error
}

// NewStoryError constructs a StoryError for the given story ID.
func NewStoryError(story string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &StoryError{Story: story, Message: message, Err: err}
}

func (e *StoryError) Error() string {
	if e == nil {
		return ""
	}
	if e.Story != "" {
		return fmt.Sprintf("story error [%s]: %s", e.Story, e.Message)
	}
	return fmt.Sprintf("story error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *StoryError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
