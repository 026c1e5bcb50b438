package model

import "fmt"

// LayoutError represents document composition failures with block context
type LayoutError struct {
	Block   string
	Message string
	Cause   error
}

func (e *LayoutError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("layout failed [%s]: %s (%v)", e.Block, e.Message, e.Cause)
	}
	return fmt.Sprintf("layout failed [%s]: %s", e.Block, e.Message)
}

func (e *LayoutError) Unwrap() error {
	return e.Cause
}

// NewLayoutError creates a new layout error
func NewLayoutError(block, message string, cause error) *LayoutError {
	return &LayoutError{
		Block:   block,
		Message: message,
		Cause:   cause,
	}
}

// RenderError represents PDF backend failures
type RenderError struct {
	Stage   string
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render failed [%s]: %s (%v)", e.Stage, e.Message, e.Cause)
	}
	return fmt.Sprintf("render failed [%s]: %s", e.Stage, e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// NewRenderError creates a new render error
func NewRenderError(stage, message string, cause error) *RenderError {
	return &RenderError{
		Stage:   stage,
		Message: message,
		Cause:   cause,
	}
}

// GenerationError represents a per-customer failure inside a batch run.
// The batch itself continues past it.
type GenerationError struct {
	Customer string
	Message  string
	Cause    error
}

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("generation failed for %q: %s (%v)", e.Customer, e.Message, e.Cause)
	}
	return fmt.Sprintf("generation failed for %q: %s", e.Customer, e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// NewGenerationError creates a new generation error
func NewGenerationError(customer, message string, cause error) *GenerationError {
	return &GenerationError{
		Customer: customer,
		Message:  message,
		Cause:    cause,
	}
}
