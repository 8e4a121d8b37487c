package exampaper

import (
	"errors"
	"fmt"
)

// TemplateMissingError reports that no template was supplied for assembly.
type TemplateMissingError struct{}

func (e *TemplateMissingError) Error() string {
	return "no question paper template was supplied"
}

// TemplateInvalidError reports that the supplied template bytes are not a
// parseable DOCX package.
type TemplateInvalidError struct {
	Cause error
}

func (e *TemplateInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template is not a valid DOCX document: %v", e.Cause)
	}
	return "template is not a valid DOCX document"
}

func (e *TemplateInvalidError) Unwrap() error {
	return e.Cause
}

// EmptyQuestionSetError reports an assembly request with zero questions.
type EmptyQuestionSetError struct{}

func (e *EmptyQuestionSetError) Error() string {
	return "question set is empty: add at least one question"
}

// ImageDecodeError reports an image question whose bytes could not be
// decoded. Number is the 1-based position in the question sequence.
type ImageDecodeError struct {
	Number int
	Cause  error
}

func (e *ImageDecodeError) Error() string {
	return fmt.Sprintf("question %d: cannot decode embedded image: %v", e.Number, e.Cause)
}

func (e *ImageDecodeError) Unwrap() error {
	return e.Cause
}

// IsTemplateMissing checks if an error is a missing-template error
func IsTemplateMissing(err error) bool {
	var target *TemplateMissingError
	return errors.As(err, &target)
}

// IsTemplateInvalid checks if an error is an invalid-template error
func IsTemplateInvalid(err error) bool {
	var target *TemplateInvalidError
	return errors.As(err, &target)
}

// IsEmptyQuestionSet checks if an error is an empty-question-set error
func IsEmptyQuestionSet(err error) bool {
	var target *EmptyQuestionSetError
	return errors.As(err, &target)
}

// IsImageDecode checks if an error is an image-decode error
func IsImageDecode(err error) bool {
	var target *ImageDecodeError
	return errors.As(err, &target)
}
