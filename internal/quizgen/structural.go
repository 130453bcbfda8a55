package quizgen

// StructuralValidator checks that required fields are present, within
// length limits, and consistent with the question type.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Question, _ GenerateInput) *ValidationError {
	if q.Text == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question_text is empty",
			Retryable: true,
		}
	}
	if len(q.Text) > 500 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question_text exceeds 500 characters",
			Retryable: true,
		}
	}
	if q.Type != TypeMultipleChoice && q.Type != TypeFreeText {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question_type must be \"multiple-choice\" or \"free-text\"",
			Retryable: true,
		}
	}

	switch q.Type {
	case TypeMultipleChoice:
		if len(q.Options) != 4 {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "multiple-choice question must have exactly 4 options",
				Retryable: true,
			}
		}
		if !isOptionLetter(q.Answer) {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "multiple-choice answer must be a single letter A-D",
				Retryable: true,
			}
		}
		if q.Explanation == "" {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "multiple-choice question is missing an explanation",
				Retryable: true,
			}
		}

	case TypeFreeText:
		if q.Answer == "" {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "free-text question is missing a model answer",
				Retryable: true,
			}
		}
		if len(q.KeyPoints) == 0 {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "free-text question is missing key points",
				Retryable: true,
			}
		}
		if len(q.KeyPoints) > 5 {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "free-text question has more than 5 key points",
				Retryable: true,
			}
		}
	}

	return nil
}

// isOptionLetter reports whether s is a single letter A-D (either case).
func isOptionLetter(s string) bool {
	if len(s) != 1 {
		return false
	}
	c := s[0]
	return (c >= 'A' && c <= 'D') || (c >= 'a' && c <= 'd')
}

// TypeMatchValidator checks that the generated question uses the
// requested answer format.
type TypeMatchValidator struct{}

func (v *TypeMatchValidator) Name() string { return "type-match" }

func (v *TypeMatchValidator) Validate(q *Question, input GenerateInput) *ValidationError {
	if input.Type != "" && q.Type != input.Type {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question type does not match the requested type",
			Retryable: true,
		}
	}
	return nil
}
