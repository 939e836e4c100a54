package pipeline

import "fmt"

// Stable machine-readable error codes surfaced to the transport layer.
// Codes are part of the public contract and must not change meaning.
const (
	CodeEmptySubmission    = "empty_submission"
	CodeSubmissionTooLong  = "submission_too_long"
	CodeUnknownChallenge   = "unknown_challenge"
	CodeDuplicateAttempt   = "duplicate_attempt"
	CodeCooldownActive     = "cooldown_active"
	CodeEmptyModelResponse = "empty_model_response"
	CodeSaveAttemptFailed  = "save_attempt_failed"
)

// Error is a user-visible pipeline failure. Input errors reject the
// submission before any scoring; the only post-scoring failures are
// store-write errors on the critical path.
type Error struct {
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func inputError(code, message string) *Error {
	return &Error{Code: code, Message: message}
}
