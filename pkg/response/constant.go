package response

const (
	// MessageSuccess is the message returned on successful responses.
	MessageSuccess = "Success"

	// InternalServerErrorCode is the error code for unexpected failures.
	InternalServerErrorCode = 500

	// DefaultErrorMessage hides internal details from the caller.
	DefaultErrorMessage = "Internal server error"
)
