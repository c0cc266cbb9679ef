package response

const (
	MessageSuccess          = "Success"
	DefaultErrorMessage     = "Something went wrong"
	InternalServerErrorCode = 500

	// DateTimeFormat is how timestamps such as a task's created_at are rendered.
	DateTimeFormat = "2006-01-02 15:04:05"
)
