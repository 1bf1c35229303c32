package response

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

const (
	MessageSuccess = "Success"

	DefaultErrorMessage     = "Something went wrong"
	GatewayErrorMessage     = "Task service unavailable"
	InternalServerErrorCode = 500
	BadGatewayErrorCode     = 502
	TooManyRequestsCode     = 429
)
