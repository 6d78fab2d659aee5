package serverutils

// Response is the JSON envelope used by every endpoint.
type Response[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    T      `json:"data,omitempty"`
}

func SuccessResponse[T any](message string, data T) Response[T] {
	return Response[T]{
		Success: true,
		Message: message,
		Data:    data,
	}
}

type ErrorBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func ErrorResponse(message string) ErrorBody {
	return ErrorBody{
		Success: false,
		Error:   message,
	}
}
