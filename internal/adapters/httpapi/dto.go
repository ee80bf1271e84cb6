package httpapi

// Response is the envelope every endpoint answers with.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

type CreateAppRequest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Value is a pointer so an explicit empty string can be told apart from a
// missing field.
type AddSecretRequest struct {
	Key   string  `json:"key"`
	Value *string `json:"value"`
}

type UpdateSecretRequest struct {
	Value *string `json:"value"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

func success(data any) Response {
	return Response{Success: true, Data: data}
}

func failure(message string) Response {
	return Response{Success: false, Error: message}
}
