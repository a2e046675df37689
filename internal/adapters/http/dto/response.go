package dto

// ErrorResponse is the envelope returned for every failed request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// NewErrorResponse creates an error envelope with the given message.
func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{Success: false, Error: message}
}

// DataResponse is the envelope for successful responses carrying a single payload.
type DataResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// NewDataResponse wraps a payload in the success envelope.
func NewDataResponse(data any) *DataResponse {
	return &DataResponse{Success: true, Data: data}
}

// ListResponse is the envelope for successful paginated list responses.
type ListResponse struct {
	Success    bool        `json:"success"`
	Data       any         `json:"data"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// NewListResponse wraps a list payload and its pagination metadata.
func NewListResponse(data any, pagination *Pagination) *ListResponse {
	return &ListResponse{Success: true, Data: data, Pagination: pagination}
}
