package dtos

type UploadAsyncResponse struct {
	JobID  string `json:"jobId"`
	Status string `json:"status"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

type PongResponse struct {
	Event     string `json:"event"`
	Timestamp string `json:"timestamp"`
}
