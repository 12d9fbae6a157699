package line_webhook

// SuccessResponse ответ на успешно обработанный webhook
type SuccessResponse struct {
	Success bool `json:"success"`
}

// StatusResponse ответ на GET проверку endpoint'а
type StatusResponse struct {
	Status string `json:"status"`
}
