package api

// ErrorResponse 全域錯誤回應，訊息來自訊息表
// swagger:model api.ErrorResponse
type ErrorResponse struct {
	Error string `json:"error" example:"Usuario no encontrado"`
}

// swagger:model api.MessageResponse
type MessageResponse struct {
	Message string `json:"message" example:"Usuario eliminado correctamente"`
}
