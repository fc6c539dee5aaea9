package model

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

type Error struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Param   string `json:"param"`
	Code    any    `json:"code"`
}

type ErrorWithStatusCode struct {
	Error
	StatusCode int `json:"status_code"`
}

func NewErrorWithStatusCode(statusCode int, code any, message string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{
		Error: Error{
			Message: message,
			Type:    "workky_api_error",
			Param:   "",
			Code:    code,
		},
		StatusCode: statusCode,
	}
}
