package ctxkey

const (
	KeyRequestBody = "key_request_body"
	RequestModel   = "request_model"
	StreamStarted  = "stream_started"
)
