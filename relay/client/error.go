package client

import (
	"github.com/ZiadElshayeb/workky/relay/model"
)

func ErrorWrapper(err error, code string, statusCode int) *model.ErrorWithStatusCode {
	return &model.ErrorWithStatusCode{
		Error: model.Error{
			Message: err.Error(),
			Type:    "workky_api_error",
			Code:    code,
		},
		StatusCode: statusCode,
	}
}
