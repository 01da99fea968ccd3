package websocket

import (
	"encoding/json"

	"lmm-be/internal/service/dto"

	"go.uber.org/zap"
)

// 请求类型
const (
	REQ_ASSIGN = "Assign"
)

// 响应类型
const (
	RESP_ASSIGN_RESULT = "AssignResult"
	RESP_ERROR         = "Error"
)

type RequestWrapper struct {
	ReqType string          `json:"request_type"`
	Data    json.RawMessage `json:"data"`
	// 客户端可选的请求编号，原样带回，便于丢弃过期的结果
	RequestID string `json:"request_id,omitempty"`
}

type ResponseWrapper struct {
	RespType  string `json:"response_type"`
	RequestID string `json:"request_id,omitempty"`
	Data      any    `json:"data"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func TryUnwrapAssignRequest(wrapper RequestWrapper) *dto.AssignRequest {
	if wrapper.ReqType != REQ_ASSIGN {
		return nil
	}

	var assignRequest dto.AssignRequest

	err := json.Unmarshal(wrapper.Data, &assignRequest)
	if err != nil {
		zap.L().Error(
			"Failed to unwrap AssignRequest",
			zap.Error(err),
			zap.String("request_type", wrapper.ReqType),
		)
		return nil
	}

	return &assignRequest
}

func WrapResponse(respType, requestID string, data any) ResponseWrapper {
	return ResponseWrapper{
		RespType:  respType,
		RequestID: requestID,
		Data:      data,
	}
}

func WrapErrResponse(requestID, message string) ResponseWrapper {
	return WrapResponse(RESP_ERROR, requestID, ErrorResponse{Message: message})
}
