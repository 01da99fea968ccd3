package http

import (
	"errors"

	"lmm-be/internal/service"
	"lmm-be/internal/service/assign"
	"lmm-be/internal/service/dto"
	"lmm-be/internal/state"

	"github.com/kataras/iris/v12"
)

func CreateAssignment(appState *state.AppState) iris.Handler {
	return func(ctx iris.Context) {
		var req dto.AssignRequest

		if err := ctx.ReadJSON(&req); err != nil {
			writeError(ctx, iris.StatusBadRequest, errors.New("invalid request body"))
			return
		}

		resp, err := appState.AssignSvc.Assign(req)
		if err != nil {
			writeError(ctx, assignErrorStatus(err), err)
			return
		}

		ctx.JSON(resp)
	}
}

// 目录不可用属于服务端问题，其余都是请求本身的问题
func assignErrorStatus(err error) int {
	switch {
	case errors.Is(err, assign.ErrCatalogUnavailable):
		return iris.StatusServiceUnavailable
	case errors.Is(err, service.ErrRoleListRequired),
		errors.Is(err, service.ErrTooManySlots),
		errors.Is(err, assign.ErrEmptyRoleList):
		return iris.StatusBadRequest
	default:
		return iris.StatusInternalServerError
	}
}
