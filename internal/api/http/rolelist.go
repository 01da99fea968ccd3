package http

import (
	"lmm-be/internal/state"

	"github.com/kataras/iris/v12"
)

func RolelistOverview(appState *state.AppState) iris.Handler {
	return func(ctx iris.Context) {
		ctx.JSON(appState.RolelistSvc.Overview())
	}
}

// GetRolelist 人数越界时返回最接近的可用列表，而不是 404
func GetRolelist(appState *state.AppState) iris.Handler {
	return func(ctx iris.Context) {
		count := ctx.Params().GetIntDefault("count", 0)

		ctx.JSON(appState.RolelistSvc.Explore(count))
	}
}
