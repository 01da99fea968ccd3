package http

import (
	"errors"

	"lmm-be/internal/service/catalog"
	"lmm-be/internal/service/dto"
	"lmm-be/internal/state"

	"github.com/kataras/iris/v12"
)

// ListRoles 对应角色画廊
// 查询参数：archetype（可重复）、gender、sort
func ListRoles(appState *state.AppState) iris.Handler {
	return func(ctx iris.Context) {
		req := dto.GalleryRequest{
			Gender: ctx.URLParam("gender"),
			SortBy: ctx.URLParam("sort"),
		}

		// 未传 archetype 表示全选，传了 all=false 且没有 archetype 表示全不选
		query := ctx.Request().URL.Query()
		if values, ok := query["archetype"]; ok {
			req.Archetypes = values
		} else if ctx.URLParamExists("all") && !ctx.URLParamBoolDefault("all", true) {
			req.Archetypes = []string{}
		}

		ctx.JSON(appState.RoleSvc.Gallery(req))
	}
}

func ListArchetypes(appState *state.AppState) iris.Handler {
	return func(ctx iris.Context) {
		ctx.JSON(appState.RoleSvc.Archetypes())
	}
}

func ToggleAlignment(appState *state.AppState) iris.Handler {
	return func(ctx iris.Context) {
		alignment := ctx.URLParamTrim("alignment")
		if alignment == "" {
			writeError(ctx, iris.StatusBadRequest, errors.New("alignment is required"))
			return
		}

		selected := ctx.Request().URL.Query()["selected"]

		ctx.JSON(appState.RoleSvc.ToggleAlignment(selected, alignment))
	}
}

func SearchRoles(appState *state.AppState) iris.Handler {
	return func(ctx iris.Context) {
		resp, err := appState.RoleSvc.Search(ctx.URLParam("q"))
		if err != nil {
			writeError(ctx, iris.StatusBadRequest, err)
			return
		}

		ctx.JSON(resp)
	}
}

func GetRole(appState *state.AppState) iris.Handler {
	return func(ctx iris.Context) {
		id := ctx.Params().GetIntDefault("id", 0)

		detail, err := appState.RoleSvc.Detail(id)
		if errors.Is(err, catalog.ErrRoleNotFound) {
			writeError(ctx, iris.StatusNotFound, err)
			return
		}
		if err != nil {
			writeError(ctx, iris.StatusInternalServerError, err)
			return
		}

		ctx.JSON(detail)
	}
}
