package http

import (
	"fmt"

	"lmm-be/internal/api/http/websocket"
	"lmm-be/internal/state"

	"github.com/kataras/iris/v12"
	"go.uber.org/zap"
)

// NewApp 注册所有路由，不启动监听，测试中直接使用
func NewApp(appState *state.AppState) *iris.Application {
	app := iris.New()
	app.Use(iris.Compression)

	if appState.Cfg != nil && appState.Cfg.StaticDir != "" {
		app.HandleDir(
			"/",
			iris.Dir(appState.Cfg.StaticDir),
			iris.DirOptions{
				IndexName: "index.html",
				Compress:  true,
			},
		)
	}

	api := app.Party("/api/v1")

	roles := api.Party("/roles")
	roles.Get("/", ListRoles(appState))
	roles.Get("/archetypes", ListArchetypes(appState))
	roles.Get("/archetypes/toggle", ToggleAlignment(appState))
	roles.Get("/search", SearchRoles(appState))
	roles.Get("/{id:int}", GetRole(appState))

	rolelists := api.Party("/rolelists")
	rolelists.Get("/", RolelistOverview(appState))
	rolelists.Get("/{count:int}", GetRolelist(appState))

	api.Post("/assignments", CreateAssignment(appState))

	api.Get("/ws/assign", websocket.LiveAssign(appState))

	return app
}

func RunServer(appState *state.AppState) error {
	app := NewApp(appState)

	addr := fmt.Sprintf(
		"%s:%d",
		appState.Cfg.Host,
		appState.Cfg.Port,
	)

	zap.L().Info("服务器启动", zap.String("addr", addr))

	return app.Listen(addr)
}

func writeError(ctx iris.Context, status int, err error) {
	ctx.StatusCode(status)
	ctx.JSON(iris.Map{
		"error": err.Error(),
	})
}
