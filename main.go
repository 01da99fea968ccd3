package main

import (
	"context"
	"time"

	"lmm-be/internal/api/http"
	"lmm-be/internal/config"
	"lmm-be/internal/logger"
	"lmm-be/internal/service"
	"lmm-be/internal/service/catalog"
	"lmm-be/internal/service/rolelist"
	"lmm-be/internal/state"

	"go.uber.org/zap"
)

func main() {
	// 加载配置
	cfg := config.InitConfig()

	// 初始化日志器
	logger.InitLogger(cfg.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// 角色目录是分配的前提，加载失败直接退出
	roles, err := catalog.Load(ctx, cfg.RolesPath)
	if err != nil {
		zap.L().Fatal(
			"角色目录加载失败",
			zap.String("source", cfg.RolesPath),
			zap.Error(err),
		)
	}

	// 推荐列表缺失时只影响浏览页面
	lists, err := rolelist.Load(ctx, cfg.RolelistsPath)
	if err != nil {
		zap.L().Warn(
			"推荐角色列表加载失败，使用默认人数范围",
			zap.String("source", cfg.RolelistsPath),
			zap.Error(err),
		)
		lists = rolelist.Fallback()
	}

	groups := catalog.InvestigativeGroups{
		InvestigatorID: cfg.InvestigatorID,
		Groups:         cfg.InvestigativeGroups,
	}

	// 组装应用状态
	appState := state.NewAppState(
		cfg,
		service.NewRoleService(roles, groups),
		service.NewRolelistService(lists),
		service.NewAssignmentService(roles),
	)

	// 启动服务器
	if err := http.RunServer(appState); err != nil {
		zap.L().Fatal("服务器异常退出", zap.Error(err))
	}
}
