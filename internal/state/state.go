package state

import (
	"lmm-be/internal/config"
	"lmm-be/internal/service"
)

type AppState struct {
	Cfg         *config.AppConfig
	RoleSvc     *service.RoleService
	RolelistSvc *service.RolelistService
	AssignSvc   *service.AssignmentService
}

func NewAppState(
	cfg *config.AppConfig,
	roleSvc *service.RoleService,
	rolelistSvc *service.RolelistService,
	assignSvc *service.AssignmentService,
) *AppState {
	return &AppState{
		Cfg:         cfg,
		RoleSvc:     roleSvc,
		RolelistSvc: rolelistSvc,
		AssignSvc:   assignSvc,
	}
}
