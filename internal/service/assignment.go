package service

import (
	"errors"
	"strings"

	"lmm-be/internal/service/assign"
	"lmm-be/internal/service/catalog"
	"lmm-be/internal/service/dto"

	"go.uber.org/zap"
)

// 单次分配允许的最大槽位数，防止超大请求
const MAX_SLOTS = 100

var (
	ErrRoleListRequired = errors.New("role list must not be empty")
	ErrTooManySlots     = errors.New("role list has too many slots")
)

// AssignmentService 对外提供角色分配
// 每次调用都在当前 goroutine 内完整执行，随机数生成器不会跨请求共享
type AssignmentService struct {
	engine *assign.Engine
}

// NewAssignmentService 的目录为 nil 时服务仍然可以创建，但所有分配请求都会失败
func NewAssignmentService(c *catalog.Catalog) *AssignmentService {
	return &AssignmentService{engine: assign.NewEngine(c)}
}

func (as *AssignmentService) Assign(req dto.AssignRequest) (dto.AssignResponse, error) {
	slots := assign.SplitLines(req.RoleList)
	if len(slots) == 0 {
		return dto.AssignResponse{}, ErrRoleListRequired
	}
	if len(slots) > MAX_SLOTS {
		return dto.AssignResponse{}, ErrTooManySlots
	}

	runID := newRunID()
	seed := strings.TrimSpace(req.Seed)

	assignments, err := as.engine.Assign(assign.Input{
		RoleList:   req.RoleList,
		PlayerList: req.PlayerList,
		Seed:       seed,
	})
	if err != nil {
		zap.L().Warn(
			"角色分配失败",
			zap.String("run_id", runID),
			zap.Error(err),
		)
		return dto.AssignResponse{}, err
	}

	resp := dto.AssignResponse{
		RunID:         runID,
		Seed:          seed,
		Deterministic: seed != "",
		Assignments:   make([]dto.AssignmentView, 0, len(assignments)),
	}

	for _, a := range assignments {
		view := dto.AssignmentView{
			SlotNumber: a.SlotNumber,
			Slot:       a.Slot,
			Player:     a.Player,
			Role:       a.Role,
		}

		if a.Err != nil {
			resp.Failed++
			view.Error = a.Err.Error()

			var slotErr *assign.SlotError
			if errors.As(a.Err, &slotErr) {
				view.ErrorKind = slotErr.Kind.String()
			}
		} else {
			resp.Assigned++
		}

		resp.Assignments = append(resp.Assignments, view)
	}

	zap.L().Info(
		"角色分配完成",
		zap.String("run_id", runID),
		zap.Bool("deterministic", resp.Deterministic),
		zap.Int("slots", len(assignments)),
		zap.Int("assigned", resp.Assigned),
		zap.Int("failed", resp.Failed),
	)

	return resp, nil
}
