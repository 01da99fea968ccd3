package service

import (
	"github.com/google/uuid"
)

// newRunID 生成按时间排序的 ID，便于在日志里按顺序追踪每次分配
func newRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}

	return id.String()
}
