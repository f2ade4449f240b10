package usecase

import (
	"github.com/aalvaropc/workoutlog/internal/ports"
)

type InitWorkspace struct {
	initializer ports.ConfigInitializer
}

func NewInitWorkspace(initializer ports.ConfigInitializer) *InitWorkspace {
	return &InitWorkspace{initializer: initializer}
}

func (uc *InitWorkspace) Execute(root string, force bool) error {
	return uc.initializer.Init(root, force)
}
