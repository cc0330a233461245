package errno

import (
	"errors"
)

var (
	ErrNilTool       = errors.New("tool is nil")
	ErrEmptyToolName = errors.New("tool name is empty")
	ErrDuplicateTool = errors.New("tool already registered")
	ErrToolNotFound  = errors.New("tool not found")
)
