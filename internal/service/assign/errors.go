package assign

import "errors"

var (
	ErrEmptyRoleList      = errors.New("role list is empty")
	ErrCatalogUnavailable = errors.New("role catalog is not loaded")

	ErrInvalidSlotFormat   = errors.New("invalid slot format")
	ErrNoRolesForAlignment = errors.New("no roles for alignment")
	ErrNoRolesMatching     = errors.New("no roles matching")
)

type ErrorKind int

const (
	InvalidSlotFormat ErrorKind = iota + 1
	NoRolesForAlignment
	NoRolesMatching
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidSlotFormat:
		return "InvalidSlotFormat"
	case NoRolesForAlignment:
		return "NoRolesForAlignment"
	case NoRolesMatching:
		return "NoRolesMatching"
	default:
		return "Unknown"
	}
}

// SlotError 是单个槽位解析失败的原因，不会中断整次分配
type SlotError struct {
	Kind      ErrorKind
	Slot      string
	Alignment string
}

func (e *SlotError) Error() string {
	if e == nil {
		return ""
	}

	switch e.Kind {
	case InvalidSlotFormat:
		return "Invalid slot format: " + e.Slot
	case NoRolesForAlignment:
		return "No roles found for alignment: " + e.Alignment
	case NoRolesMatching:
		return "No roles found matching: " + e.Slot
	default:
		return "Unknown slot error: " + e.Slot
	}
}

// Is 让 errors.Is 可以按错误种类匹配哨兵错误
func (e *SlotError) Is(target error) bool {
	switch target {
	case ErrInvalidSlotFormat:
		return e.Kind == InvalidSlotFormat
	case ErrNoRolesForAlignment:
		return e.Kind == NoRolesForAlignment
	case ErrNoRolesMatching:
		return e.Kind == NoRolesMatching
	default:
		return false
	}
}
