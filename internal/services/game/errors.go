package game

import "errors"

// Define errors
var (
	ErrRoomNotFound    = errors.New("room not found")
	ErrDuplicateRoom   = errors.New("room already exists")
	ErrRoomFull        = errors.New("room is at maximum capacity")
	ErrWrongSecret     = errors.New("wrong room secret")
	ErrNotHost         = errors.New("only the host can perform this action")
	ErrInvalidState    = errors.New("invalid action for current room state")
	ErrPlayerNotFound  = errors.New("player not found")
	ErrRoundNotFound   = errors.New("round not found")
	ErrInvalidCategory = errors.New("unknown answer category")
)
