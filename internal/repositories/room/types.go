package room

import "github.com/Yunus705/alpharush/internal/models"

// SaveRoomInput contains parameters for persisting a room
type SaveRoomInput struct {
	Room *models.Room
}

// GetRoomInput contains parameters for retrieving a room
type GetRoomInput struct {
	RoomID string
}

// DeleteRoomInput contains parameters for removing a room
type DeleteRoomInput struct {
	RoomID string
}

// ListRoomIDsInput contains parameters for listing stored rooms
type ListRoomIDsInput struct{}

// ListRoomIDsOutput contains the result of listing stored rooms
type ListRoomIDsOutput struct {
	RoomIDs []string
}
