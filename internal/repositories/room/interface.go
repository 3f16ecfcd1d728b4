package room

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/Yunus705/alpharush/internal/repositories/room Repository

import (
	"context"

	"github.com/Yunus705/alpharush/internal/models"
)

// Repository defines the interface for room record persistence
type Repository interface {
	// SaveRoom persists a room record
	SaveRoom(ctx context.Context, input *SaveRoomInput) error

	// GetRoom retrieves a room record by ID
	GetRoom(ctx context.Context, input *GetRoomInput) (*models.Room, error)

	// DeleteRoom removes a room record
	DeleteRoom(ctx context.Context, input *DeleteRoomInput) error

	// ListRoomIDs retrieves the IDs of all stored rooms
	ListRoomIDs(ctx context.Context, input *ListRoomIDsInput) (*ListRoomIDsOutput, error)
}
