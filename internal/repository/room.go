package repository

import (
	"sync"

	"github.com/rocketscienceinc/monstermayhem-backend/internal/apperror"
	"github.com/rocketscienceinc/monstermayhem-backend/internal/entity"
)

type RoomRepository interface {
	// GetOrCreate returns the room with id, creating it with creatorID as its first member
	// when it does not exist yet. created reports whether a new room was made.
	GetOrCreate(id, creatorID string) (room *entity.Room, created bool)
	GetByID(id string) (*entity.Room, error)
	Count() int
}

// memoryRooms keeps every room for the lifetime of the process.
type memoryRooms struct {
	mu    sync.RWMutex
	rooms map[string]*entity.Room
}

func NewRoomRepository() RoomRepository {
	return &memoryRooms{
		rooms: make(map[string]*entity.Room),
	}
}

func (that *memoryRooms) GetOrCreate(id, creatorID string) (*entity.Room, bool) {
	that.mu.RLock()
	room, ok := that.rooms[id]
	that.mu.RUnlock()

	if ok {
		return room, false
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	// another join may have created it between the two locks
	if room, ok = that.rooms[id]; ok {
		return room, false
	}

	room = entity.NewRoom(id, creatorID)
	that.rooms[id] = room

	return room, true
}

func (that *memoryRooms) GetByID(id string) (*entity.Room, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	room, ok := that.rooms[id]
	if !ok {
		return nil, apperror.ErrRoomNotFound
	}

	return room, nil
}

func (that *memoryRooms) Count() int {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return len(that.rooms)
}
