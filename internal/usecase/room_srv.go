package usecase

import (
	"context"
	"fmt"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

type RoomService interface {
	CreateRoom(ctx context.Context, req *request.CreateRoomRequest) (*response.RoomResponse, error)
	GetRooms(ctx context.Context, req *request.ListRoomsRequest) ([]response.RoomResponse, error)
	GetRoomByID(ctx context.Context, roomID int64) (*response.RoomResponse, error)
	UpdateRoom(ctx context.Context, roomID int64, req *request.CreateRoomRequest) (*response.RoomResponse, error)
	DeleteRoom(ctx context.Context, roomID int64) error
}

type roomService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRoomService(repo *repository.Repository, log *zap.Logger) RoomService {
	return &roomService{
		repo: repo,
		log:  log.With(zap.String("service", "room")),
	}
}

func (s *roomService) CreateRoom(ctx context.Context, req *request.CreateRoomRequest) (*response.RoomResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create room validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if req.AvailableRooms > req.TotalRooms {
		return nil, fmt.Errorf("validation failed: available_rooms cannot exceed total_rooms")
	}

	existing, err := s.repo.Room.FindByCode(ctx, req.RoomCode)
	if err != nil {
		s.log.Error("Failed to check room code", zap.Error(err), zap.String("room_code", req.RoomCode))
		return nil, fmt.Errorf("check room code: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("room code %s already exists", req.RoomCode)
	}

	room := &entity.Room{
		RoomType:       req.RoomType,
		RoomCode:       req.RoomCode,
		TotalRooms:     req.TotalRooms,
		AvailableRooms: req.AvailableRooms,
		Price:          req.Price,
	}

	if err := s.repo.Room.Create(ctx, room); err != nil {
		s.log.Error("Failed to create room", zap.Error(err), zap.String("room_code", req.RoomCode))
		return nil, fmt.Errorf("create room: %w", err)
	}

	s.log.Info("Room created",
		zap.Int64("room_id", room.RoomID),
		zap.String("room_code", room.RoomCode),
	)

	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (s *roomService) GetRooms(ctx context.Context, req *request.ListRoomsRequest) ([]response.RoomResponse, error) {
	page := &request.PaginatedRequest{Page: req.Page, PerPage: req.PerPage}

	rooms, err := s.repo.Room.FindAll(ctx, req.RoomType, req.AvailableOnly, page.Limit(), page.Offset())
	if err != nil {
		s.log.Error("Failed to list rooms", zap.Error(err))
		return nil, fmt.Errorf("list rooms: %w", err)
	}

	responses := make([]response.RoomResponse, len(rooms))
	for i, room := range rooms {
		responses[i] = response.RoomToResponse(room)
	}

	return responses, nil
}

func (s *roomService) GetRoomByID(ctx context.Context, roomID int64) (*response.RoomResponse, error) {
	room, err := s.repo.Room.FindByID(ctx, roomID)
	if err != nil {
		s.log.Error("Failed to find room", zap.Error(err), zap.Int64("room_id", roomID))
		return nil, fmt.Errorf("find room: %w", err)
	}
	if room == nil {
		return nil, fmt.Errorf("room %d not found", roomID)
	}

	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (s *roomService) UpdateRoom(ctx context.Context, roomID int64, req *request.CreateRoomRequest) (*response.RoomResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update room validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if req.AvailableRooms > req.TotalRooms {
		return nil, fmt.Errorf("validation failed: available_rooms cannot exceed total_rooms")
	}

	room, err := s.repo.Room.FindByID(ctx, roomID)
	if err != nil {
		s.log.Error("Failed to find room", zap.Error(err), zap.Int64("room_id", roomID))
		return nil, fmt.Errorf("find room: %w", err)
	}
	if room == nil {
		return nil, fmt.Errorf("room %d not found", roomID)
	}

	// Room code stays unique across the inventory
	if req.RoomCode != room.RoomCode {
		conflict, err := s.repo.Room.FindByCode(ctx, req.RoomCode)
		if err != nil {
			s.log.Error("Failed to check room code", zap.Error(err), zap.String("room_code", req.RoomCode))
			return nil, fmt.Errorf("check room code: %w", err)
		}
		if conflict != nil {
			return nil, fmt.Errorf("room code %s already exists", req.RoomCode)
		}
	}

	room.RoomType = req.RoomType
	room.RoomCode = req.RoomCode
	room.TotalRooms = req.TotalRooms
	room.AvailableRooms = req.AvailableRooms
	room.Price = req.Price

	if err := s.repo.Room.Update(ctx, room); err != nil {
		s.log.Error("Failed to update room", zap.Error(err), zap.Int64("room_id", roomID))
		return nil, fmt.Errorf("update room: %w", err)
	}

	s.log.Info("Room updated",
		zap.Int64("room_id", room.RoomID),
		zap.String("room_code", room.RoomCode),
	)

	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (s *roomService) DeleteRoom(ctx context.Context, roomID int64) error {
	room, err := s.repo.Room.FindByID(ctx, roomID)
	if err != nil {
		s.log.Error("Failed to find room", zap.Error(err), zap.Int64("room_id", roomID))
		return fmt.Errorf("find room: %w", err)
	}
	if room == nil {
		return fmt.Errorf("room %d not found", roomID)
	}

	if err := s.repo.Room.Delete(ctx, roomID); err != nil {
		s.log.Error("Failed to delete room", zap.Error(err), zap.Int64("room_id", roomID))
		return fmt.Errorf("delete room: %w", err)
	}

	return nil
}
