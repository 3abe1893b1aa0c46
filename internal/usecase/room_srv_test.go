package usecase

import (
	"context"
	"strings"
	"testing"

	"hotel-booking/internal/dto/request"

	"go.uber.org/zap"
)

func TestCreateRoom(t *testing.T) {
	env := newTestEnv()
	svc := NewRoomService(env.repo, zap.NewNop())

	room, err := svc.CreateRoom(context.Background(), &request.CreateRoomRequest{
		RoomType:       "deluxe",
		RoomCode:       "room_type_1",
		TotalRooms:     10,
		AvailableRooms: 10,
		Price:          150,
	})
	if err != nil {
		t.Fatalf("CreateRoom returned error: %v", err)
	}
	if room.RoomID == 0 {
		t.Error("room ID not assigned")
	}
	if room.RoomCode != "room_type_1" {
		t.Errorf("room code = %q, want room_type_1", room.RoomCode)
	}
}

func TestCreateRoomAvailableExceedsTotal(t *testing.T) {
	env := newTestEnv()
	svc := NewRoomService(env.repo, zap.NewNop())

	_, err := svc.CreateRoom(context.Background(), &request.CreateRoomRequest{
		RoomType:       "deluxe",
		RoomCode:       "room_type_1",
		TotalRooms:     5,
		AvailableRooms: 8,
		Price:          150,
	})
	if err == nil {
		t.Fatal("expected error when available exceeds total")
	}
}

func TestCreateRoomDuplicateCode(t *testing.T) {
	env := newTestEnv()
	svc := NewRoomService(env.repo, zap.NewNop())

	req := &request.CreateRoomRequest{
		RoomType:       "deluxe",
		RoomCode:       "room_type_1",
		TotalRooms:     5,
		AvailableRooms: 5,
		Price:          150,
	}
	if _, err := svc.CreateRoom(context.Background(), req); err != nil {
		t.Fatalf("first create: %v", err)
	}

	_, err := svc.CreateRoom(context.Background(), req)
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("error = %v, want duplicate code rejection", err)
	}
}

func TestCreateRoomBadCode(t *testing.T) {
	env := newTestEnv()
	svc := NewRoomService(env.repo, zap.NewNop())

	_, err := svc.CreateRoom(context.Background(), &request.CreateRoomRequest{
		RoomType:       "deluxe",
		RoomCode:       "deluxe-01",
		TotalRooms:     5,
		AvailableRooms: 5,
		Price:          150,
	})
	if err == nil || !strings.Contains(err.Error(), "validation failed") {
		t.Fatalf("error = %v, want validation failure on room code", err)
	}
}

func TestGetRoomsAvailableOnly(t *testing.T) {
	env := newTestEnv()
	svc := NewRoomService(env.repo, zap.NewNop())

	svc.CreateRoom(context.Background(), &request.CreateRoomRequest{
		RoomType: "deluxe", RoomCode: "room_type_1", TotalRooms: 5, AvailableRooms: 5, Price: 150,
	})
	svc.CreateRoom(context.Background(), &request.CreateRoomRequest{
		RoomType: "suite", RoomCode: "room_type_2", TotalRooms: 3, AvailableRooms: 0, Price: 300,
	})

	all, err := svc.GetRooms(context.Background(), &request.ListRoomsRequest{})
	if err != nil {
		t.Fatalf("GetRooms returned error: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("all rooms = %d, want 2", len(all))
	}

	available, err := svc.GetRooms(context.Background(), &request.ListRoomsRequest{AvailableOnly: true})
	if err != nil {
		t.Fatalf("GetRooms available only returned error: %v", err)
	}
	if len(available) != 1 || available[0].RoomCode != "room_type_1" {
		t.Errorf("available rooms = %v, want only room_type_1", available)
	}
}

func TestGetRoomByIDMissing(t *testing.T) {
	env := newTestEnv()
	svc := NewRoomService(env.repo, zap.NewNop())

	_, err := svc.GetRoomByID(context.Background(), 77)
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("error = %v, want not found", err)
	}
}

func TestUpdateRoom(t *testing.T) {
	env := newTestEnv()
	svc := NewRoomService(env.repo, zap.NewNop())

	created, err := svc.CreateRoom(context.Background(), &request.CreateRoomRequest{
		RoomType: "deluxe", RoomCode: "room_type_1", TotalRooms: 5, AvailableRooms: 5, Price: 150,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.UpdateRoom(context.Background(), created.RoomID, &request.CreateRoomRequest{
		RoomType: "deluxe", RoomCode: "room_type_1", TotalRooms: 8, AvailableRooms: 6, Price: 175,
	})
	if err != nil {
		t.Fatalf("UpdateRoom returned error: %v", err)
	}
	if updated.TotalRooms != 8 || updated.AvailableRooms != 6 || updated.Price != 175 {
		t.Errorf("updated room = %+v, want totals 8/6 and price 175", updated)
	}
}

func TestDeleteRoom(t *testing.T) {
	env := newTestEnv()
	svc := NewRoomService(env.repo, zap.NewNop())

	created, err := svc.CreateRoom(context.Background(), &request.CreateRoomRequest{
		RoomType: "deluxe", RoomCode: "room_type_1", TotalRooms: 5, AvailableRooms: 5, Price: 150,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.DeleteRoom(context.Background(), created.RoomID); err != nil {
		t.Fatalf("DeleteRoom returned error: %v", err)
	}
	if _, err := svc.GetRoomByID(context.Background(), created.RoomID); err == nil {
		t.Error("room still resolvable after delete")
	}
}
