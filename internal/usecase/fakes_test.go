package usecase

import (
	"context"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
)

// In-memory repository fakes. The booking fake reproduces the transactional
// contract of the real repository: inventory and ledger move together with
// the booking row, and the conditional decrement is the authoritative
// availability check.

type fakeUserRepo struct {
	users     map[string]*entity.User
	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.users[user.UserID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, userID string) (*entity.User, error) {
	return f.users[userID], nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

type fakeRoomRepo struct {
	rooms  map[int64]*entity.Room
	nextID int64
}

func newFakeRoomRepo() *fakeRoomRepo {
	return &fakeRoomRepo{rooms: make(map[int64]*entity.Room), nextID: 1}
}

func (f *fakeRoomRepo) Create(ctx context.Context, room *entity.Room) error {
	room.RoomID = f.nextID
	f.nextID++
	f.rooms[room.RoomID] = room
	return nil
}

func (f *fakeRoomRepo) FindByID(ctx context.Context, roomID int64) (*entity.Room, error) {
	return f.rooms[roomID], nil
}

func (f *fakeRoomRepo) FindByCode(ctx context.Context, roomCode string) (*entity.Room, error) {
	for _, room := range f.rooms {
		if room.RoomCode == roomCode {
			return room, nil
		}
	}
	return nil, nil
}

func (f *fakeRoomRepo) FindAll(ctx context.Context, roomType string, availableOnly bool, limit, offset int) ([]*entity.Room, error) {
	var out []*entity.Room
	for _, room := range f.rooms {
		if roomType != "" && room.RoomType != roomType {
			continue
		}
		if availableOnly && room.AvailableRooms <= 0 {
			continue
		}
		out = append(out, room)
	}
	return out, nil
}

func (f *fakeRoomRepo) Update(ctx context.Context, room *entity.Room) error {
	f.rooms[room.RoomID] = room
	return nil
}

func (f *fakeRoomRepo) Delete(ctx context.Context, roomID int64) error {
	delete(f.rooms, roomID)
	return nil
}

type fakeHistoryRepo struct {
	rows []entity.History
}

func (f *fakeHistoryRepo) Append(ctx context.Context, userID string, bookingID *int64, kind entity.HistoryEventKind) error {
	f.rows = append(f.rows, entity.History{
		HistoryID: int64(len(f.rows) + 1),
		UserID:    userID,
		BookingID: bookingID,
		EventKind: kind,
		CreatedAt: time.Now(),
	})
	return nil
}

func (f *fakeHistoryRepo) CountByUserID(ctx context.Context, userID string) (int, error) {
	count := 0
	for _, row := range f.rows {
		if row.UserID == userID {
			count++
		}
	}
	return count, nil
}

type fakeBookingRepo struct {
	bookings map[int64]*entity.Booking
	nextID   int64
	rooms    *fakeRoomRepo
	history  *fakeHistoryRepo
}

func newFakeBookingRepo(rooms *fakeRoomRepo, history *fakeHistoryRepo) *fakeBookingRepo {
	return &fakeBookingRepo{
		bookings: make(map[int64]*entity.Booking),
		nextID:   1,
		rooms:    rooms,
		history:  history,
	}
}

func (f *fakeBookingRepo) CreateWithInventory(ctx context.Context, booking *entity.Booking) error {
	room := f.rooms.rooms[booking.RoomID]
	if room == nil || room.AvailableRooms <= 0 {
		return repository.ErrRoomSoldOut
	}
	room.AvailableRooms--

	booking.BookingID = f.nextID
	f.nextID++
	stored := *booking
	f.bookings[booking.BookingID] = &stored

	id := booking.BookingID
	return f.history.Append(ctx, booking.UserID, &id, entity.HistoryEventBookingCreated)
}

func (f *fakeBookingRepo) CancelWithInventory(ctx context.Context, bookingID int64, userID string, roomID int64) error {
	booking := f.bookings[bookingID]
	if booking == nil || booking.Status != entity.BookingStatusConfirmed {
		return repository.ErrBookingAlreadyCanceled
	}
	booking.Status = entity.BookingStatusCanceled

	if room := f.rooms.rooms[roomID]; room != nil && room.AvailableRooms < room.TotalRooms {
		room.AvailableRooms++
	}

	id := bookingID
	return f.history.Append(ctx, userID, &id, entity.HistoryEventBookingCanceled)
}

func (f *fakeBookingRepo) FindByID(ctx context.Context, bookingID int64) (*entity.Booking, error) {
	return f.bookings[bookingID], nil
}

func (f *fakeBookingRepo) FindByUserID(ctx context.Context, userID string, status entity.BookingStatus, limit, offset int) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, booking := range f.bookings {
		if booking.UserID != userID {
			continue
		}
		if status != "" && booking.Status != status {
			continue
		}
		out = append(out, booking)
	}
	return out, nil
}

func (f *fakeBookingRepo) CountByUserID(ctx context.Context, userID string) (int64, error) {
	var count int64
	for _, booking := range f.bookings {
		if booking.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (f *fakeBookingRepo) CountCanceledByUserID(ctx context.Context, userID string) (int, error) {
	count := 0
	for _, booking := range f.bookings {
		if booking.UserID == userID && booking.Status == entity.BookingStatusCanceled {
			count++
		}
	}
	return count, nil
}

func (f *fakeBookingRepo) UpdatePrediction(ctx context.Context, bookingID int64, score float64) error {
	booking := f.bookings[bookingID]
	if booking == nil {
		return nil
	}
	booking.CancellationPrediction = &score
	return nil
}

type testEnv struct {
	repo    *repository.Repository
	users   *fakeUserRepo
	rooms   *fakeRoomRepo
	booking *fakeBookingRepo
	history *fakeHistoryRepo
}

func newTestEnv() *testEnv {
	users := newFakeUserRepo()
	rooms := newFakeRoomRepo()
	history := &fakeHistoryRepo{}
	booking := newFakeBookingRepo(rooms, history)

	return &testEnv{
		repo: &repository.Repository{
			User:    users,
			Room:    rooms,
			Booking: booking,
			History: history,
		},
		users:   users,
		rooms:   rooms,
		booking: booking,
		history: history,
	}
}
