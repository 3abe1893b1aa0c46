package usecase

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

// Bookings taken through the API are always attributed to the online
// segment.
const marketSegmentOnline = "Online"

type BookingService interface {
	CreateBooking(ctx context.Context, userID string, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetUserBookings(ctx context.Context, userID string, req *request.ListBookingsRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	GetBookingByID(ctx context.Context, userID string, role entity.UserRole, bookingID int64) (*response.BookingResponse, error)
	CancelBooking(ctx context.Context, userID string, bookingID int64) error
	PredictCancellation(ctx context.Context, bookingID int64) (*response.PredictionResponse, error)
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, userID string, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// Resolve the room first; the authoritative availability check is the
	// conditional decrement inside the transaction, this early check only
	// produces a friendlier error for the common case.
	room, err := s.repo.Room.FindByID(ctx, req.RoomID)
	if err != nil {
		s.log.Error("Failed to resolve room", zap.Error(err), zap.Int64("room_id", req.RoomID))
		return nil, fmt.Errorf("resolve room: %w", err)
	}
	if room == nil {
		return nil, fmt.Errorf("room %d not found", req.RoomID)
	}
	if room.AvailableRooms <= 0 {
		return nil, repository.ErrRoomSoldOut
	}

	arrival, err := time.Parse("2006-01-02", req.ArrivalDate)
	if err != nil {
		return nil, fmt.Errorf("validation failed: arrival_date must be YYYY-MM-DD")
	}

	// Lead time is whole days between today and arrival, never negative.
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	leadTime := int(arrival.Sub(today).Hours() / 24)
	if leadTime < 0 {
		return nil, fmt.Errorf("invalid arrival date: %s is in the past", req.ArrivalDate)
	}

	// Prior ledger rows only; this booking's own event is appended after
	// the count is taken.
	repeatedGuest, err := s.repo.History.CountByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to count history", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("count guest history: %w", err)
	}

	previousCancellations, err := s.repo.Booking.CountCanceledByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to count cancellations", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("count previous cancellations: %w", err)
	}

	booking := &entity.Booking{
		UserID:                    userID,
		RoomID:                    room.RoomID,
		LeadTime:                  leadTime,
		MarketSegmentType:         marketSegmentOnline,
		ArrivalMonth:              int(arrival.Month()),
		NoOfPreviousCancellations: previousCancellations,
		RoomTypeReserved:          room.RoomCode,
		RepeatedGuest:             repeatedGuest,
		AvgPricePerRoom:           room.Price,
		NoOfAdults:                req.NoOfAdults,
		NoOfChildren:              req.NoOfChildren,
		ArrivalDate:               arrival,
		NoOfWeekNights:            req.NoOfWeekNights,
		NoOfWeekendNights:         req.NoOfWeekendNights,
		TypeOfMealPlan:            req.TypeOfMealPlan,
		NoOfSpecialRequests:       req.NoOfSpecialRequests,
		BookingTime:               now,
		Status:                    entity.BookingStatusConfirmed,
	}

	// Booking insert, availability decrement and ledger append commit or
	// roll back together.
	if err := s.repo.Booking.CreateWithInventory(ctx, booking); err != nil {
		if err == repository.ErrRoomSoldOut {
			return nil, err
		}
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.Int64("room_id", req.RoomID),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.Int64("booking_id", booking.BookingID),
		zap.String("user_id", userID),
		zap.Int64("room_id", room.RoomID),
		zap.Int("lead_time", leadTime),
		zap.Int("repeated_guest", repeatedGuest),
	)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID string, req *request.ListBookingsRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	if req.Status != "" &&
		req.Status != string(entity.BookingStatusConfirmed) &&
		req.Status != string(entity.BookingStatusCanceled) {
		return nil, fmt.Errorf("validation failed: status must be confirmed or canceled")
	}

	page := &request.PaginatedRequest{Page: req.Page, PerPage: req.PerPage}

	bookings, err := s.repo.Booking.FindByUserID(ctx, userID, entity.BookingStatus(req.Status), page.Limit(), page.Offset())
	if err != nil {
		s.log.Error("Failed to get user bookings", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("get user bookings: %w", err)
	}

	total, err := s.repo.Booking.CountByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to count user bookings", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("count user bookings: %w", err)
	}

	items := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		items[i] = response.BookingToResponse(booking)
	}

	return &response.PaginatedResponse[response.BookingResponse]{
		Items:      items,
		Total:      total,
		Page:       page.Page,
		PerPage:    page.Limit(),
		TotalPages: utils.CalculateTotalPages(total, page.Limit()),
	}, nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, userID string, role entity.UserRole, bookingID int64) (*response.BookingResponse, error) {
	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		s.log.Error("Failed to find booking", zap.Error(err), zap.Int64("booking_id", bookingID))
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %d not found", bookingID)
	}

	if booking.UserID != userID && role != entity.RoleAdmin {
		s.log.Warn("Booking access denied",
			zap.Int64("booking_id", bookingID),
			zap.String("user_id", userID),
		)
		return nil, fmt.Errorf("not enough permissions to access booking %d", bookingID)
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, userID string, bookingID int64) error {
	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		s.log.Error("Failed to find booking", zap.Error(err), zap.Int64("booking_id", bookingID))
		return fmt.Errorf("find booking: %w", err)
	}

	// Ownership failures and missing bookings are indistinguishable to the
	// caller.
	if booking == nil || booking.UserID != userID {
		return fmt.Errorf("booking %d not found", bookingID)
	}

	if booking.Status == entity.BookingStatusCanceled {
		return repository.ErrBookingAlreadyCanceled
	}

	if err := s.repo.Booking.CancelWithInventory(ctx, bookingID, userID, booking.RoomID); err != nil {
		if err == repository.ErrBookingAlreadyCanceled {
			return err
		}
		s.log.Error("Failed to cancel booking",
			zap.Error(err),
			zap.Int64("booking_id", bookingID),
			zap.String("user_id", userID),
		)
		return fmt.Errorf("cancel booking: %w", err)
	}

	s.log.Info("Booking canceled",
		zap.Int64("booking_id", bookingID),
		zap.String("user_id", userID),
	)

	return nil
}

// PredictCancellation is the placeholder for the future model. It validates
// the booking, produces a pseudo score in [0,1] and stores it idempotently;
// repeated calls overwrite the previous score.
func (s *bookingService) PredictCancellation(ctx context.Context, bookingID int64) (*response.PredictionResponse, error) {
	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		s.log.Error("Failed to find booking", zap.Error(err), zap.Int64("booking_id", bookingID))
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %d not found", bookingID)
	}

	score := roundScore(0.1 + rand.Float64()*0.8)
	confidence := roundScore(0.7 + rand.Float64()*0.25)

	if err := s.repo.Booking.UpdatePrediction(ctx, bookingID, score); err != nil {
		s.log.Error("Failed to store prediction", zap.Error(err), zap.Int64("booking_id", bookingID))
		return nil, fmt.Errorf("store prediction: %w", err)
	}

	s.log.Info("Prediction stored",
		zap.Int64("booking_id", bookingID),
		zap.Float64("score", score),
	)

	return &response.PredictionResponse{
		BookingID:              bookingID,
		CancellationPrediction: score,
		ConfidenceScore:        confidence,
		PredictionTimestamp:    time.Now().UTC(),
	}, nil
}

func roundScore(v float64) float64 {
	return math.Round(v*100) / 100
}
