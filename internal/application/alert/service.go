package alert

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sheisstarwithoutmoon/SafeLink/internal/domain"
	"github.com/sheisstarwithoutmoon/SafeLink/internal/pkg/validate"
)

type Service interface {
	Dispatch(ctx context.Context, req domain.AlertRequest) (*domain.DispatchResult, error)
	ListRecent(ctx context.Context, limit int32) ([]domain.AlertRecord, error)
}

// Sender is the outbound gateway contract. Implementations perform exactly
// one bounded delivery attempt and classify the provider response into a
// receipt or an error carrying the provider's reason.
type Sender interface {
	Send(ctx context.Context, to, body string) (*domain.Receipt, error)
}

// Store is the minimal interface the pipeline requires from the record store.
type Store interface {
	Put(ctx context.Context, rec *domain.AlertRecord) error
	ListRecent(ctx context.Context, limit int32) ([]domain.AlertRecord, error)
}

type service struct {
	store  Store
	sender Sender
}

func NewService(store Store, sender Sender) Service {
	return &service{store: store, sender: sender}
}

// Dispatch runs validate -> compose -> deliver -> record for one request.
// Validation failures short-circuit before any side effect. Once delivery
// was attempted, the outcome is recorded unconditionally, success or not.
func (s *service) Dispatch(ctx context.Context, req domain.AlertRequest) (*domain.DispatchResult, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("phone number and message required: %w", domain.ErrBadRequest)
	}

	body := ComposeMessage(req)

	receipt, err := s.sender.Send(ctx, req.PhoneNumber, body)
	if err != nil {
		s.record(ctx, &domain.AlertRecord{
			PhoneNumber: req.PhoneNumber,
			Message:     body,
			Status:      domain.StatusFailed,
			Error:       err.Error(),
		})
		return nil, fmt.Errorf("SMS failed: %s", err)
	}

	s.record(ctx, &domain.AlertRecord{
		PhoneNumber:      req.PhoneNumber,
		Message:          body,
		Status:           domain.StatusSent,
		GatewayMessageID: receipt.MessageID,
		GatewayStatus:    receipt.Status,
	})

	return &domain.DispatchResult{
		Success:   true,
		MessageID: receipt.MessageID,
		Status:    receipt.Status,
		Message:   "SMS sent successfully",
	}, nil
}

func (s *service) ListRecent(ctx context.Context, limit int32) ([]domain.AlertRecord, error) {
	return s.store.ListRecent(ctx, limit)
}

// record persists the attempt outcome. The store is secondary telemetry:
// a failed write never alters the delivery result the caller already has.
func (s *service) record(ctx context.Context, rec *domain.AlertRecord) {
	if err := s.store.Put(ctx, rec); err != nil {
		slog.Warn("could not record alert outcome", "phone", rec.PhoneNumber, "status", rec.Status, "err", err)
	}
}
