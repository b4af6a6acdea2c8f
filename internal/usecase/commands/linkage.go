package commands

import (
	"context"
	"errors"
	"log/slog"

	"bookingpay/internal/domain/booking"
	"bookingpay/internal/domain/linkage"
	"bookingpay/internal/infra"
	"bookingpay/internal/pkg/errs"
	"bookingpay/internal/usecase/shared"

	"github.com/google/uuid"
)

type ResolveBookingResult struct {
	Linked     bool
	BookingID  *uuid.UUID
	Confidence linkage.Confidence
}

type LinkageCommands interface {
	// ResolveBooking attributes a legacy payment to a booking. An explicit
	// booking id is reported as-is; otherwise the time-window matcher runs
	// and a single unambiguous candidate is assigned. Ambiguity is surfaced,
	// never guessed through.
	ResolveBooking(ctx context.Context, paymentID uuid.UUID) (*ResolveBookingResult, error)
}

type linkageUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewLinkageUseCase(uow shared.UnitOfWork) LinkageCommands {
	return &linkageUseCaseImpl{uow: uow}
}

func (u *linkageUseCaseImpl) ResolveBooking(ctx context.Context, paymentID uuid.UUID) (*ResolveBookingResult, error) {
	var result *ResolveBookingResult

	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Reads().PaymentByID(ctx, paymentID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrPaymentNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if p.BookingID != nil {
			result = &ResolveBookingResult{
				Linked:     true,
				BookingID:  p.BookingID,
				Confidence: linkage.ConfidenceExplicit,
			}
			return nil
		}

		candidates, err := tx.Reads().BookingCandidates(ctx, p.CustomerID, p.CreatedAt, linkage.MatchWindow)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		verdict, err := linkage.Resolve(linkage.PaymentFacts{
			BookingID:  p.BookingID,
			CustomerID: p.CustomerID,
			Note:       p.Note,
			CreatedAt:  p.CreatedAt,
		}, toCandidates(candidates))
		if err != nil {
			if errors.Is(err, linkage.ErrAmbiguousCandidates) {
				slog.Warn("ambiguous booking candidates, leaving payment unlinked",
					"payment_id", paymentID.String(),
					"customer_id", p.CustomerID.String())
				return errs.Mark(err, errs.ErrLinkageAmbiguous)
			}
			return err
		}

		if !verdict.IsLinked() {
			result = &ResolveBookingResult{Linked: false}
			return nil
		}

		bookingID := verdict.BookingID()
		// booking_id IS NULL in the predicate: an explicit link written by a
		// concurrent caller is never overwritten.
		assigned, err := tx.Payments().AssignBooking(ctx, tx.DB(), paymentID, bookingID, verdict.Confidence())
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if !assigned {
			result = &ResolveBookingResult{Linked: false}
			return nil
		}

		tx.Audit().Record(ctx, tx.DB(), "linkage", "payment_booking_assigned", "payment", paymentID, &p.CustomerID, nil)

		result = &ResolveBookingResult{
			Linked:     true,
			BookingID:  &bookingID,
			Confidence: verdict.Confidence(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func toCandidates(bookings []*booking.Booking) []linkage.BookingCandidate {
	out := make([]linkage.BookingCandidate, len(bookings))
	for i, b := range bookings {
		out[i] = linkage.BookingCandidate{
			ID:          b.ID(),
			CustomerID:  b.CustomerID(),
			ServiceName: b.ServiceName(),
			CreatedAt:   b.CreatedAt(),
		}
	}
	return out
}
