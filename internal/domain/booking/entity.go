package booking

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Booking is one reserved service instance for a customer. This core only
// reads bookings; creation and scheduling live in the booking service.
type Booking struct {
	id          uuid.UUID
	customerID  uuid.UUID
	serviceName string
	startsAt    time.Time
	endsAt      time.Time
	status      Status
	createdAt   time.Time
}

func Reconstruct(
	id, customerID uuid.UUID,
	serviceName string,
	startsAt, endsAt time.Time,
	status Status,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:          id,
		customerID:  customerID,
		serviceName: serviceName,
		startsAt:    startsAt,
		endsAt:      endsAt,
		status:      status,
		createdAt:   createdAt,
	}
}

func (b *Booking) ID() uuid.UUID         { return b.id }
func (b *Booking) CustomerID() uuid.UUID { return b.customerID }
func (b *Booking) ServiceName() string   { return b.serviceName }
func (b *Booking) StartsAt() time.Time   { return b.startsAt }
func (b *Booking) EndsAt() time.Time     { return b.endsAt }
func (b *Booking) Status() Status        { return b.status }
func (b *Booking) CreatedAt() time.Time  { return b.createdAt }
