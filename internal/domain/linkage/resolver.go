// Package linkage attributes payments to bookings. New records carry the
// booking id explicitly end to end; the matcher here exists only for legacy
// payments created before that linkage, and its verdict is always tagged so
// downstream reporting can tell an explicit link from an inferred one.
package linkage

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MatchWindow bounds how far apart a legacy payment and a booking may have
// been created to be considered the same transaction.
const MatchWindow = time.Hour

var ErrAmbiguousCandidates = errors.New("multiple equally close booking candidates")

type Confidence string

const (
	ConfidenceExplicit Confidence = "explicit"
	ConfidenceInferred Confidence = "inferred"
)

// Result is a tagged link verdict: Linked(bookingID, confidence) or Unlinked.
type Result struct {
	bookingID  uuid.UUID
	confidence Confidence
	linked     bool
}

func Linked(bookingID uuid.UUID, confidence Confidence) Result {
	return Result{bookingID: bookingID, confidence: confidence, linked: true}
}

func Unlinked() Result {
	return Result{}
}

func (r Result) IsLinked() bool         { return r.linked }
func (r Result) BookingID() uuid.UUID   { return r.bookingID }
func (r Result) Confidence() Confidence { return r.confidence }

// PaymentFacts is the slice of a payment the resolver needs.
type PaymentFacts struct {
	BookingID  *uuid.UUID
	CustomerID uuid.UUID
	Note       string
	CreatedAt  time.Time
}

type BookingCandidate struct {
	ID          uuid.UUID
	CustomerID  uuid.UUID
	ServiceName string
	CreatedAt   time.Time
}

// Resolve picks the booking a payment belongs to. An explicit booking id is
// authoritative and never re-derived. The legacy fallback requires the same
// customer, creation timestamps within MatchWindow, and a service-name
// overlap in the payment note; the single closest candidate by timestamp
// distance wins. Zero candidates is Unlinked; a distance tie is Unlinked
// with ErrAmbiguousCandidates so a human reviews it instead of a guess.
func Resolve(p PaymentFacts, candidates []BookingCandidate) (Result, error) {
	if p.BookingID != nil {
		return Linked(*p.BookingID, ConfidenceExplicit), nil
	}

	var (
		best     *BookingCandidate
		bestDist time.Duration
		tied     bool
	)

	for i := range candidates {
		c := candidates[i]
		if c.CustomerID != p.CustomerID {
			continue
		}
		dist := absDuration(p.CreatedAt.Sub(c.CreatedAt))
		if dist > MatchWindow {
			continue
		}
		if !noteMatchesService(p.Note, c.ServiceName) {
			continue
		}

		switch {
		case best == nil || dist < bestDist:
			best = &candidates[i]
			bestDist = dist
			tied = false
		case dist == bestDist && c.ID != best.ID:
			tied = true
		}
	}

	if best == nil {
		return Unlinked(), nil
	}
	if tied {
		return Unlinked(), ErrAmbiguousCandidates
	}
	return Linked(best.ID, ConfidenceInferred), nil
}

func noteMatchesService(note, serviceName string) bool {
	note = strings.ToLower(strings.TrimSpace(note))
	serviceName = strings.ToLower(strings.TrimSpace(serviceName))
	if note == "" || serviceName == "" {
		return false
	}
	return strings.Contains(note, serviceName) || strings.Contains(serviceName, note)
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
