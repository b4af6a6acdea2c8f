//go:build unit

package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"bookingpay/internal/infra/repository"
	"bookingpay/tests/common/fake"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPublisher struct {
	published []string
	err       error
}

func (p *stubPublisher) PublishJSON(_ context.Context, routingKey string, _ any) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, routingKey)
	return nil
}

func (p *stubPublisher) Close() error { return nil }

func dueJob(kind, topic string) *fake.NotificationRow {
	return &fake.NotificationRow{
		NotificationJob: repository.NotificationJob{
			ID:      uuid.New(),
			Kind:    kind,
			Topic:   topic,
			Payload: []byte(`{"type":"payment_completed"}`),
			RunAt:   time.Now().Add(-time.Minute),
		},
		Status: "queued",
	}
}

func TestRelayOnce(t *testing.T) {
	t.Run("publishes due jobs and marks them sent", func(t *testing.T) {
		store := fake.NewStore()
		store.Notifications = append(store.Notifications, dueJob("email", "payment_completed"))

		publisher := &stubPublisher{}
		n := NewNotifier(fake.NewUnitOfWork(store), publisher, time.Second)

		require.NoError(t, n.relayOnce(context.Background()))

		require.Len(t, publisher.published, 1)
		assert.Equal(t, "email.payment_completed", publisher.published[0])
		assert.Equal(t, "sent", store.Notifications[0].Status)
	})

	t.Run("requeues on publish failure", func(t *testing.T) {
		store := fake.NewStore()
		job := dueJob("email", "payment_completed")
		store.Notifications = append(store.Notifications, job)
		originalRunAt := job.RunAt

		publisher := &stubPublisher{err: errors.New("broker down")}
		n := NewNotifier(fake.NewUnitOfWork(store), publisher, time.Second)

		require.NoError(t, n.relayOnce(context.Background()))

		assert.Equal(t, "queued", job.Status)
		require.NotNil(t, job.LastError)
		assert.Contains(t, *job.LastError, "broker down")
		assert.True(t, job.RunAt.After(originalRunAt))
	})

	t.Run("leaves future jobs alone", func(t *testing.T) {
		store := fake.NewStore()
		job := dueJob("email", "payment_completed")
		job.RunAt = time.Now().Add(time.Hour)
		store.Notifications = append(store.Notifications, job)

		publisher := &stubPublisher{}
		n := NewNotifier(fake.NewUnitOfWork(store), publisher, time.Second)

		require.NoError(t, n.relayOnce(context.Background()))

		assert.Empty(t, publisher.published)
		assert.Equal(t, "queued", job.Status)
	})
}
