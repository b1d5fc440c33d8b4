package notification

import (
	"context"
	"errors"
	"testing"

	"wavehouse/models"
	"wavehouse/services/tasks"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestComposeEscapesInput(t *testing.T) {
	subject, body, err := Compose(models.Notification{
		Kind:     models.NotifyStudioAccess,
		Name:     "Kai <b>",
		Email:    "kai@example.com",
		Date:     "2025-03-01",
		Time:     "2:00 PM",
		Duration: 4,
		Message:  "<script>alert(1)</script>",
	})
	require.NoError(t, err)

	assert.Equal(t, "New studio booking request from Kai <b>", subject)
	assert.Contains(t, body, "Kai &lt;b&gt;")
	assert.Contains(t, body, "4 hours")
	assert.NotContains(t, body, "<script>")
}

func TestComposeRejectsUnknownKind(t *testing.T) {
	_, _, err := Compose(models.Notification{Kind: "fax"})
	assert.Error(t, err)
}

type fakeEnqueuer struct {
	tasks []*asynq.Task
	err   error
}

func (f *fakeEnqueuer) EnqueueContext(_ context.Context, task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.tasks = append(f.tasks, task)
	return &asynq.TaskInfo{ID: "t1"}, nil
}

func TestQueueNotifierEnqueuesPayload(t *testing.T) {
	q := &fakeEnqueuer{}
	n := models.Notification{Kind: models.NotifyContact, Name: "Ana", Email: "ana@example.com", Message: "hi"}

	require.NoError(t, NewQueueNotifier(q).Notify(context.Background(), n))
	require.Len(t, q.tasks, 1)
	assert.Equal(t, tasks.TypeNotificationSend, q.tasks[0].Type())

	got, err := tasks.ParseNotification(q.tasks[0])
	require.NoError(t, err)
	assert.Equal(t, n, got)
}

func TestQueueNotifierWrapsEnqueueError(t *testing.T) {
	q := &fakeEnqueuer{err: errors.New("redis down")}
	err := NewQueueNotifier(q).Notify(context.Background(), models.Notification{Kind: models.NotifyContact})
	assert.ErrorContains(t, err, "redis down")
}

func TestLogNotifier(t *testing.T) {
	err := NewLogNotifier(zap.NewNop()).Notify(context.Background(), models.Notification{Kind: models.NotifyMixingRequest, Name: "Ana"})
	assert.NoError(t, err)
}
