package queue

import (
	"context"
	"testing"
	"time"

	"github.com/jackhart/ramify/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTask(name string) *Task {
	return &Task{Node: tree.NewNode(name, []int{1, 1})}
}

func TestMemQueuePushAndPull(t *testing.T) {
	ctx := context.Background()
	q := New()
	defer q.Stop(ctx)

	require.NoError(t, q.Push(ctx, testTask("root")))
	pending, running, err := q.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, pending)
	assert.Equal(t, 0, running)

	task, _, cancel, err := q.Pull(ctx)
	require.NoError(t, err)
	require.NotNil(t, task)
	defer cancel()
	assert.Equal(t, "root", task.ID())

	pending, running, err = q.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, pending)
	assert.Equal(t, 1, running)
}

func TestMemQueuePullOnEmpty(t *testing.T) {
	ctx := context.Background()
	q := New()
	defer q.Stop(ctx)

	task, _, _, err := q.Pull(ctx)
	require.NoError(t, err)
	assert.Nil(t, task)
}

func TestMemQueuePreservesOrder(t *testing.T) {
	ctx := context.Background()
	q := New()
	defer q.Stop(ctx)

	names := []string{"root", "root_0_l", "root_0_r"}
	for _, n := range names {
		require.NoError(t, q.Push(ctx, testTask(n)))
	}
	for _, n := range names {
		task, _, cancel, err := q.Pull(ctx)
		require.NoError(t, err)
		require.NotNil(t, task)
		cancel()
		assert.Equal(t, n, task.ID())
		require.NoError(t, q.Complete(ctx, task.ID()))
	}
	pending, running, err := q.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, pending+running)
}

func TestMemQueueDrop(t *testing.T) {
	ctx := context.Background()
	q := New()
	defer q.Stop(ctx)

	require.NoError(t, q.Push(ctx, testTask("root")))
	task, _, cancel, err := q.Pull(ctx)
	require.NoError(t, err)
	require.NotNil(t, task)
	cancel()

	require.NoError(t, q.Drop(ctx, task.ID()))
	pending, running, err := q.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, pending)
	assert.Equal(t, 0, running)

	task, _, cancel, err = q.Pull(ctx)
	require.NoError(t, err)
	require.NotNil(t, task)
	cancel()
	assert.Equal(t, "root", task.ID())
}

func TestMemQueueDropAfterComplete(t *testing.T) {
	ctx := context.Background()
	q := New()
	defer q.Stop(ctx)

	require.NoError(t, q.Push(ctx, testTask("root")))
	task, _, cancel, err := q.Pull(ctx)
	require.NoError(t, err)
	require.NotNil(t, task)
	cancel()

	require.NoError(t, q.Complete(ctx, task.ID()))
	require.NoError(t, q.Drop(ctx, task.ID()))
	pending, running, err := q.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, pending+running)
}

func TestMemQueueHonorsContext(t *testing.T) {
	q := New()
	defer q.Stop(context.Background())

	// Hold the queue lock so the push cannot proceed and has to give
	// up on the expired context.
	mq := q.(*memQueue)
	mq.lock.Lock()
	defer mq.lock.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.Error(t, q.Push(ctx, testTask("root")))
}

func TestWaitFor(t *testing.T) {
	ctx := context.Background()
	q := New()
	defer q.Stop(ctx)
	assert.NoError(t, WaitFor(ctx, q))
}
