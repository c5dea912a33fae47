package future

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var errTest = errors.New("test error")

func TestTask_FirstCompletionWins(t *testing.T) {
	req := require.New(t)

	task := New[int]()

	go func() {
		time.Sleep(10 * time.Millisecond)
		task.Complete(1)
		task.Complete(2)
		task.Fail(errTest)
	}()

	v, err := task.Get(context.Background())
	req.NoError(err)
	req.Equal(1, v)
}

func TestTask_FromFunc(t *testing.T) {
	req := require.New(t)

	task := FromFunc(func() (int, error) {
		return 42, nil
	})
	v, err := task.Get(context.Background())
	req.NoError(err)
	req.Equal(42, v)

	task = FromFunc(func() (int, error) {
		return 0, errTest
	})
	_, err = task.Get(context.Background())
	req.ErrorIs(err, errTest)
}

func TestTask_Resolved(t *testing.T) {
	req := require.New(t)

	v, err := Resolved("done").Get(context.Background())
	req.NoError(err)
	req.Equal("done", v)
}

func TestTask_Cancel(t *testing.T) {
	req := require.New(t)

	task := New[int]()
	task.Cancel()

	_, err := task.Get(context.Background())
	req.ErrorIs(err, ErrCanceled)
}

func TestTask_GetRespectsContext(t *testing.T) {
	req := require.New(t)

	task := New[int]()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := task.Get(ctx)
	req.ErrorIs(err, context.DeadlineExceeded)
}

func TestTask_ManyReadersSeeSameValue(t *testing.T) {
	req := require.New(t)

	task := New[int]()

	var wg sync.WaitGroup
	values := make([]int, 50)
	errs := make([]error, 50)
	for i := range values {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			values[i], errs[i] = task.Get(context.Background())
		}(i)
	}

	task.Complete(7)
	wg.Wait()

	for i, v := range values {
		req.NoError(errs[i])
		req.Equal(7, v)
	}
}
