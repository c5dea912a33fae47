package chain

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/rail/pkg/rail"
)

func TestStartAndResult_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	c := Start(ctx, rail.Success[int, error](5))

	out := c.Result()
	if !out.IsSuccess() || out.Value() != 5 {
		t.Fatalf("expected success with 5, got: success=%v", out.IsSuccess())
	}
}

func TestFromValue(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := FromValue[int, error](ctx, 7).Result()
	if !out.IsSuccess() || out.Value() != 7 {
		t.Fatalf("expected success with 7, got: success=%v", out.IsSuccess())
	}
}

func TestThen_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	boom := errors.New("boom")

	called := false
	c := Then(Start(ctx, rail.Failure[int](boom)),
		func(ctx context.Context, n int) rail.Result[int, error] {
			called = true
			return rail.Success[int, error](n + 1)
		})

	out := c.Result()
	if out.IsSuccess() || out.Error() != boom {
		t.Fatalf("expected failure 'boom', got: success=%v, err=%v", out.IsSuccess(), out.Error())
	}
	if called {
		t.Fatal("onSuccess should not be called when the chain already failed")
	}
}

func TestThen_SuccessPath(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	c := Then(FromValue[int, error](ctx, 3),
		func(ctx context.Context, n int) rail.Result[int, error] {
			return rail.Success[int, error](n * 2)
		})

	out := c.Result()
	if !out.IsSuccess() || out.Value() != 6 {
		t.Fatalf("expected success with 6, got: success=%v", out.IsSuccess())
	}
}

func TestThenTry_ErrorPropagation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	c := ThenTry(FromValue[string, error](ctx, "nope"),
		func(ctx context.Context, s string) (int, error) {
			return strconv.Atoi(s)
		})

	out := c.Result()
	if out.IsSuccess() || out.Error() == nil {
		t.Fatalf("expected failure from Atoi, got: success=%v", out.IsSuccess())
	}
}

func TestMap_TypeChange(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	c := Map(FromValue[int, error](ctx, 4),
		func(ctx context.Context, n int) string {
			return strconv.Itoa(n * 10)
		})

	out := c.Result()
	if !out.IsSuccess() || out.Value() != "40" {
		t.Fatalf("expected success with \"40\", got: success=%v", out.IsSuccess())
	}
}

func TestMapError_ReTypesErrorChannel(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	c := MapError(Start(ctx, rail.Failure[int](errors.New("db down"))),
		func(ctx context.Context, err error) string {
			return "user message: " + err.Error()
		})

	out := c.Result()
	if out.IsSuccess() || out.Error() != "user message: db down" {
		t.Fatalf("expected re-typed failure, got: success=%v", out.IsSuccess())
	}
}

func TestEnsureAndEnsureError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	seen := 0
	out := FromValue[int, error](ctx, 5).
		Ensure(func(ctx context.Context, n int) { seen = n }).
		EnsureError(func(ctx context.Context, err error) { seen = -1 }).
		Result()

	if seen != 5 {
		t.Fatalf("Ensure observer not invoked, seen=%d", seen)
	}
	if !out.IsSuccess() || out.Value() != 5 {
		t.Fatal("Ensure must not alter the result")
	}
}

func TestRecover(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Start(ctx, rail.Failure[int](errors.New("boom"))).
		Recover(func(ctx context.Context, err error) int { return 0 }).
		Result()

	if !out.IsSuccess() || out.Value() != 0 {
		t.Fatal("Recover must produce a success from the fallback")
	}
}

func TestFinally(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	got := Finally(FromValue[int, error](ctx, 2),
		func(ctx context.Context, n int) string { return "ok:" + strconv.Itoa(n) },
		func(ctx context.Context, err error) string { return "err" })
	if got != "ok:2" {
		t.Fatalf("expected ok:2, got %s", got)
	}

	got = Finally(Start(ctx, rail.Failure[int](errors.New("boom"))),
		func(ctx context.Context, n int) string { return "ok" },
		func(ctx context.Context, err error) string { return "err:" + err.Error() })
	if got != "err:boom" {
		t.Fatalf("expected err:boom, got %s", got)
	}
}
