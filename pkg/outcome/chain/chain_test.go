package chain

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/outcome/pkg/outcome"
)

func TestStartAndResult(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Start(ctx, outcome.Success(5)).Result()
	if !out.IsOk() || out.Unwrap() != 5 {
		t.Fatalf("expected Ok(5), got %v", out)
	}
}

func TestFromValue(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := FromValue(ctx, 7).Result()
	if !out.IsOk() || out.Unwrap() != 7 {
		t.Fatalf("expected Ok(7), got %v", out)
	}
}

func TestThen_SuccessPath(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	c := Then(FromValue(ctx, "21"), func(ctx context.Context, s string) outcome.Result[int, error] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return outcome.Fail[int](err)
		}
		return outcome.Success(n * 2)
	})

	out := c.Result()
	if !out.IsOk() || out.Unwrap() != 42 {
		t.Fatalf("expected Ok(42), got %v", out)
	}
}

func TestThen_ShortCircuitOnErr(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	fault := errors.New("boom")
	called := false
	c := Then(Start(ctx, outcome.Fail[int](fault)), func(ctx context.Context, v int) outcome.Result[int, error] {
		called = true
		return outcome.Success(v + 1)
	})

	out := c.Result()
	if out.IsOk() || !errors.Is(out.UnwrapErr(), fault) {
		t.Fatalf("expected fault to pass through, got %v", out)
	}
	if called {
		t.Fatalf("onOk must not run on the error arm")
	}
}

func TestBind_PanicBecomesErr(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	c := Bind(FromValue(ctx, 10), func(x int) (int, error) {
		d := 0
		return x / d, nil
	})

	out := c.Result()
	if out.IsOk() {
		t.Fatalf("expected Err, got %v", out)
	}
	f := out.Failure()
	if f == nil || f.Origin() != 10 {
		t.Fatalf("expected Failure with origin 10, got %v", f)
	}
}

func TestMap_Transforms(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Map(FromValue(ctx, 3), func(x int) int { return x * 2 }).Result()
	if !out.IsOk() || out.Unwrap() != 6 {
		t.Fatalf("expected Ok(6), got %v", out)
	}
}

func TestMapErr_WrapsFault(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Start(ctx, outcome.Fail[int](errors.New("boom"))).
		MapErr(func(err error) error { return errors.New("wrapped: " + err.Error()) }).
		Result()

	if out.IsOk() || out.UnwrapErr().Error() != "wrapped: boom" {
		t.Fatalf("expected wrapped fault, got %v", out)
	}
}

func TestEnsure_SideEffects(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var sawOk, sawErr bool
	FromValue(ctx, 1).Ensure(
		func(ctx context.Context, v int) { sawOk = true },
		func(ctx context.Context, err error) { sawErr = true },
	)
	if !sawOk || sawErr {
		t.Fatalf("expected only the success handler, got ok=%v err=%v", sawOk, sawErr)
	}

	sawOk, sawErr = false, false
	Start(ctx, outcome.Fail[int](errors.New("boom"))).Ensure(
		func(ctx context.Context, v int) { sawOk = true },
		func(ctx context.Context, err error) { sawErr = true },
	)
	if sawOk || !sawErr {
		t.Fatalf("expected only the error handler, got ok=%v err=%v", sawOk, sawErr)
	}
}

func TestFinally_CollapsesBothArms(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	got := Finally(FromValue(ctx, 4),
		func(ctx context.Context, v int) string { return "val:" + strconv.Itoa(v) },
		func(ctx context.Context, err error) string { return "err" },
	)
	if got != "val:4" {
		t.Fatalf("expected val:4, got %q", got)
	}

	got = Finally(Start(ctx, outcome.Fail[int](errors.New("boom"))),
		func(ctx context.Context, v int) string { return "val" },
		func(ctx context.Context, err error) string { return "err:" + err.Error() },
	)
	if got != "err:boom" {
		t.Fatalf("expected err:boom, got %q", got)
	}
}

func TestUnwrapOr(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	if got := FromValue(ctx, 9).UnwrapOr(0); got != 9 {
		t.Fatalf("expected 9, got %v", got)
	}
	if got := Start(ctx, outcome.Fail[int](errors.New("boom"))).UnwrapOr(3); got != 3 {
		t.Fatalf("expected default 3, got %v", got)
	}
}

func TestPipeline_EndToEnd(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	parse := Bind(FromValue(ctx, "12"), strconv.Atoi)
	doubled := Map(parse, func(x int) int { return x * 2 })

	got := Finally(doubled,
		func(ctx context.Context, v int) int { return v },
		func(ctx context.Context, err error) int { return -1 },
	)
	if got != 24 {
		t.Fatalf("expected 24, got %v", got)
	}
}
