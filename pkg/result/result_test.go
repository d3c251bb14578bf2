package result

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dessera/fp/pkg/fault"
)

func TestOk(t *testing.T) {
	r := Ok[int, string](5)

	assert.True(t, r.IsOk())
	assert.False(t, r.IsErr())
	assert.Equal(t, 5, r.Unwrap())
}

func TestErr(t *testing.T) {
	r := Err[int, string]("bad")

	assert.True(t, r.IsErr())
	assert.False(t, r.IsOk())
	assert.Equal(t, "bad", r.UnwrapErr())
}

func TestIsOkAnd(t *testing.T) {
	assert.True(t, Ok[int, string](5).IsOkAnd(func(v int) bool { return v > 0 }))
	assert.False(t, Ok[int, string](5).IsOkAnd(func(v int) bool { return v > 10 }))

	assert.False(t, Err[int, string]("bad").IsOkAnd(func(v int) bool {
		t.Fatal("predicate must not run on the failure arm")
		return true
	}))
}

func TestIsOkAnd_ResultStaysUsable(t *testing.T) {
	r := Ok[int, string](5)

	require.True(t, r.IsOkAnd(func(v int) bool { return v == 5 }))
	assert.Equal(t, 5, r.Unwrap())
}

func TestIsErrAnd(t *testing.T) {
	assert.True(t, Err[int, string]("bad").IsErrAnd(func(e string) bool { return e == "bad" }))
	assert.False(t, Err[int, string]("bad").IsErrAnd(func(e string) bool { return e == "worse" }))

	assert.False(t, Ok[int, string](5).IsErrAnd(func(e string) bool {
		t.Fatal("predicate must not run on the success arm")
		return true
	}))
}

func TestUnwrap_FaultsOnErr(t *testing.T) {
	r := Err[int, string]("bad")

	assert.PanicsWithError(t, "Unwrap: Result is an error (bad)", func() {
		r.Unwrap()
	})
}

func TestUnwrapErr_FaultsOnOk(t *testing.T) {
	r := Ok[int, string](5)

	assert.PanicsWithError(t, "Unwrap: Result is not an error (5)", func() {
		r.UnwrapErr()
	})
}

func TestUnwrap_FaultIsObservable(t *testing.T) {
	defer func() {
		f, ok := fault.As(recover())
		require.True(t, ok, "expected a *fault.Fault")
		assert.Equal(t, fault.Unwrap, f.Kind)
		assert.Equal(t, "Result is an error (boom)", f.Message)
	}()

	Err[int, error](errors.New("boom")).Unwrap()
}

func TestExpect(t *testing.T) {
	assert.Equal(t, 5, Ok[int, string](5).Expect("should have a value"))

	assert.PanicsWithError(t, "Unwrap: no config loaded", func() {
		Err[int, string]("bad").Expect("no config loaded")
	})
}

func TestExpectErr(t *testing.T) {
	assert.Equal(t, "bad", Err[int, string]("bad").ExpectErr("should have failed"))

	assert.PanicsWithError(t, "Unwrap: should have failed", func() {
		Ok[int, string](5).ExpectErr("should have failed")
	})
}

func TestUnwrapOr(t *testing.T) {
	assert.Equal(t, 5, Ok[int, string](5).UnwrapOr(99))
	assert.Equal(t, 99, Err[int, string]("bad").UnwrapOr(99))
}

func TestUnwrapOrDefault(t *testing.T) {
	assert.Equal(t, 5, Ok[int, string](5).UnwrapOrDefault())
	assert.Equal(t, 0, Err[int, string]("bad").UnwrapOrDefault())
	assert.Equal(t, "", Err[string, int](7).UnwrapOrDefault())
}

func TestInspect(t *testing.T) {
	var seen []int
	r := Ok[int, string](5).Inspect(func(v int) { seen = append(seen, v) })

	assert.Equal(t, []int{5}, seen)
	assert.True(t, r.IsOk())
	assert.Equal(t, 5, r.Unwrap())
}

func TestInspect_NotInvokedOnErr(t *testing.T) {
	r := Err[int, string]("bad").Inspect(func(v int) {
		t.Fatal("inspect must not run on the failure arm")
	})

	assert.True(t, r.IsErr())
	assert.Equal(t, "bad", r.UnwrapErr())
}

func TestInspectErr(t *testing.T) {
	var seen []string
	r := Err[int, string]("bad").InspectErr(func(e string) { seen = append(seen, e) })

	assert.Equal(t, []string{"bad"}, seen)
	assert.True(t, r.IsErr())
}

func TestInspectErr_NotInvokedOnOk(t *testing.T) {
	r := Ok[int, string](5).InspectErr(func(e string) {
		t.Fatal("inspect must not run on the success arm")
	})

	assert.Equal(t, 5, r.Unwrap())
}

func TestIdentityStamps(t *testing.T) {
	a := Ok[int, string](1)
	b := Ok[int, string](1)

	assert.NotEqual(t, a.Id(), b.Id())
	assert.False(t, a.CreatedAt().IsZero())
}
