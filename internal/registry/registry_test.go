package registry

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestRegisterAndConstruct(t *testing.T) {
	r := New()
	ctx := context.Background()

	v := 42.0
	RegisterVariable(r, "test_value", &v)

	src, err := r.Construct(ctx, "test_value", nil)
	require.NoError(t, err)
	require.NotNil(t, src)

	assert.Equal(t, "test_value", src.Name())
	assert.Equal(t, 42.0, src.Number())
	assert.Equal(t, "42.000000", src.Text())
}

func TestConstructUnknownNameIsNotFound(t *testing.T) {
	r := New()

	src, err := r.Construct(context.Background(), "no_such_source", nil)
	assert.Nil(t, src)

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "no_such_source", notFound.Name)

	// NotFound must be the only error kind an unknown name can produce.
	var mismatch *TypeMismatchError
	assert.False(t, errors.As(err, &mismatch))
}

func TestLastRegistrationWins(t *testing.T) {
	r := New()
	ctx := context.Background()

	first := 1.0
	second := 2.0
	RegisterVariable(r, "test_value", &first)
	RegisterVariable(r, "test_value", &second)

	src, err := r.Construct(ctx, "test_value", nil)
	require.NoError(t, err)
	assert.Equal(t, 2.0, src.Number())
}

func TestRegisterEmptyNamePanics(t *testing.T) {
	r := New()
	assert.Panics(t, func() {
		RegisterDisabled(r, "", "whatever")
	})
}

func TestRegisterDisabled(t *testing.T) {
	r := New()

	RegisterDisabled(r, "battery", "battery_support")

	src, err := r.Construct(context.Background(), "battery", nil)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(src.Number()))
	assert.Contains(t, src.Text(), "battery")
	assert.Contains(t, src.Text(), "battery_support")
}

func TestVariableSourceIgnoresArguments(t *testing.T) {
	r := New()

	v := 7
	RegisterVariable(r, "test_value", &v)

	src, err := r.Construct(context.Background(), "test_value", []cty.Value{cty.StringVal("ignored")})
	require.NoError(t, err)
	assert.Equal(t, 7.0, src.Number())
}

func TestNames(t *testing.T) {
	r := New()

	a, b := 0.0, 0.0
	RegisterVariable(r, "zebra", &a)
	RegisterVariable(r, "aardvark", &b)

	assert.Equal(t, []string{"aardvark", "zebra"}, r.Names())
}

func TestSampleRunsAllAndReportsFirstError(t *testing.T) {
	r := New()

	var order []string
	r.AddSampler("one", func(context.Context) error {
		order = append(order, "one")
		return errors.New("boom")
	})
	r.AddSampler("two", func(context.Context) error {
		order = append(order, "two")
		return nil
	})

	err := r.Sample(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"one"`)
	assert.Equal(t, []string{"one", "two"}, order)
}
