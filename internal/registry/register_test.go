package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/sysglance/internal/source"
	"github.com/zclconf/go-cty/cty"
)

// pathArgs is the argument spec used by the Typed decoding tests.
type pathArgs struct {
	Path  string  `cty:"path"`
	Scale float64 `cty:"scale,optional"`
}

func newTypedFactory(t *testing.T, got *pathArgs) Factory {
	t.Helper()
	return Typed(func(_ context.Context, name string, args pathArgs) (source.Source, error) {
		*got = args
		v := 0.0
		return source.NewNumeric(name, &v), nil
	})
}

func TestTypedDecodesArguments(t *testing.T) {
	r := New()
	var got pathArgs
	r.Register("disk_used", newTypedFactory(t, &got))

	_, err := r.Construct(context.Background(), "disk_used", []cty.Value{
		cty.StringVal("/home"),
		cty.NumberFloatVal(2),
	})
	require.NoError(t, err)
	assert.Equal(t, "/home", got.Path)
	assert.Equal(t, 2.0, got.Scale)
}

func TestTypedOptionalArgumentMayBeOmitted(t *testing.T) {
	r := New()
	var got pathArgs
	r.Register("disk_used", newTypedFactory(t, &got))

	_, err := r.Construct(context.Background(), "disk_used", []cty.Value{cty.StringVal("/")})
	require.NoError(t, err)
	assert.Equal(t, "/", got.Path)
	assert.Equal(t, 0.0, got.Scale)
}

func TestTypedMissingArgumentIsTypeMismatch(t *testing.T) {
	r := New()
	var got pathArgs
	r.Register("disk_used", newTypedFactory(t, &got))

	_, err := r.Construct(context.Background(), "disk_used", nil)

	var mismatch *TypeMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "disk_used", mismatch.Name)
	assert.Contains(t, mismatch.Reason, `"path"`)
}

func TestTypedExtraArgumentIsTypeMismatch(t *testing.T) {
	r := New()
	var got pathArgs
	r.Register("disk_used", newTypedFactory(t, &got))

	_, err := r.Construct(context.Background(), "disk_used", []cty.Value{
		cty.StringVal("/"),
		cty.NumberFloatVal(1),
		cty.True,
	})

	var mismatch *TypeMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Contains(t, mismatch.Reason, "too many arguments")
}

func TestTypedWrongTypeIsTypeMismatch(t *testing.T) {
	r := New()
	var got pathArgs
	r.Register("disk_used", newTypedFactory(t, &got))

	_, err := r.Construct(context.Background(), "disk_used", []cty.Value{
		cty.ListVal([]cty.Value{cty.True}),
	})

	var mismatch *TypeMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Contains(t, mismatch.Reason, `"path"`)
}

func TestTypedNoArgumentsSpec(t *testing.T) {
	r := New()
	r.Register("uptime", Typed(func(_ context.Context, name string, _ struct{}) (source.Source, error) {
		v := 1.0
		return source.NewNumeric(name, &v), nil
	}))

	_, err := r.Construct(context.Background(), "uptime", nil)
	require.NoError(t, err)

	_, err = r.Construct(context.Background(), "uptime", []cty.Value{cty.True})
	var mismatch *TypeMismatchError
	require.ErrorAs(t, err, &mismatch)
}
