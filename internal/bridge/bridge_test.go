package bridge

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/sysglance/internal/registry"
	"github.com/zclconf/go-cty/cty"
)

func TestExportAllExposesEveryName(t *testing.T) {
	r := registry.New()
	a, b := 0.0, 0.0
	registry.RegisterVariable(r, "cpu_usage", &a)
	registry.RegisterVariable(r, "mem_used", &b)

	fns := ExportAll(context.Background(), r)
	require.Len(t, fns, 2)
	assert.Contains(t, fns, "cpu_usage")
	assert.Contains(t, fns, "mem_used")
}

func TestConstructorReturnsTaggedValue(t *testing.T) {
	r := registry.New()
	v := 42.0
	registry.RegisterVariable(r, "test_value", &v)

	fn := Constructor(context.Background(), r, "test_value")
	val, err := fn.Call(nil)
	require.NoError(t, err)

	src, err := FromValue(val)
	require.NoError(t, err)
	assert.Equal(t, "test_value", src.Name())
	assert.Equal(t, 42.0, src.Number())
}

func TestConstructorPropagatesNotFound(t *testing.T) {
	r := registry.New()

	fn := Constructor(context.Background(), r, "no_such_source")
	_, err := fn.Call(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no_such_source")
}

func TestFromValueRejectsForeignValues(t *testing.T) {
	_, err := FromValue(cty.StringVal("not a source"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected a data source")
}
