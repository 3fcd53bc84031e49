package bridge

import (
	"context"
	"fmt"
	"reflect"

	"github.com/vk/sysglance/internal/ctxlog"
	"github.com/vk/sysglance/internal/registry"
	"github.com/vk/sysglance/internal/source"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// handle is the native payload a capsule value wraps. Once constructed, the
// source is owned by the runtime's value graph like any other cty value.
type handle struct {
	src source.Source
}

// capsuleType is the type tag attached to every constructed source.
var capsuleType = cty.Capsule("data_source", reflect.TypeOf(handle{}))

// wrap encapsulates a constructed source as a runtime value.
func wrap(s source.Source) cty.Value {
	return cty.CapsuleVal(capsuleType, &handle{src: s})
}

// FromValue unwraps a value produced by one of the exported constructors.
// It fails on any value that does not carry the bridge's type tag.
func FromValue(v cty.Value) (source.Source, error) {
	if !v.Type().Equals(capsuleType) {
		return nil, fmt.Errorf("expected a data source, got %s", v.Type().FriendlyName())
	}
	return v.EncapsulatedValue().(*handle).src, nil
}

// Constructor wraps one registered name as a cty function. The function
// accepts any argument list and leaves arity and type checking to the
// factory, which is where the typed decode lives; factory errors surface
// as evaluation errors on the calling expression, never as a crash.
func Constructor(ctx context.Context, reg *registry.Registry, name string) function.Function {
	return function.New(&function.Spec{
		VarParam: &function.Parameter{
			Name:             "args",
			Type:             cty.DynamicPseudoType,
			AllowDynamicType: true,
		},
		Type: function.StaticReturnType(capsuleType),
		Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
			src, err := reg.Construct(ctx, name, args)
			if err != nil {
				return cty.NilVal, err
			}
			ctxlog.FromContext(ctx).Debug("Constructed data source.", "name", name, "args", len(args))
			return wrap(src), nil
		},
	})
}

// ExportAll exposes every registered name as a callable constructor, ready
// to be installed in the layout runtime's function table.
func ExportAll(ctx context.Context, reg *registry.Registry) map[string]function.Function {
	fns := make(map[string]function.Function)
	for _, name := range reg.Names() {
		fns[name] = Constructor(ctx, reg, name)
	}
	ctxlog.FromContext(ctx).Debug("Exported data source constructors.", "count", len(fns))
	return fns
}
