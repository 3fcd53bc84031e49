package registry

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/vk/sysglance/internal/source"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Typed adapts a strongly-typed constructor into a Factory. A is a struct
// whose exported fields describe the constructor's positional arguments in
// declaration order; the returned Factory decodes the dynamically-typed
// argument list into A and reports *TypeMismatchError when it cannot.
// Fields tagged `cty:"name,optional"` may be omitted from the end of the
// argument list and keep their zero value.
func Typed[A any](build func(ctx context.Context, name string, args A) (source.Source, error)) Factory {
	return func(ctx context.Context, name string, raw []cty.Value) (source.Source, error) {
		var args A
		if err := decodeArgs(name, raw, &args); err != nil {
			return nil, err
		}
		return build(ctx, name, args)
	}
}

// RegisterVariable registers a source that reports the live value of v.
// Layout arguments are accepted and ignored, so a module can wrap the
// factory to pick a variable based on them without changing call sites.
func RegisterVariable[T source.Value](r *Registry, name string, v *T) {
	r.Register(name, func(_ context.Context, name string, _ []cty.Value) (source.Source, error) {
		return source.NewNumeric(name, v), nil
	})
}

// RegisterDisabled registers a placeholder for a source that was compiled
// out, naming the build option that would bring it back. Constructing it
// always succeeds; the soft failure happens at the metric level, not the
// registry level.
func RegisterDisabled(r *Registry, name, option string) {
	r.Register(name, func(_ context.Context, name string, _ []cty.Value) (source.Source, error) {
		return source.NewDisabled(name, option), nil
	})
}

// decodeArgs populates the struct behind argsPtr from a positional cty
// argument list, converting each value to the type the field implies.
func decodeArgs(name string, raw []cty.Value, argsPtr any) error {
	structVal := reflect.ValueOf(argsPtr).Elem()
	structType := structVal.Type()
	if structType.Kind() != reflect.Struct {
		panic(fmt.Sprintf("argument spec for %q must be a struct, got %s", name, structType))
	}

	next := 0
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		if !field.IsExported() {
			continue
		}

		argName := strings.ToLower(field.Name)
		optional := false
		if tag := field.Tag.Get("cty"); tag != "" {
			parts := strings.Split(tag, ",")
			if parts[0] != "" {
				argName = parts[0]
			}
			for _, p := range parts[1:] {
				if p == "optional" {
					optional = true
				}
			}
		}

		if next >= len(raw) {
			if optional {
				continue
			}
			return &TypeMismatchError{Name: name, Reason: fmt.Sprintf("missing required argument %q", argName)}
		}

		if err := decodeValue(raw[next], structVal.Field(i).Addr().Interface()); err != nil {
			return &TypeMismatchError{Name: name, Reason: fmt.Sprintf("argument %q: %s", argName, err)}
		}
		next++
	}

	if next < len(raw) {
		return &TypeMismatchError{Name: name, Reason: fmt.Sprintf("too many arguments: expected %d, got %d", next, len(raw))}
	}
	return nil
}

// decodeValue converts a single cty.Value into the Go value behind goPtr.
func decodeValue(val cty.Value, goPtr any) error {
	wantType, err := gocty.ImpliedType(reflect.ValueOf(goPtr).Elem().Interface())
	if err != nil {
		return gocty.FromCtyValue(val, goPtr)
	}
	converted, err := convert.Convert(val, wantType)
	if err != nil {
		return fmt.Errorf("cannot convert %s to %s", val.Type().FriendlyName(), wantType.FriendlyName())
	}
	return gocty.FromCtyValue(converted, goPtr)
}
