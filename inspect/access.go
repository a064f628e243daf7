// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inspect

import (
	"fmt"
	"reflect"
	"strings"

	"cogentcore.org/deepinspect/base/errors"
	"cogentcore.org/deepinspect/base/reflectx"
	"gopkg.in/yaml.v3"
)

// ReadField returns the value of the given field of the given
// addressable struct value, or of the static variable if the field
// is static. The result is addressable.
func ReadField(sv reflect.Value, fd *FieldDescriptor) (reflect.Value, error) {
	return errors.Recover1(func() (reflect.Value, error) {
		if fd.Static.IsValid() {
			return fd.Static.Elem(), nil
		}
		if !sv.IsValid() {
			return reflect.Value{}, fmt.Errorf("%w: field %s of a nil value", ErrUnreadable, fd.Name)
		}
		fv, err := sv.FieldByIndexErr(fd.Index)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("%w: field %s: %w", ErrUnreadable, fd.Name, err)
		}
		return reflectx.Readable(fv), nil
	})
}

// WriteField sets the given field of the given addressable struct
// value, or the static variable, to the given value converted to the
// type of the field.
func WriteField(sv reflect.Value, fd *FieldDescriptor, v reflect.Value) error {
	err := errors.Recover(func() error {
		var fv reflect.Value
		if fd.Static.IsValid() {
			fv = fd.Static.Elem()
		} else {
			var err error
			fv, err = sv.FieldByIndexErr(fd.Index)
			if err != nil {
				return err
			}
		}
		if !fv.CanSet() {
			return errors.Errorf("field %s can not be set", fd.Name)
		}
		cv, err := reflectx.Convert(v, fd.Type)
		if err != nil {
			return err
		}
		fv.Set(cv)
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: field %s: %w", ErrUncommittable, fd.Name, err)
	}
	return nil
}

// ReadProperty calls the getter of the given property on the given
// pointer receiver and returns its result.
func ReadProperty(recv reflect.Value, pd *PropertyDescriptor) (reflect.Value, error) {
	if !pd.Readable || pd.Getter < 0 {
		return reflect.Value{}, fmt.Errorf("%w: property %s has no getter", ErrUnreadable, pd.Name)
	}
	res, err := errors.Recover1(func() (reflect.Value, error) {
		return recv.Method(pd.Getter).Call(nil)[0], nil
	})
	if err != nil {
		return reflect.Value{}, fmt.Errorf("%w: property %s: %w", ErrUnreadable, pd.Name, err)
	}
	return res, nil
}

// WriteProperty calls the setter of the given property on the given
// pointer receiver with the given value.
func WriteProperty(recv reflect.Value, pd *PropertyDescriptor, v reflect.Value) error {
	if !pd.Writable || pd.Setter < 0 {
		return fmt.Errorf("%w: property %s has no setter", ErrUncommittable, pd.Name)
	}
	err := errors.Recover(func() error {
		m := recv.Method(pd.Setter)
		cv, err := reflectx.Convert(v, m.Type().In(0))
		if err != nil {
			return err
		}
		out := m.Call([]reflect.Value{cv})
		if len(out) == 1 && !out[0].IsNil() {
			return out[0].Interface().(error)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: property %s: %w", ErrUncommittable, pd.Name, err)
	}
	return nil
}

// Outcome is the result of calling a method.
type Outcome struct {

	// Results are the results of the call, without a trailing error.
	Results []reflect.Value

	// Summary is the message shown under the method.
	Summary string
}

// Invoke calls the given method on the given pointer receiver, or the
// static function if recv is invalid, with the given arguments.
// Panics and trailing error results are returned as errors wrapping
// [ErrInvocation], with a failure summary in the outcome.
func Invoke(recv reflect.Value, md *MethodDescriptor, args []reflect.Value) (Outcome, error) {
	prefix := "Method (" + md.Name + ") "
	out, err := errors.Recover1(func() ([]reflect.Value, error) {
		fn := md.Func
		if !fn.IsValid() {
			if !recv.IsValid() {
				return nil, errors.New("no receiver")
			}
			fn = recv.Method(md.Index)
		}
		if md.Variadic {
			return fn.CallSlice(args), nil
		}
		return fn.Call(args), nil
	})
	if err == nil && md.HasError() && len(out) > 0 {
		last := out[len(out)-1]
		out = out[:len(out)-1]
		if !last.IsNil() {
			err = last.Interface().(error)
		}
	}
	if err != nil {
		return Outcome{Summary: prefix + "Failed: " + err.Error()}, fmt.Errorf("%w: %s: %w", ErrInvocation, md.Name, err)
	}
	o := Outcome{Results: out}
	if len(out) == 0 {
		o.Summary = prefix + "Call Succeed."
		return o, nil
	}
	o.Summary = prefix + Summarize(out[0])
	return o, nil
}

// Summarize returns the description of a method result.
func Summarize(v reflect.Value) string {
	if v.Kind() == reflect.String && v.Len() == 0 {
		return "Returned Empty String"
	}
	if reflectx.IsNil(v) {
		return "Returning Null"
	}
	val := reflectx.Interface(v)
	if _, ok := val.(fmt.Stringer); !ok {
		switch reflectx.Underlying(v).Kind() {
		case reflect.Struct, reflect.Map, reflect.Slice, reflect.Array:
			if s, err := flowYAML(val); err == nil {
				return "Result: " + s
			}
		}
	}
	return "Result: " + reflectx.ToString(val)
}

// flowYAML returns the given value as single line YAML.
func flowYAML(v any) (string, error) {
	return errors.Recover1(func() (string, error) {
		var n yaml.Node
		if err := n.Encode(v); err != nil {
			return "", err
		}
		setFlow(&n)
		b, err := yaml.Marshal(&n)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(b)), nil
	})
}

func setFlow(n *yaml.Node) {
	if n.Kind == yaml.MappingNode || n.Kind == yaml.SequenceNode {
		n.Style |= yaml.FlowStyle
	}
	for _, c := range n.Content {
		setFlow(c)
	}
}
