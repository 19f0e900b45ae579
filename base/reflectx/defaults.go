// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reflectx provides reflection helpers for setting
// struct fields from their string representations.
package reflectx

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
)

// NonPointerValue returns a non-pointer version of the given value,
// following pointers until a nil pointer or a non-pointer is reached.
func NonPointerValue(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Pointer && !v.IsNil() {
		v = v.Elem()
	}
	return v
}

// SetFromDefaultTags sets the values of fields in the given struct
// object from `default:` struct field tag values, recursing into
// struct fields that have no tag. Fields without a tag are left as is.
func SetFromDefaultTags(obj any) error {
	v := NonPointerValue(reflect.ValueOf(obj))
	if v.Kind() != reflect.Struct {
		return fmt.Errorf("SetFromDefaultTags: %T is not a struct", obj)
	}
	if !v.CanSet() {
		return fmt.Errorf("SetFromDefaultTags: %T must be a pointer", obj)
	}
	typ := v.Type()
	var errs []error
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := v.Field(i)
		def, ok := f.Tag.Lookup("default")
		if !ok {
			if f.Type.Kind() == reflect.Struct {
				errs = append(errs, SetFromDefaultTags(fv.Addr().Interface()))
			}
			continue
		}
		if err := SetFromString(fv, def); err != nil {
			errs = append(errs, fmt.Errorf("SetFromDefaultTags: field %s in %s: %w", f.Name, typ.Name(), err))
		}
	}
	return errors.Join(errs...)
}

// SetFromString sets the given settable value from its string
// representation, for string, bool, integer and float kinds.
func SetFromString(v reflect.Value, s string) error {
	switch v.Kind() {
	case reflect.String:
		v.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetFloat(f)
	default:
		return fmt.Errorf("cannot set %v from string", v.Kind())
	}
	return nil
}
