/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package meta

import (
	"reflect"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Compiled expression evaluated against object instances.
//
// Expressions are compiled without environment, so variables are resolved at run time.
// Unknown variables evaluate to nil.
type expression struct {
	source  string
	program *vm.Program
}

func compileExpression(source string) (*expression, error) {
	program, err := expr.Compile(source, expr.AllowUndefinedVariables())
	if err != nil {
		return nil, ErrInvalid("expression «%s»: %v", source, err)
	}
	return &expression{source: source, program: program}, nil
}

func (e *expression) run(instance any) (any, error) {
	return expr.Run(e.program, expressionEnv(instance))
}

// Returns environment to evaluate expressions against instance.
func expressionEnv(instance any) any {
	switch i := instance.(type) {
	case nil:
		return map[string]any{}
	case *Instance:
		if i == nil {
			return map[string]any{}
		}
		return i.Values()
	case map[string]any:
		return i
	}
	v := reflect.ValueOf(instance)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return map[string]any{}
		}
		v = v.Elem()
	}
	return v.Interface()
}

// Returns true if value is truthy: true, non zero number, non empty string or collection, non nil.
func truthy(v any) bool {
	if v == nil {
		return false
	}
	switch b := v.(type) {
	case bool:
		return b
	case string:
		return b != ""
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() > 0
	case reflect.Pointer, reflect.Interface, reflect.Func, reflect.Chan:
		return !rv.IsNil()
	}
	return true
}
