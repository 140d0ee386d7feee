package interp

import (
	"fmt"
	"strconv"
)

func evalBoolConst(args []Value) (Value, error) {
	if len(args) != 1 || args[0].kind != VStr {
		return Value{}, fmt.Errorf("bool_const: expected one Str argument")
	}
	switch args[0].s {
	case "true":
		return Bool(true), nil
	case "false":
		return Bool(false), nil
	default:
		return Value{}, fmt.Errorf("bool_const: invalid literal %q", args[0].s)
	}
}

func evalIntConst(args []Value) (Value, error) {
	if len(args) != 1 || args[0].kind != VStr {
		return Value{}, fmt.Errorf("int_const: expected one Str argument")
	}
	n, err := strconv.ParseInt(args[0].s, 10, 64)
	if err != nil {
		return Value{}, fmt.Errorf("int_const: invalid literal %q", args[0].s)
	}
	return Int(n), nil
}

func evalStrConst(args []Value) (Value, error) {
	if len(args) != 1 || args[0].kind != VStr {
		return Value{}, fmt.Errorf("str_const: expected one Str argument")
	}
	return Str(args[0].s), nil
}

func evalStrPlus(args []Value) (Value, error) {
	if len(args) != 2 || args[0].kind != VStr || args[1].kind != VStr {
		return Value{}, fmt.Errorf("str_plus: expected two Str arguments")
	}
	return Str(args[0].s + args[1].s), nil
}

func evalFnConst(args []Value) (Value, error) {
	if len(args) != 1 || args[0].kind != VStr {
		return Value{}, fmt.Errorf("fn_const: expected one Str argument")
	}
	op, ok := fnOpNames[args[0].s]
	if !ok {
		return Value{}, fmt.Errorf("fn_const: unknown operator %q", args[0].s)
	}
	return Fun(FunctionValue{op: op}), nil
}

func evalMfnConst(args []Value) (Value, error) {
	if len(args) != 2 || args[0].kind != VStr || args[1].kind != VStr {
		return Value{}, fmt.Errorf("mfn_const: expected two Str arguments")
	}
	op, ok := metaFnOpNames[args[0].s]
	if !ok {
		return Value{}, fmt.Errorf("mfn_const: unknown operator %q", args[0].s)
	}
	c, err := strconv.ParseInt(args[1].s, 10, 64)
	if err != nil {
		return Value{}, fmt.Errorf("mfn_const: invalid constant %q", args[1].s)
	}
	return Fun(FunctionValue{op: op, meta: true, c: c}), nil
}

func evalNand(args []Value) (Value, error) {
	if len(args) != 2 || args[0].kind != VBool || args[1].kind != VBool {
		return Value{}, fmt.Errorf("nand: expected two Bool arguments")
	}
	return Bool(!(args[0].b && args[1].b)), nil
}
