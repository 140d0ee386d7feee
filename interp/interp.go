package interp

import (
	"fmt"

	"github.com/nihei9/tyrellgo/ast"
	"github.com/nihei9/tyrellgo/langtype"
	"github.com/nihei9/tyrellgo/synerr"
)

// Eval post-order evaluates node against input: every child is evaluated
// first, then the operator identified by the node's production is applied
// (§4.E). Any failure anywhere in the tree is wrapped as a *synerr.Error
// with Kind Eval and propagates to the caller — it is the decider's job to
// catch it and reject the candidate, not Eval's.
func Eval(node *ast.Node, input []Value) (Value, error) {
	switch node.Prod.Kind() {
	case langtype.ProdEnum:
		return Str(node.Prod.ChoiceValue()), nil

	case langtype.ProdParam:
		i := node.Prod.ParamIndex()
		if i < 0 || i >= len(input) {
			return Value{}, synerr.New(synerr.Eval, fmt.Errorf("param index %d out of range for %d inputs", i, len(input)))
		}
		return input[i], nil

	case langtype.ProdFunction:
		args := make([]Value, len(node.Children))
		for i, c := range node.Children {
			v, err := Eval(c, input)
			if err != nil {
				return Value{}, err
			}
			args[i] = v
		}
		v, err := applyFunction(node.Prod.Name(), args)
		if err != nil {
			return Value{}, synerr.New(synerr.Eval, err)
		}
		return v, nil

	default:
		return Value{}, synerr.New(synerr.Eval, fmt.Errorf("unknown production kind"))
	}
}

// applyFunction dispatches a Function production by name. Every branch is
// grounded on the matching eval_<name> method of
// original_source/listproc/interpreter.py.
func applyFunction(name string, args []Value) (Value, error) {
	switch name {
	case "bool_const":
		return evalBoolConst(args)
	case "int_const":
		return evalIntConst(args)
	case "str_const":
		return evalStrConst(args)
	case "str_plus":
		return evalStrPlus(args)
	case "fn_const":
		return evalFnConst(args)
	case "mfn_const":
		return evalMfnConst(args)
	case "nand":
		return evalNand(args)

	case "pos":
		return wantInt(args, "pos", func(x int64) (Value, error) { return Int(x), nil })
	case "neg":
		return wantInt(args, "neg", func(x int64) (Value, error) { return Int(-x), nil })
	case "plus":
		return wantInt2(args, "plus", func(a, b int64) (Value, error) { return applyBinaryIntOp(OpPlus, a, b) })
	case "minus":
		return wantInt2(args, "minus", func(a, b int64) (Value, error) { return applyBinaryIntOp(OpMinus, a, b) })
	case "mul":
		return wantInt2(args, "mul", func(a, b int64) (Value, error) { return applyBinaryIntOp(OpMul, a, b) })
	case "div":
		return wantInt2(args, "div", func(a, b int64) (Value, error) { return applyBinaryIntOp(OpDiv, a, b) })
	case "pow":
		return wantInt2(args, "pow", func(a, b int64) (Value, error) { return applyBinaryIntOp(OpPow, a, b) })
	case "gt_zero":
		return wantInt(args, "gt_zero", func(x int64) (Value, error) { return Bool(x > 0), nil })
	case "lt_zero":
		return wantInt(args, "lt_zero", func(x int64) (Value, error) { return Bool(x < 0), nil })
	case "is_even":
		return wantInt(args, "is_even", func(x int64) (Value, error) { return Bool(x%2 == 0), nil })
	case "is_odd":
		return wantInt(args, "is_odd", func(x int64) (Value, error) { return Bool(x%2 != 0), nil })

	case "head":
		return evalHead(args)
	case "last":
		return evalLast(args)
	case "take":
		return evalTake(args)
	case "drop":
		return evalDrop(args)
	case "access":
		return evalAccess(args)
	case "minimum":
		return evalMinimum(args)
	case "maximum":
		return evalMaximum(args)
	case "reverse":
		return evalReverse(args)
	case "sort":
		return evalSort(args)
	case "sum":
		return evalSum(args)

	case "map":
		return evalMap(args)
	case "filter":
		return evalFilter(args)
	case "count":
		return evalCount(args)
	case "zipwith":
		return evalZipwith(args)
	case "scanl1":
		return evalScanl1(args)

	default:
		return Value{}, fmt.Errorf("unknown function %q", name)
	}
}

func wantInt(args []Value, name string, f func(int64) (Value, error)) (Value, error) {
	if len(args) != 1 || args[0].kind != VInt {
		return Value{}, fmt.Errorf("%s: expected one Int argument", name)
	}
	return f(args[0].i)
}

func wantInt2(args []Value, name string, f func(int64, int64) (Value, error)) (Value, error) {
	if len(args) != 2 || args[0].kind != VInt || args[1].kind != VInt {
		return Value{}, fmt.Errorf("%s: expected two Int arguments", name)
	}
	return f(args[0].i, args[1].i)
}
