package interp

import (
	"fmt"
	"sort"
)

func wantSeq(args []Value, pos int) ([]int64, error) {
	if pos >= len(args) || args[pos].kind != VSeq {
		return nil, fmt.Errorf("expected a List argument at position %d", pos)
	}
	return args[pos].seq, nil
}

func evalHead(args []Value) (Value, error) {
	xs, err := wantSeq(args, 0)
	if err != nil || len(args) != 1 {
		return Value{}, fmt.Errorf("head: expected one List argument")
	}
	if len(xs) == 0 {
		return Value{}, fmt.Errorf("head: empty list")
	}
	return Int(xs[0]), nil
}

func evalLast(args []Value) (Value, error) {
	xs, err := wantSeq(args, 0)
	if err != nil || len(args) != 1 {
		return Value{}, fmt.Errorf("last: expected one List argument")
	}
	if len(xs) == 0 {
		return Value{}, fmt.Errorf("last: empty list")
	}
	return Int(xs[len(xs)-1]), nil
}

func evalTake(args []Value) (Value, error) {
	if len(args) != 2 || args[0].kind != VInt || args[1].kind != VSeq {
		return Value{}, fmt.Errorf("take: expected (Int, List) arguments")
	}
	k, xs := args[0].i, args[1].seq
	if int64(len(xs)) <= k {
		return Seq(xs), nil
	}
	if k < 0 {
		return Value{}, fmt.Errorf("take: negative count")
	}
	return Seq(xs[:k]), nil
}

func evalDrop(args []Value) (Value, error) {
	if len(args) != 2 || args[0].kind != VInt || args[1].kind != VSeq {
		return Value{}, fmt.Errorf("drop: expected (Int, List) arguments")
	}
	k, xs := args[0].i, args[1].seq
	if int64(len(xs)) <= k {
		return Seq(nil), nil
	}
	if k < 0 {
		return Value{}, fmt.Errorf("drop: negative count")
	}
	return Seq(xs[k:]), nil
}

func evalAccess(args []Value) (Value, error) {
	if len(args) != 2 || args[0].kind != VInt || args[1].kind != VSeq {
		return Value{}, fmt.Errorf("access: expected (Int, List) arguments")
	}
	k, xs := args[0].i, args[1].seq
	if k < 0 || k >= int64(len(xs)) {
		return Value{}, fmt.Errorf("access: index %d out of range for length %d", k, len(xs))
	}
	return Int(xs[k]), nil
}

func evalMinimum(args []Value) (Value, error) {
	xs, err := wantSeq(args, 0)
	if err != nil || len(args) != 1 {
		return Value{}, fmt.Errorf("minimum: expected one List argument")
	}
	if len(xs) == 0 {
		return Value{}, fmt.Errorf("minimum: empty list")
	}
	m := xs[0]
	for _, x := range xs[1:] {
		if x < m {
			m = x
		}
	}
	return Int(m), nil
}

func evalMaximum(args []Value) (Value, error) {
	xs, err := wantSeq(args, 0)
	if err != nil || len(args) != 1 {
		return Value{}, fmt.Errorf("maximum: expected one List argument")
	}
	if len(xs) == 0 {
		return Value{}, fmt.Errorf("maximum: empty list")
	}
	m := xs[0]
	for _, x := range xs[1:] {
		if x > m {
			m = x
		}
	}
	return Int(m), nil
}

func evalReverse(args []Value) (Value, error) {
	xs, err := wantSeq(args, 0)
	if err != nil || len(args) != 1 {
		return Value{}, fmt.Errorf("reverse: expected one List argument")
	}
	out := make([]int64, len(xs))
	for i, x := range xs {
		out[len(xs)-1-i] = x
	}
	return Seq(out), nil
}

func evalSort(args []Value) (Value, error) {
	xs, err := wantSeq(args, 0)
	if err != nil || len(args) != 1 {
		return Value{}, fmt.Errorf("sort: expected one List argument")
	}
	out := append([]int64(nil), xs...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return Seq(out), nil
}

func evalSum(args []Value) (Value, error) {
	xs, err := wantSeq(args, 0)
	if err != nil || len(args) != 1 {
		return Value{}, fmt.Errorf("sum: expected one List argument")
	}
	var s int64
	for _, x := range xs {
		s += x
	}
	return Int(s), nil
}
