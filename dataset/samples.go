package dataset

import "github.com/nihei9/tyrellgo/interp"

// samplesForType returns a small fixed sample set for one type name, in the
// spirit of demo.py's get_samples_of_type (which only ever covers the three
// cases demo.py itself exercises — Int, (Int,Int), List — generalized here
// to the other value types a subdomain can use).
func samplesForType(typeName string) []interp.Value {
	switch typeName {
	case "Int":
		return []interp.Value{interp.Int(0), interp.Int(1), interp.Int(2), interp.Int(4), interp.Int(9)}
	case "Bool":
		return []interp.Value{interp.Bool(true), interp.Bool(false)}
	case "Str":
		return []interp.Value{interp.Str("a"), interp.Str("b"), interp.Str("")}
	case "List":
		return []interp.Value{
			interp.Seq([]int64{0, 1, 8, 3}),
			interp.Seq([]int64{1}),
			interp.Seq([]int64{12, 3, 8, 1}),
			interp.Seq([]int64{9, 8, 7, 2}),
		}
	default:
		return nil
	}
}

// SamplesForTypes builds the cartesian-ish sample set demo.py's
// do_make_ioset consumes: one []interp.Value tuple per row, with each
// position drawn from that position's type's sample set (truncated to the
// shortest column, matching demo.py's ((0,0),(1,4),...) style of
// positionally-zipped tuples rather than a full cross product).
func SamplesForTypes(typeNames []string) [][]interp.Value {
	if len(typeNames) == 0 {
		return nil
	}
	cols := make([][]interp.Value, len(typeNames))
	n := -1
	for i, t := range typeNames {
		cols[i] = samplesForType(t)
		if n == -1 || len(cols[i]) < n {
			n = len(cols[i])
		}
	}
	rows := make([][]interp.Value, n)
	for r := 0; r < n; r++ {
		row := make([]interp.Value, len(typeNames))
		for c := range typeNames {
			row[c] = cols[c][r]
		}
		rows[r] = row
	}
	return rows
}
