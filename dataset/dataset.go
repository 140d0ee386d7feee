// Package dataset supplies the concrete DSL this system's example pack was
// distilled from (§4.E's operator set realized as grammar text) plus the
// named example sets original_source/listproc/dataset.py bundles for demo
// and regression purposes, and the there_and_back_again roundtrip check
// original_source/listproc/demo.py performs.
//
// Grounded directly on original_source/listproc/dataset.py (the subdomain
// table: program type, problem name, example list) and demo.py
// (there_and_back_again); the grammar text itself has no original_source
// counterpart (dataset.py only ever loads a "grammar.tyrell" file path, it
// never embeds the file contents) so its vocabulary is authored here from
// the exact operator/arity list in interpreter.py's eval_fn_const and
// eval_mfn_const dictionaries, using the teacher's go:embed pattern
// (vartan's //go:generate maleeni compile + embed of the compiled lexer) to
// ship it as a package constant instead of a runtime file read.
package dataset

import (
	_ "embed"

	"github.com/nihei9/tyrellgo/decide"
	"github.com/nihei9/tyrellgo/interp"
	"github.com/nihei9/tyrellgo/langtype"
	"github.com/nihei9/tyrellgo/spec"
)

//go:embed grammar.tyrell
var grammarText string

// Grammar returns the grammar text, with [[PROGSPEC]] still unsubstituted.
func Grammar() string {
	return grammarText
}

// ProgType is an (input types, output type) signature, matching dataset.py's
// `(["Bool"], "Bool")`-style tuples.
type ProgType struct {
	Input  []string
	Output string
}

// BuildSpec substitutes name/pt into the embedded grammar and assembles it
// into a langtype.Spec, ready for enum.New.
func BuildSpec(name string, pt ProgType) (*langtype.Spec, error) {
	return spec.ParseAndAssemble(grammarText, name, pt.Input, pt.Output)
}

// Subdomain bundles a ProgType with every named example set defined over it,
// mirroring one entry of dataset.py's `subdomains` dict.
type Subdomain struct {
	Type     ProgType
	Problems map[string][]decide.Example
}

func boolv(b bool) interp.Value { return interp.Bool(b) }
func intv(i int64) interp.Value { return interp.Int(i) }
func strv(s string) interp.Value { return interp.Str(s) }
func seqv(xs ...int64) interp.Value { return interp.Seq(xs) }

func ex(input []interp.Value, output interp.Value) decide.Example {
	return decide.Example{Input: input, Output: output}
}

// Subdomains is the direct Go counterpart of dataset.py's module-level
// `subdomains` dict: six program types, each with one or more named example
// sets a synth.Run call can target. Every literal value below is copied
// from dataset.py, not re-derived.
var Subdomains = map[string]Subdomain{
	"bool_bool": {
		Type: ProgType{Input: []string{"Bool"}, Output: "Bool"},
		Problems: map[string][]decide.Example{
			"const_false": {
				ex([]interp.Value{boolv(true)}, boolv(false)),
				ex([]interp.Value{boolv(false)}, boolv(false)),
			},
		},
	},
	"bool2_bool": {
		Type: ProgType{Input: []string{"Bool", "Bool"}, Output: "Bool"},
		Problems: map[string][]decide.Example{
			"nand": {
				ex([]interp.Value{boolv(true), boolv(true)}, boolv(false)),
				ex([]interp.Value{boolv(true), boolv(false)}, boolv(true)),
				ex([]interp.Value{boolv(false), boolv(true)}, boolv(true)),
				ex([]interp.Value{boolv(false), boolv(false)}, boolv(true)),
			},
			"and": {
				ex([]interp.Value{boolv(true), boolv(true)}, boolv(true)),
				ex([]interp.Value{boolv(true), boolv(false)}, boolv(false)),
				ex([]interp.Value{boolv(false), boolv(true)}, boolv(false)),
				ex([]interp.Value{boolv(false), boolv(false)}, boolv(false)),
			},
		},
	},
	"int2_int": {
		Type: ProgType{Input: []string{"Int", "Int"}, Output: "Int"},
		Problems: map[string][]decide.Example{
			"plus": {
				ex([]interp.Value{intv(0), intv(0)}, intv(0)),
				ex([]interp.Value{intv(1), intv(1)}, intv(2)),
				ex([]interp.Value{intv(10), intv(3)}, intv(13)),
			},
		},
	},
	"str_str": {
		Type: ProgType{Input: []string{"Str"}, Output: "Str"},
		Problems: map[string][]decide.Example{
			"identity": {
				ex([]interp.Value{strv("a")}, strv("a")),
			},
			"prepend_apple": {
				ex([]interp.Value{strv("a")}, strv("_apple_a")),
			},
		},
	},
	"str2_str": {
		Type: ProgType{Input: []string{"Str", "Str"}, Output: "Str"},
		Problems: map[string][]decide.Example{
			"demo_string_enumerator": {
				ex([]interp.Value{strv("a"), strv("b")}, strv("a_apple_b")),
			},
		},
	},
	"list2_int": {
		Type: ProgType{Input: []string{"List", "List"}, Output: "Int"},
		Problems: map[string][]decide.Example{
			"deepcoder_demo": {
				ex([]interp.Value{seqv(6, 2, 4, 7, 9), seqv(5, 3, 6, 1, 0)}, intv(27)),
			},
			"head_plus": {
				ex([]interp.Value{seqv(6), seqv(5)}, intv(11)),
				ex([]interp.Value{seqv(2), seqv(3)}, intv(5)),
				ex([]interp.Value{seqv(4), seqv(6)}, intv(10)),
			},
		},
	},
}
