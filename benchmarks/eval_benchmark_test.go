package benchmarks

import (
	"io"
	"strings"
	"testing"

	"hex/pkg/eval"
	"hex/pkg/lexer"
	"hex/pkg/object"
	"hex/pkg/parser"
	"hex/pkg/stdlib"
)

var result object.Object

// Go native baselines for comparison
func BenchmarkGoAddition(b *testing.B) {
	var sum float64
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sum = 5 + 5 + 5 + 5 + 5 + 5 + 5 + 5 + 5 + 5 + 5 + 5 + 5 + 5 + 5 + 5 + 5 + 5 + 5 + 5 + 5 + 5 + 5 + 5 + 5
	}
	_ = sum
}

func BenchmarkGoComparison(b *testing.B) {
	var r bool
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r = 1 < 2
	}
	_ = r
}

func compile(b *testing.B, input string) *parser.Parser {
	b.Helper()
	l := lexer.New(input)
	return parser.New(l)
}

func benchmarkEval(b *testing.B, input string) {
	p := compile(b, input)
	program := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		b.Fatal(errs[0])
	}

	reg := stdlib.New(io.Discard, strings.NewReader(""))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		env := object.NewEnvironment()
		result = eval.Eval(program, env, reg)
	}
}

func BenchmarkEvalAddition(b *testing.B) {
	benchmarkEval(b, `
5 + 5 + 5 + 5 + 5 + 5 + 5 + 5 + 5 + 5 + 5 + 5 + 5 + 5 + 5 + 5 + 5 + 5 + 5 + 5 + 5 + 5 + 5 + 5 + 5
`)
}

func BenchmarkEvalComparison(b *testing.B) {
	benchmarkEval(b, `1 < 2`)
}

func BenchmarkEvalBindings(b *testing.B) {
	benchmarkEval(b, `
val a = 1
val b = a + 2
val c = b * 3
c - a
`)
}

func BenchmarkEvalModuleCall(b *testing.B) {
	benchmarkEval(b, `math::pow(2, 10)`)
}

func BenchmarkEvalCollections(b *testing.B) {
	benchmarkEval(b, `
val items = [1, 2, 3]
items.push(4)
items[3] + items.size()
`)
}

func BenchmarkParse(b *testing.B) {
	input := `
val v0 = 20
val theta = 45
val g = 9.81
val theta_rad = theta * 3.14159 / 180
math::pow(v0 * math::sin(theta_rad), 2) / (2 * g)
`
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l := lexer.New(input)
		p := parser.New(l)
		if program := p.ParseProgram(); program == nil {
			b.Fatal("no program")
		}
	}
}
