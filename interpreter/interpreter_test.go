package interpreter

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StellaZare/lox-interpreter/diag"
	"github.com/StellaZare/lox-interpreter/lexer"
	"github.com/StellaZare/lox-interpreter/parser"
)

// run lexes, parses, and interprets source against a fresh Interpreter,
// returning what it printed and whatever diagnostics fired.
func run(t *testing.T, source string) (output string, reporter *diag.StreamReporter) {
	t.Helper()
	var diagBuf, outBuf bytes.Buffer

	reporter = diag.NewStreamReporter(&diagBuf)
	tokens := lexer.New(source, reporter).ScanTokens()
	statements := parser.New(tokens, reporter).Parse()
	require.False(t, reporter.HadSyntaxError(), "unexpected syntax error: %s", diagBuf.String())

	interp := New(reporter)
	interp.SetWriter(&outBuf)
	interp.Interpret(statements)

	return outBuf.String(), reporter
}

func TestInterpret_ArithmeticAndPrint(t *testing.T) {
	out, rep := run(t, "print 1 + 2 * 3;")
	assert.False(t, rep.HadRuntimeError())
	assert.Equal(t, "7\n", out)
}

func TestInterpret_StringConcatenation(t *testing.T) {
	out, rep := run(t, `print "foo" + "bar";`)
	assert.False(t, rep.HadRuntimeError())
	assert.Equal(t, "foobar\n", out)
}

func TestInterpret_UnaryMinusAndNot(t *testing.T) {
	out, rep := run(t, "print -5; print !true; print !nil;")
	assert.False(t, rep.HadRuntimeError())
	assert.Equal(t, "-5\nfalse\ntrue\n", out)
}

func TestInterpret_TruthinessOnlyNilAndFalseAreFalsy(t *testing.T) {
	out, rep := run(t, `print !0; print !""; print !nil; print !false;`)
	assert.False(t, rep.HadRuntimeError())
	assert.Equal(t, "false\nfalse\ntrue\ntrue\n", out)
}

func TestInterpret_EqualityAcrossKindsIsAlwaysFalse(t *testing.T) {
	out, rep := run(t, `print 1 == "1"; print nil == false; print 1 == 1.0;`)
	assert.False(t, rep.HadRuntimeError())
	assert.Equal(t, "false\nfalse\ntrue\n", out)
}

func TestInterpret_VariableDeclarationDefaultsToNil(t *testing.T) {
	out, rep := run(t, "var x; print x;")
	assert.False(t, rep.HadRuntimeError())
	assert.Equal(t, "nil\n", out)
}

func TestInterpret_VariableAssignmentEvaluatesToAssignedValue(t *testing.T) {
	out, rep := run(t, "var x = 1; print x = 2;")
	assert.False(t, rep.HadRuntimeError())
	assert.Equal(t, "2\n", out)
}

func TestInterpret_AssignmentToUndefinedVariableIsRuntimeError(t *testing.T) {
	_, rep := run(t, "x = 1;")
	assert.True(t, rep.HadRuntimeError())
}

func TestInterpret_ReadingUndefinedVariableIsRuntimeError(t *testing.T) {
	_, rep := run(t, "print x;")
	assert.True(t, rep.HadRuntimeError())
}

func TestInterpret_BlockScopingShadowsOuter(t *testing.T) {
	out, rep := run(t, `
		var x = "outer";
		{
			var x = "inner";
			print x;
		}
		print x;
	`)
	assert.False(t, rep.HadRuntimeError())
	assert.Equal(t, "inner\nouter\n", out)
}

func TestInterpret_AssignmentInsideBlockMutatesOuterBinding(t *testing.T) {
	out, rep := run(t, `
		var x = 1;
		{
			x = 2;
		}
		print x;
	`)
	assert.False(t, rep.HadRuntimeError())
	assert.Equal(t, "2\n", out)
}

func TestInterpret_IfElse(t *testing.T) {
	out, rep := run(t, `if (1 < 2) print "yes"; else print "no";`)
	assert.False(t, rep.HadRuntimeError())
	assert.Equal(t, "yes\n", out)
}

func TestInterpret_WhileLoop(t *testing.T) {
	out, rep := run(t, `
		var i = 0;
		while (i < 3) {
			print i;
			i = i + 1;
		}
	`)
	assert.False(t, rep.HadRuntimeError())
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestInterpret_ForLoopDesugaring(t *testing.T) {
	out, rep := run(t, `for (var i = 0; i < 3; i = i + 1) print i;`)
	assert.False(t, rep.HadRuntimeError())
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestInterpret_LogicalOrShortCircuitsAndReturnsOperand(t *testing.T) {
	out, rep := run(t, `print "left" or "right"; print nil or "fallback";`)
	assert.False(t, rep.HadRuntimeError())
	assert.Equal(t, "left\nfallback\n", out)
}

func TestInterpret_LogicalAndShortCircuitsAndReturnsOperand(t *testing.T) {
	out, rep := run(t, `print false and "right"; print "left" and "right";`)
	assert.False(t, rep.HadRuntimeError())
	assert.Equal(t, "false\nright\n", out)
}

func TestInterpret_AddingNumberAndStringIsRuntimeError(t *testing.T) {
	_, rep := run(t, `print 1 + "a";`)
	assert.True(t, rep.HadRuntimeError())
}

func TestInterpret_SubtractingStringsIsRuntimeError(t *testing.T) {
	_, rep := run(t, `print "a" - "b";`)
	assert.True(t, rep.HadRuntimeError())
}

func TestInterpret_NegatingStringIsRuntimeError(t *testing.T) {
	_, rep := run(t, `print -"a";`)
	assert.True(t, rep.HadRuntimeError())
}

func TestInterpret_RuntimeErrorDuringOneStatementStillAbortsRemainingStatements(t *testing.T) {
	out, rep := run(t, `print "before"; print 1 + "a"; print "after";`)
	assert.True(t, rep.HadRuntimeError())
	assert.Equal(t, "before\n", out)
}

func TestInterpret_DivisionByZeroProducesInfinity(t *testing.T) {
	out, rep := run(t, `print 1 / 0;`)
	assert.False(t, rep.HadRuntimeError())
	assert.Equal(t, "Infinity\n", out)
}

func TestInterpret_IntegerValuedNumbersPrintWithoutTrailingZero(t *testing.T) {
	out, rep := run(t, `print 10; print 10.0; print 3.5;`)
	assert.False(t, rep.HadRuntimeError())
	assert.Equal(t, "10\n10\n3.5\n", out)
}

// A second Interpret call on the same Interpreter panicking and recovering
// must not leave the environment pointer corrupted: later statements still
// see globals defined earlier.
func TestInterpret_RecoveringFromRuntimeErrorPreservesGlobalEnvironment(t *testing.T) {
	var diagBuf, outBuf bytes.Buffer
	reporter := diag.NewStreamReporter(&diagBuf)
	interp := New(reporter)
	interp.SetWriter(&outBuf)

	tokens := lexer.New(`var x = 1; print y;`, reporter).ScanTokens()
	statements := parser.New(tokens, reporter).Parse()
	interp.Interpret(statements)
	assert.True(t, reporter.HadRuntimeError())

	reporter.Reset()
	tokens = lexer.New(`print x;`, reporter).ScanTokens()
	statements = parser.New(tokens, reporter).Parse()
	interp.Interpret(statements)
	assert.False(t, reporter.HadRuntimeError())
	assert.Equal(t, "1\n", outBuf.String())
}
