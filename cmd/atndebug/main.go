// Command atndebug runs the calculator example grammar's lexer and
// prediction core over an input expression and prints the token
// stream and the alternative predicted at the expr decision, plus that
// decision's DFA when -dump-dfas is set, for manually poking at the
// prediction core from a terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/go-atn/predict"
	"github.com/go-atn/predict/examples/calc"
)

const (
	colorReset = "\033[0m"
	colorRed   = "\033[1;31m"
	colorCyan  = "\033[1;36m"
)

type args struct {
	input     *string
	verbose   *bool
	dumpDFAs  *bool
}

func readArgs() *args {
	a := &args{
		input:    flag.String("input", "1 + 2 * (3 - 4)", "Expression to lex and predict over"),
		verbose:  flag.Bool("verbose", false, "Enable debug-level logging"),
		dumpDFAs: flag.Bool("dump-dfas", false, "Print each decision's DFA after prediction"),
	}
	flag.Parse()
	return a
}

func main() {
	a := readArgs()

	if *a.verbose {
		logger, _ := zap.NewDevelopment()
		atn.SetLogger(logger)
	}

	lexerATN := calc.BuildLexerATN()
	charStream, decodeErrs := atn.DecodeUTF8([]byte(*a.input), atn.DecodePolicyReport)
	for _, e := range decodeErrs {
		fmt.Fprintf(os.Stderr, "%swarning:%s decode: %s at offset %d\n", colorRed, colorReset, e.Reason, e.Offset)
	}

	lexer := calc.NewLexer(lexerATN, charStream)

	var tokens []atn.Token
	for {
		tok := lexer.NextToken()
		if tok.Channel == atn.TokenDefaultChannel {
			tokens = append(tokens, tok)
		}
		if tok.Type == atn.TokenEOF {
			break
		}
	}

	fmt.Printf("%stokens:%s\n", colorCyan, colorReset)
	for _, t := range tokens {
		fmt.Printf("  type=%-2d text=%q [%d,%d]\n", t.Type, t.Text, t.Start, t.Stop)
	}

	parserATN, exprDecision, _, _ := calc.BuildParserATN()
	sim := atn.NewParserSimulator(parserATN, atn.NewConfig(), nil)
	stream := &fixedTokenStream{tokens: tokens}
	alt, err := sim.AdaptivePredict(context.Background(), stream, exprDecision, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%serror:%s %s\n", colorRed, colorReset, err.Error())
		os.Exit(1)
	}
	fmt.Printf("%sexpr decision predicted alt:%s %d\n", colorCyan, colorReset, alt)

	if *a.dumpDFAs {
		fmt.Println(atn.DumpDFA(sim.DecisionToDFA[exprDecision]))
	}
}

// fixedTokenStream adapts a pre-lexed []atn.Token slice to
// atn.TokenStream for this standalone debug command, where the whole
// input is already buffered.
type fixedTokenStream struct {
	tokens []atn.Token
	index  int
}

func (s *fixedTokenStream) LA(i int) int {
	idx := s.index + i - 1
	if idx < 0 || idx >= len(s.tokens) {
		return atn.TokenEOF
	}
	return s.tokens[idx].Type
}

func (s *fixedTokenStream) Mark() int    { return s.index }
func (s *fixedTokenStream) Release(int)  {}
func (s *fixedTokenStream) Index() int   { return s.index }
func (s *fixedTokenStream) Seek(i int)   { s.index = i }
