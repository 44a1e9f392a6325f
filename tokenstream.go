package atn

const (
	// TokenDefaultChannel is the channel the parser actually consumes
	// from; every other channel (e.g. a "hidden" whitespace/comment
	// channel) is skipped by BufferedTokenStream.LA.
	TokenDefaultChannel = 0
	TokenHiddenChannel  = 1

	TokenEOF = -1
)

// Token is one lexed unit. Text is materialized eagerly; a streaming
// implementation that defers this until asked is a reasonable future
// optimization but not one this package needs yet.
type Token struct {
	Type    int
	Channel int
	Start   int // inclusive code-point index into the char stream
	Stop    int // inclusive
	Line    int
	Column  int
	Text    string
}

// TokenSource produces one Token per call; NextToken on an exhausted
// source returns a Token{Type: TokenEOF} forever.
type TokenSource interface {
	NextToken() Token
}

// LexerTokenSource drives LexerSimulator over a CharStream to produce
// tokens, implementing the mode stack and the handful of lexer
// commands (skip/more/type/channel/mode/pushMode/popMode) a grammar's
// rules can attach to a match.
type LexerTokenSource struct {
	Sim   *LexerSimulator
	Input *CharStream

	modeStack []int
	mode      int

	line, column int

	skip    bool
	more    bool
	typeOverride    int
	channelOverride int
	hasTypeOverride bool
	hasChannelOverride bool
}

func NewLexerTokenSource(sim *LexerSimulator, input *CharStream) *LexerTokenSource {
	return &LexerTokenSource{Sim: sim, Input: input, line: 1, column: 0}
}

func (l *LexerTokenSource) NextToken() Token {
	moreStart, moreLine, moreCol := -1, 0, 0
	for {
		if l.Input.LA(1) == EOF {
			return Token{Type: TokenEOF, Channel: TokenDefaultChannel, Start: l.Input.Index(), Stop: l.Input.Index()}
		}

		start := l.Input.Index()
		startLine, startCol := l.line, l.column

		m, err := l.Sim.Match(l.Input, l.mode)
		if err != nil {
			// No rule matched: skip one code point to resynchronize.
			// No error is reported; this package leaves error
			// *recovery* policy to the embedding application and does
			// only this minimal skip.
			l.advancePosition(l.Input.LA(1))
			l.Input.Consume()
			continue
		}

		l.skip, l.more = false, false
		l.hasTypeOverride, l.hasChannelOverride = false, false
		stop := l.Input.Index() - 1
		for i := start; i <= stop; i++ {
			l.advancePosition(int(rune(l.Input.runes[i])))
		}
		if moreStart >= 0 {
			start, startLine, startCol = moreStart, moreLine, moreCol
			moreStart = -1
		}

		if m.Actions != nil {
			m.Actions.Execute(l)
		}

		if l.skip {
			continue
		}

		tokenType := m.TokenType
		if l.hasTypeOverride {
			tokenType = l.typeOverride
		}
		channel := TokenDefaultChannel
		if l.hasChannelOverride {
			channel = l.channelOverride
		}

		tok := Token{
			Type:    tokenType,
			Channel: channel,
			Start:   start,
			Stop:    stop,
			Line:    startLine,
			Column:  startCol,
			Text:    l.Input.GetText(start, stop),
		}

		if l.more {
			// `-> more` folds this match into the next one rather than
			// emitting it; loop back without returning so the next
			// iteration continues matching from here.
			moreStart, moreLine, moreCol = start, startLine, startCol
			continue
		}

		return tok
	}
}

func (l *LexerTokenSource) advancePosition(r int) {
	if r == '\n' {
		l.line++
		l.column = 0
		return
	}
	l.column++
}

func (l *LexerTokenSource) Skip()                  { l.skip = true }
func (l *LexerTokenSource) More()                  { l.more = true }
func (l *LexerTokenSource) SetType(t int)          { l.typeOverride, l.hasTypeOverride = t, true }
func (l *LexerTokenSource) SetChannel(c int)       { l.channelOverride, l.hasChannelOverride = c, true }
func (l *LexerTokenSource) SetMode(m int)          { l.mode = m }
func (l *LexerTokenSource) PushMode(m int) {
	l.modeStack = append(l.modeStack, l.mode)
	l.mode = m
}
func (l *LexerTokenSource) PopMode() {
	if n := len(l.modeStack); n > 0 {
		l.mode = l.modeStack[n-1]
		l.modeStack = l.modeStack[:n-1]
	}
}
func (l *LexerTokenSource) Custom(ruleIndex, actionIndex int) {}

// BufferedTokenStream buffers a TokenSource's output and implements
// the TokenStream interface AdaptivePredict needs (LA/Mark/Release/
// Index/Seek), skipping tokens not on the default channel the way a
// parser's lookahead always does.
type BufferedTokenStream struct {
	source TokenSource
	tokens []Token
	index  int

	marks []int
}

func NewBufferedTokenStream(source TokenSource) *BufferedTokenStream {
	return &BufferedTokenStream{source: source}
}

func (b *BufferedTokenStream) fill(n int) {
	for len(b.tokens) <= n {
		if len(b.tokens) > 0 && b.tokens[len(b.tokens)-1].Type == TokenEOF {
			return
		}
		b.tokens = append(b.tokens, b.source.NextToken())
	}
}

// nextOnChannel returns the buffer index of the i-th token (1-based,
// relative to b.index) on the default channel, filling as needed.
func (b *BufferedTokenStream) nextOnChannel(from, count int) int {
	i := from
	seen := 0
	for {
		b.fill(i)
		if i >= len(b.tokens) {
			return len(b.tokens) - 1
		}
		if b.tokens[i].Channel == TokenDefaultChannel || b.tokens[i].Type == TokenEOF {
			seen++
			if seen == count {
				return i
			}
		}
		i++
	}
}

func (b *BufferedTokenStream) LA(i int) int {
	if i <= 0 {
		panic("atn: BufferedTokenStream.LA only supports positive lookahead")
	}
	idx := b.nextOnChannel(b.index, i)
	return b.tokens[idx].Type
}

func (b *BufferedTokenStream) LT(i int) Token {
	if i <= 0 {
		panic("atn: BufferedTokenStream.LT only supports positive lookahead")
	}
	idx := b.nextOnChannel(b.index, i)
	return b.tokens[idx]
}

func (b *BufferedTokenStream) Index() int { return b.index }

func (b *BufferedTokenStream) Seek(index int) { b.index = index }

func (b *BufferedTokenStream) Consume() {
	b.index = b.nextOnChannel(b.index, 1) + 1
}

func (b *BufferedTokenStream) Mark() int {
	b.marks = append(b.marks, b.index)
	return len(b.marks) - 1
}

func (b *BufferedTokenStream) Release(marker int) {
	if marker < len(b.marks) {
		b.marks = b.marks[:marker]
	}
}
