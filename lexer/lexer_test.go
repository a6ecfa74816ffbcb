package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/firrtlator/firrtlator/ferr"
	"github.com/firrtlator/firrtlator/token"
)

func allTokens(t *testing.T, src string) []token.Token {
	t.Helper()
	l := New(src)
	var toks []token.Token
	for {
		tok, err := l.Next()
		require.NoError(t, err)
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}

func kinds(toks []token.Token) []token.Kind {
	ks := make([]token.Kind, len(toks))
	for i, t := range toks {
		ks[i] = t.Kind
	}
	return ks
}

func TestIndentDedent(t *testing.T) {
	src := "circuit Foo :\n  module Foo :\n    skip\n"
	toks := allTokens(t, src)
	require.Equal(t, []token.Kind{
		token.CIRCUIT, token.IDENT, token.COLON, token.INDENT,
		token.MODULE, token.IDENT, token.COLON, token.INDENT,
		token.SKIP, token.DEDENT, token.DEDENT, token.EOF,
	}, kinds(toks))
}

func TestBlankAndCommentLinesIgnored(t *testing.T) {
	src := "circuit Foo :\n\n  ; a comment\n  module Foo :\n    skip\n"
	toks := allTokens(t, src)
	require.Equal(t, []token.Kind{
		token.CIRCUIT, token.IDENT, token.COLON, token.INDENT,
		token.MODULE, token.IDENT, token.COLON, token.INDENT,
		token.SKIP, token.DEDENT, token.DEDENT, token.EOF,
	}, kinds(toks))
}

func TestDedentMismatchIsLexError(t *testing.T) {
	src := "circuit Foo :\n  module Foo :\n    skip\n   skip\n"
	l := New(src)
	var err error
	for i := 0; i < 64; i++ {
		var tok token.Token
		tok, err = l.Next()
		if err != nil || tok.Kind == token.EOF {
			break
		}
	}
	require.Error(t, err)
	require.True(t, ferr.Is(err, ferr.Lex))
}

func TestIntegerLiteralBases(t *testing.T) {
	src := "10 0x1A 0o17 0b101 -3"
	toks := allTokens(t, src)
	require.Equal(t, []string{"10", "0x1A", "0o17", "0b101", "-3"}, []string{
		toks[0].Value, toks[1].Value, toks[2].Value, toks[3].Value, toks[4].Value,
	})
}

func TestIntegerLiteralUnderscoreSeparators(t *testing.T) {
	src := "0xFF_FF 0o17_01 0b1010_0101"
	toks := allTokens(t, src)
	require.Equal(t, []string{"0xFF_FF", "0o17_01", "0b1010_0101"}, []string{
		toks[0].Value, toks[1].Value, toks[2].Value,
	})
	require.Equal(t, token.INT, toks[0].Kind)
	require.Equal(t, token.EOF, toks[3].Kind)
}

func TestStringLiteralEscapedQuote(t *testing.T) {
	toks := allTokens(t, `"h""1a"`)
	require.Equal(t, token.STRING, toks[0].Kind)
	require.Equal(t, `h"1a`, toks[0].Value)
}

func TestInfoString(t *testing.T) {
	toks := allTokens(t, "wire w : UInt<1> @[Foo.scala 10:4]")
	var info *token.Token
	for i := range toks {
		if toks[i].Kind == token.INFO {
			info = &toks[i]
		}
	}
	require.NotNil(t, info)
	require.Equal(t, "Foo.scala 10:4", info.Value)
}

func TestPrimOpRequiresFollowingParen(t *testing.T) {
	toks := allTokens(t, "add add(")
	require.Equal(t, token.IDENT, toks[0].Kind)
	require.Equal(t, token.PRIMOP, toks[1].Kind)
}

func TestConnectAndPartialConnectOperators(t *testing.T) {
	toks := allTokens(t, "a <= b\nc <- d")
	require.Equal(t, token.CONNECT, toks[1].Kind)
	require.Equal(t, token.PCONNECT, toks[4].Kind)
}

func TestCommaIsWhitespace(t *testing.T) {
	toks := allTokens(t, "a, b")
	require.Equal(t, []token.Kind{token.IDENT, token.IDENT, token.EOF}, kinds(toks))
}

func TestHyphenatedKeywords(t *testing.T) {
	toks := allTokens(t, "read-latency write-latency read-under-write")
	require.Equal(t, []token.Kind{
		token.READLATENCY, token.WRITELATENCY, token.READUNDERWRITE, token.EOF,
	}, kinds(toks))
}
