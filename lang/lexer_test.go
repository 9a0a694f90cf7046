package lang

import "testing"

func TestLexToListBasicTokens(t *testing.T) {
	tokens := LexToList("test", `a.b eq 'UL' and c.d >= 3`)

	want := []TokenKind{
		TokenIdentifier, TokenDot, TokenIdentifier,
		TokenEqual, TokenStringLiteral,
		TokenAnd,
		TokenIdentifier, TokenDot, TokenIdentifier,
		TokenGreaterEqual, TokenIntegerLiteral,
		TokenEOF,
	}

	if len(tokens) != len(want) {
		t.Fatalf("got %v tokens, want %v: %v", len(tokens), len(want), tokens)
	}

	for i, k := range want {
		if tokens[i].Kind != k {
			t.Errorf("token %v: got kind %v, want %v (%v)", i, tokens[i].Kind, k, tokens[i])
		}
	}
}

func TestLexWordAndSymbolComparisonsCollapse(t *testing.T) {
	word := LexToList("test", "a gt b")
	symbol := LexToList("test", "a > b")

	if word[1].Kind != symbol[1].Kind {
		t.Errorf("word and symbol relational forms should lex to the same kind: %v vs %v",
			word[1].Kind, symbol[1].Kind)
	}
}

func TestLexUnclosedString(t *testing.T) {
	tokens := LexToList("test", `'unterminated`)

	if len(tokens) == 0 || tokens[0].Kind != TokenError {
		t.Fatalf("expected a lexer error token, got %v", tokens)
	}
}

func TestLexBadIdentifier(t *testing.T) {
	tokens := LexToList("test", "a$b")

	found := false
	for _, tok := range tokens {
		if tok.Kind == TokenError {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a lexer error for 'a$b', got %v", tokens)
	}
}
