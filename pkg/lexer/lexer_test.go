package lexer_test

import (
	"testing"

	"torshi/pkg/lexer"
)

func TestMatchToken(t *testing.T) {
	tests := []struct {
		input       string
		expected    lexer.TokenType
		lexeme      string
		description string
	}{
		{"42", lexer.NUM, "42", "integer"},
		{"0", lexer.NUM, "0", "zero"},
		{"007", lexer.NUM, "007", "leading zeros"},
		{"123abc", lexer.NUM, "123", "integer stops at letter"},

		{"x", lexer.ID, "x", "single letter identifier"},
		{"counter_2", lexer.ID, "counter_2", "identifier with underscore and digit"},
		{"functional", lexer.ID, "functional", "keyword prefix stays an identifier"},
		{"arrays", lexer.ID, "arrays", "keyword prefix stays an identifier"},

		{"function f", lexer.FUNCTION, "function", "function keyword"},
		{"array a", lexer.ARRAY, "array", "array keyword"},

		{"= 1", lexer.ASSIGN, "=", "assignment"},
		{"+", lexer.PLUS, "+", "plus"},
		{"-", lexer.MINUS, "-", "minus"},
		{"*", lexer.MULT, "*", "multiply"},
		{"/", lexer.DIV, "/", "divide"},
		{";", lexer.SEMICOLON, ";", "semicolon"},
		{",", lexer.COMMA, ",", "comma"},
		{"(", lexer.LPAREN, "(", "left paren"},
		{")", lexer.RPAREN, ")", "right paren"},
		{"{", lexer.LBRACE, "{", "left brace"},
		{"}", lexer.RBRACE, "}", "right brace"},
		{"[", lexer.LSBRACE, "[", "left bracket"},
		{"]", lexer.RSBRACE, "]", "right bracket"},
	}

	for _, test := range tests {
		tokenType, lexeme, matched := lexer.MatchToken(test.input)
		if !matched {
			t.Errorf("Failed to match %s (%s)", test.input, test.description)
		}
		if tokenType != test.expected {
			t.Errorf("Input %s (%s): expected %s, got %s", test.input, test.description, test.expected, tokenType)
		}
		if lexeme != test.lexeme {
			t.Errorf("Input %s (%s): expected lexeme %s, got %s", test.input, test.description, test.lexeme, lexeme)
		}
	}
}

func TestTokens(t *testing.T) {
	input := "array a[3];\n" +
		"a[0] = 2 + 3 * 4;\n" +
		"function f(x, y) { x * y }\n" +
		"z = f(a[0], 2)"
	mylexer := lexer.NewLexer(input)

	expectedTokens := []lexer.TokenType{
		lexer.ARRAY, lexer.ID, lexer.LSBRACE, lexer.NUM, lexer.RSBRACE, lexer.SEMICOLON,
		lexer.ID, lexer.LSBRACE, lexer.NUM, lexer.RSBRACE, lexer.ASSIGN,
		lexer.NUM, lexer.PLUS, lexer.NUM, lexer.MULT, lexer.NUM, lexer.SEMICOLON,
		lexer.FUNCTION, lexer.ID, lexer.LPAREN, lexer.ID, lexer.COMMA, lexer.ID, lexer.RPAREN,
		lexer.LBRACE, lexer.ID, lexer.MULT, lexer.ID, lexer.RBRACE,
		lexer.ID, lexer.ASSIGN, lexer.ID, lexer.LPAREN, lexer.ID, lexer.LSBRACE, lexer.NUM,
		lexer.RSBRACE, lexer.COMMA, lexer.NUM, lexer.RPAREN,
		lexer.EOF,
	}

	for i, expected := range expectedTokens {
		token := mylexer.NextToken()
		if token.Type != expected {
			t.Errorf("Token %d: expected %s, got %s", i, expected, token.Type)
		}
	}
}

func TestIllegalToken(t *testing.T) {
	mylexer := lexer.NewLexer("x = 1 ? 2")

	var illegal []lexer.Token
	for {
		token := mylexer.NextToken()
		if token.Type == lexer.EOF {
			break
		}
		if token.Type == lexer.ILLEGAL {
			illegal = append(illegal, token)
		}
	}

	if len(illegal) != 1 {
		t.Fatalf("Expected 1 illegal token, got %d", len(illegal))
	}
	if illegal[0].Lexeme != "?" {
		t.Errorf("Expected illegal lexeme %q, got %q", "?", illegal[0].Lexeme)
	}
}

func TestTokenize(t *testing.T) {
	tokens := lexer.Tokenize("x = 1")

	if len(tokens) != 4 {
		t.Fatalf("Expected 4 tokens, got %d", len(tokens))
	}
	if tokens[len(tokens)-1].Type != lexer.EOF {
		t.Errorf("Expected trailing EOF, got %s", tokens[len(tokens)-1].Type)
	}

	empty := lexer.Tokenize("   \t\n ")
	if len(empty) != 1 || empty[0].Type != lexer.EOF {
		t.Errorf("Whitespace-only input should tokenize to a single EOF, got %v", empty)
	}
}

func TestPositions(t *testing.T) {
	mylexer := lexer.NewLexer("x =\n  42")

	x := mylexer.NextToken()
	if x.Pos.Line != 1 || x.Pos.Column != 1 {
		t.Errorf("Expected x at 1:1, got %d:%d", x.Pos.Line, x.Pos.Column)
	}

	mylexer.NextToken() // =

	num := mylexer.NextToken()
	if num.Pos.Line != 2 || num.Pos.Column != 3 {
		t.Errorf("Expected 42 at 2:3, got %d:%d", num.Pos.Line, num.Pos.Column)
	}
}
