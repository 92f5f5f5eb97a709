package lexer

import (
	"regexp"
)

type tokenRegex struct {
	Pattern *regexp.Regexp
	Raw     string
}

// Token regex patterns
var tokenRegexes = map[TokenType]tokenRegex{
	FUNCTION: {regexp.MustCompile(`^function\b`), `^function\b`},
	ARRAY:    {regexp.MustCompile(`^array\b`), `^array\b`},

	ASSIGN: {regexp.MustCompile(`^=`), `^=`},
	PLUS:   {regexp.MustCompile(`^\+`), `^\+`},
	MINUS:  {regexp.MustCompile(`^-`), `^-`},
	MULT:   {regexp.MustCompile(`^\*`), `^\*`},
	DIV:    {regexp.MustCompile(`^/`), `^/`},

	SEMICOLON: {regexp.MustCompile(`^;`), `^;`},
	COMMA:     {regexp.MustCompile(`^,`), `^,`},
	LPAREN:    {regexp.MustCompile(`^\(`), `^\(`},
	RPAREN:    {regexp.MustCompile(`^\)`), `^\)`},
	LBRACE:    {regexp.MustCompile(`^\{`), `^\{`},
	RBRACE:    {regexp.MustCompile(`^\}`), `^\}`},
	LSBRACE:   {regexp.MustCompile(`^\[`), `^\[`},
	RSBRACE:   {regexp.MustCompile(`^\]`), `^\]`},

	NUM: {regexp.MustCompile(`^\d+`), `^\d+`},
	ID:  {regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*`), `^[a-zA-Z][a-zA-Z0-9_]*`},
}

var whitespaceRegex = regexp.MustCompile(`^\s+`)

// Token precedence order for matching (longer patterns first)
var tokenPrecedenceOrder = []TokenType{
	FUNCTION, ARRAY,
	ASSIGN, PLUS, MINUS, MULT, DIV,
	SEMICOLON, COMMA, LPAREN, RPAREN, LBRACE, RBRACE, LSBRACE, RSBRACE,
	NUM, ID,
}

// Get the regex pattern for a token type
func (t TokenType) Regex() *regexp.Regexp {
	if regex, ok := tokenRegexes[t]; ok {
		return regex.Pattern
	}

	return nil
}

// Get the raw regex string for a token type
func (t TokenType) RawRegex() string {
	if regex, ok := tokenRegexes[t]; ok {
		return regex.Raw
	}

	return ""
}

// Match the longest token at the start of the string
func MatchToken(s string) (TokenType, string, bool) {
	if s == "" {
		return EOF, "", false
	} else if match := whitespaceRegex.FindString(s); match != "" {
		return EOF, match, true
	}

	for _, tokenType := range tokenPrecedenceOrder {
		if regex, ok := tokenRegexes[tokenType]; ok {
			if match := regex.Pattern.FindString(s); match != "" {
				return tokenType, match, true
			}
		}
	}

	return ILLEGAL, string(s[0]), false
}
