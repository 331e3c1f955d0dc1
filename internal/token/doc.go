// Package token defines the token and trivia vocabulary produced by the
// lexer and consumed by the parser.
package token
