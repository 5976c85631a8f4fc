// Package interpreter executes programs by walking the AST produced by
// pkg/parser against a chain of lexical environments. One Interpreter keeps
// its global frame across Run and Execute calls, which is what the REPL relies
// on between lines.
package interpreter
