package driver

import (
	"github.com/edwingeng/deque"
	"github.com/segmentio/fasthash/fnv1a"

	"github.com/snewcomer/tree-walk-1/pkg/ast"
	"github.com/snewcomer/tree-walk-1/pkg/interpreter"
	"github.com/snewcomer/tree-walk-1/pkg/parser"
	"github.com/snewcomer/tree-walk-1/pkg/scanner"
)

// Session runs source texts against one interpreter, reusing parsed programs
// when the same source is submitted again.
type Session struct {
	interp *interpreter.Interpreter
	cache  *parseCache
}

// NewSession wraps interp. cacheSize bounds the parse cache; zero disables it.
func NewSession(interp *interpreter.Interpreter, cacheSize int) *Session {
	return &Session{interp: interp, cache: newParseCache(cacheSize)}
}

// Interpreter returns the session's interpreter.
func (s *Session) Interpreter() *interpreter.Interpreter {
	return s.interp
}

// Parse scans and parses source, consulting the cache first. Only sources
// that parse cleanly are cached.
func (s *Session) Parse(source string) ([]ast.Statement, error) {
	if stmts, ok := s.cache.get(source); ok {
		return stmts, nil
	}
	tokens, err := scanner.Tokenize(source)
	if err != nil {
		return nil, err
	}
	stmts, err := parser.ParseAll(tokens)
	if err != nil {
		return nil, err
	}
	s.cache.put(source, stmts)
	return stmts, nil
}

// Run parses source and executes it statement by statement.
func (s *Session) Run(source string) error {
	if s.interp.Running() {
		return interpreter.ErrBusy
	}
	stmts, err := s.Parse(source)
	if err != nil {
		return err
	}
	return s.interp.ExecuteAll(stmts)
}

// CachedPrograms reports how many parsed sources are cached.
func (s *Session) CachedPrograms() int {
	return len(s.cache.entries)
}

type cacheEntry struct {
	source string
	stmts  []ast.Statement
}

// parseCache keys programs by the FNV-1a hash of their source and evicts the
// oldest insertion once full.
type parseCache struct {
	limit   int
	entries map[uint64]cacheEntry
	order   deque.Deque
}

func newParseCache(limit int) *parseCache {
	return &parseCache{
		limit:   limit,
		entries: make(map[uint64]cacheEntry),
		order:   deque.NewDeque(),
	}
}

func (c *parseCache) get(source string) ([]ast.Statement, bool) {
	entry, ok := c.entries[fnv1a.HashString64(source)]
	if !ok || entry.source != source {
		return nil, false
	}
	return entry.stmts, true
}

func (c *parseCache) put(source string, stmts []ast.Statement) {
	if c.limit <= 0 {
		return
	}
	key := fnv1a.HashString64(source)
	if _, exists := c.entries[key]; !exists {
		c.order.PushBack(key)
	}
	c.entries[key] = cacheEntry{source: source, stmts: stmts}
	for len(c.entries) > c.limit && !c.order.Empty() {
		oldest := c.order.PopFront().(uint64)
		delete(c.entries, oldest)
	}
}
