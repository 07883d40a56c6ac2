// Package pattern compiles and evaluates the regular expressions used to
// search member emails.
//
// Patterns use github.com/dlclark/regexp2, a backtracking engine with
// Perl/Python-style syntax (lookarounds, backreferences, lazy quantifiers).
// Matching has search semantics: a pattern matches when it is found anywhere
// in the input, it does not need to span the whole string.
package pattern

import (
	"errors"
	"fmt"
	"time"

	"github.com/dlclark/regexp2"

	"github.com/zjrosen/addressbook/internal/cachemanager"
	"github.com/zjrosen/addressbook/internal/log"
)

var (
	// ErrInvalidPattern is returned when an expression fails to compile.
	ErrInvalidPattern = errors.New("invalid pattern")
	// ErrMatchTimeout is returned when evaluation exceeds the match timeout.
	ErrMatchTimeout = errors.New("pattern match timed out")
)

// Pattern is a compiled expression.
type Pattern struct {
	expr string
	re   *regexp2.Regexp
}

// String returns the source expression.
func (p *Pattern) String() string {
	return p.expr
}

// Match reports whether the pattern occurs anywhere in s.
func (p *Pattern) Match(s string) (bool, error) {
	ok, err := p.re.MatchString(s)
	if err != nil {
		return false, fmt.Errorf("%w: %q: %w", ErrMatchTimeout, p.expr, err)
	}
	return ok, nil
}

// Matcher compiles expressions into Patterns.
type Matcher interface {
	Compile(expr string) (*Pattern, error)
}

// Option configures a Compiler.
type Option func(*Compiler)

// WithMatchTimeout bounds the time a single Match may take. Zero or a
// negative duration means no bound.
func WithMatchTimeout(d time.Duration) Option {
	return func(c *Compiler) {
		c.matchTimeout = d
	}
}

// WithCache memoises compiled patterns in cache for ttl. Compile errors are
// never cached.
func WithCache(cache cachemanager.CacheManager[string, *Pattern], ttl time.Duration) Option {
	return func(c *Compiler) {
		c.cache = cache
		c.ttl = ttl
	}
}

// Compiler is the default Matcher.
type Compiler struct {
	matchTimeout time.Duration
	cache        cachemanager.CacheManager[string, *Pattern]
	ttl          time.Duration
	loader       *cachemanager.ReadThroughCache[string, *Pattern, string]
}

var _ Matcher = (*Compiler)(nil)

// NewCompiler creates a compiler. Without WithCache every call compiles.
func NewCompiler(opts ...Option) *Compiler {
	c := &Compiler{}
	for _, opt := range opts {
		opt(c)
	}
	c.loader = cachemanager.NewReadThroughCache[string, *Pattern, string](c.cache, c.compile, c.cache == nil)
	return c
}

// Compile returns the compiled form of expr, from cache when available.
func (c *Compiler) Compile(expr string) (*Pattern, error) {
	return c.loader.GetWithRefresh(expr, expr, c.ttl)
}

func (c *Compiler) compile(expr string) (*Pattern, error) {
	re, err := regexp2.Compile(expr, regexp2.None)
	if err != nil {
		log.Debug(log.CatFilter, "pattern rejected", "pattern", expr, "error", err)
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidPattern, expr, err)
	}
	if c.matchTimeout > 0 {
		re.MatchTimeout = c.matchTimeout
	}
	return &Pattern{expr: expr, re: re}, nil
}
