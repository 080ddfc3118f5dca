package lws

import (
	"fmt"
	"reflect"
	"regexp"
)

// Rule is a predicate over a value: a regex, a predicate function, a
// literal, or accept-all. It is a closed variant: every implementation
// lives in this file.
type Rule interface {
	isRule()
}

// RegexRule matches text values by full regex match.
type RegexRule struct {
	Pattern string
	re      *regexp.Regexp
}

// PredicateRule delegates matching to a caller-supplied function.
type PredicateRule struct {
	Fn func(Value) bool
}

// LiteralNum matches a num value by equality.
type LiteralNum float64

// LiteralBool matches a bool value by strict identity.
type LiteralBool bool

// LiteralList matches a list value by deep equality.
type LiteralList Array

// NoRule accepts any value of the expected kind.
type NoRule struct{}

func (RegexRule) isRule()     {}
func (PredicateRule) isRule() {}
func (LiteralNum) isRule()    {}
func (LiteralBool) isRule()   {}
func (LiteralList) isRule()   {}
func (NoRule) isRule()        {}

// Regex compiles pattern into a text-matching Rule.
func Regex(pattern string) (Rule, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRulePattern, err)
	}
	return RegexRule{Pattern: pattern, re: re}, nil
}

// MustRegex is Regex, panicking on an invalid pattern. Used by the
// constructor DSL, where patterns are Go source literals rather than
// untrusted loader input.
func MustRegex(pattern string) Rule {
	r, err := Regex(pattern)
	if err != nil {
		panic(err)
	}
	return r
}

// Predicate wraps fn as a Rule.
func Predicate(fn func(Value) bool) Rule {
	return PredicateRule{Fn: fn}
}

// MatchText reports whether rule fully matches val. An empty value never
// matches, even against a rule that would otherwise trivially accept it
// (e.g. the default ".*" pattern). This is a preserved source behavior,
// not an oversight.
func MatchText(val string, rule Rule) bool {
	if val == "" {
		return false
	}
	switch r := rule.(type) {
	case PredicateRule:
		return r.Fn(val)
	case RegexRule:
		return r.re.FindString(val) == val
	default:
		return false
	}
}

// MatchNum reports whether rule accepts val. A predicate rule decides
// outright; a literal rule requires equality; the absence of a rule
// accepts everything.
func MatchNum(val float64, rule Rule) bool {
	switch r := rule.(type) {
	case PredicateRule:
		return r.Fn(val)
	case LiteralNum:
		return val == float64(r)
	default:
		return true
	}
}

// MatchList reports whether rule accepts val, by predicate, deep
// equality against a literal, or unconditional acceptance.
func MatchList(val Array, rule Rule) bool {
	switch r := rule.(type) {
	case PredicateRule:
		return r.Fn(val)
	case LiteralList:
		return reflect.DeepEqual(Array(r), val)
	default:
		return true
	}
}

// MatchBool reports whether rule accepts val. Without a rule every bool
// is accepted; with one, val must strictly equal the literal.
func MatchBool(val bool, rule Rule) bool {
	if lit, ok := rule.(LiteralBool); ok {
		return val == bool(lit)
	}
	return true
}

// MatchNull always accepts: null has no further structure to constrain.
func MatchNull(_ Rule) bool {
	return true
}
