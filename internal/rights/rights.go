// Package rights decides whether a UI page may be served to a caller.
//
// A Table maps path patterns to the class of caller a page requires. The first
// matching entry wins; unmatched paths are public. The decision is either
// "proceed" or a redirect target.
package rights

import (
	"fmt"
	"strings"
)

// Class is the caller class a page requires.
type Class string

const (
	All      Class = "all"
	Unlogged Class = "unlogged"
	Logged   Class = "logged"
	Admin    Class = "admin"
)

const (
	HomePath  = "/"
	LoginPath = "/login"
)

// Caller is the resolved capability tier of the requester.
type Caller struct {
	Logged bool
	Admin  bool
}

// Decision is the outcome of Check. Redirect is empty when Allow is true.
type Decision struct {
	Allow    bool
	Redirect string
}

// Entry binds a path pattern to a required class.
type Entry struct {
	Pattern string
	Class   Class
}

type compiled struct {
	segments []string
	wildcard bool
	class    Class
}

// Table is an immutable, ordered list of compiled entries.
type Table struct {
	entries []compiled
}

// NewTable compiles entries. Patterns are slash-separated; ":name" matches one
// segment and a trailing "*" matches any remainder, including nothing.
func NewTable(entries []Entry) (*Table, error) {
	t := &Table{entries: make([]compiled, 0, len(entries))}
	for _, e := range entries {
		switch e.Class {
		case All, Unlogged, Logged, Admin:
		default:
			return nil, fmt.Errorf("rights: unknown class %q for %q", e.Class, e.Pattern)
		}
		if !strings.HasPrefix(e.Pattern, "/") {
			return nil, fmt.Errorf("rights: pattern %q must start with /", e.Pattern)
		}
		segs := split(e.Pattern)
		c := compiled{class: e.Class}
		for i, s := range segs {
			if s == "*" {
				if i != len(segs)-1 {
					return nil, fmt.Errorf("rights: wildcard must be last in %q", e.Pattern)
				}
				c.wildcard = true
				break
			}
			c.segments = append(c.segments, s)
		}
		t.entries = append(t.entries, c)
	}
	return t, nil
}

// DefaultEntries is the page table of the rulebook UI.
func DefaultEntries() []Entry {
	return []Entry{
		{Pattern: "/", Class: All},
		{Pattern: "/login", Class: Unlogged},
		{Pattern: "/signup", Class: Unlogged},
		{Pattern: "/reset/password/*", Class: Unlogged},
		{Pattern: "/verify/*", Class: All},
		{Pattern: "/dashboard", Class: Logged},
		{Pattern: "/campaigns", Class: Logged},
		{Pattern: "/campaign/:id", Class: Logged},
		{Pattern: "/characters", Class: Logged},
		{Pattern: "/character/:id", Class: Logged},
		{Pattern: "/profile", Class: Logged},
		{Pattern: "/admin", Class: Admin},
		{Pattern: "/admin/*", Class: Admin},
		{Pattern: "/rules/*", Class: All},
	}
}

// Match returns the class of the first entry matching path.
func (t *Table) Match(path string) (Class, bool) {
	segs := split(path)
	for _, e := range t.entries {
		if e.match(segs) {
			return e.class, true
		}
	}
	return "", false
}

// Check decides whether caller may load path.
func (t *Table) Check(path string, caller Caller) Decision {
	class, ok := t.Match(path)
	if !ok {
		return Decision{Allow: true}
	}
	return Decide(class, caller)
}

// Decide applies a required class to a caller.
func Decide(required Class, caller Caller) Decision {
	switch required {
	case Unlogged:
		if caller.Logged {
			return Decision{Redirect: HomePath}
		}
	case Logged:
		if !caller.Logged {
			return Decision{Redirect: LoginPath}
		}
	case Admin:
		if !caller.Logged || !caller.Admin {
			return Decision{Redirect: HomePath}
		}
	}
	return Decision{Allow: true}
}

func (c compiled) match(path []string) bool {
	if c.wildcard {
		if len(path) < len(c.segments) {
			return false
		}
	} else if len(path) != len(c.segments) {
		return false
	}
	for i, s := range c.segments {
		if strings.HasPrefix(s, ":") {
			if path[i] == "" {
				return false
			}
			continue
		}
		if s != path[i] {
			return false
		}
	}
	return true
}

func split(path string) []string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}
