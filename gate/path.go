package gate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/xDarkicex/gatesym/core"
)

// pathState is the per-Network ledger of direct block(i.j) shortcuts.
// Per-gate cookie tokens themselves live in the Network (AddCookie/
// HasCookie/Cookies) since core.gateRecord already carries a cookie set;
// shortcuts have no core analogue, so they're tracked here instead.
// The trackers map is not guarded by a lock; construction is assumed to
// happen on a single goroutine.
type pathState struct {
	shortcuts map[int]map[string]int
}

var trackers = map[*core.Network]*pathState{}

func tracker(net *core.Network) *pathState {
	t, ok := trackers[net]
	if !ok {
		t = &pathState{shortcuts: make(map[int]map[string]int)}
		trackers[net] = t
	}
	return t
}

func (t *pathState) addShortcut(index int, key string, target int) {
	m, ok := t.shortcuts[index]
	if !ok {
		m = make(map[string]int)
		t.shortcuts[index] = m
	}
	m[key] = target
}

// mergeCookies copies every cookie and shortcut from src onto dst, used
// when a Placeholder is replaced by its real gate.
func mergeCookies(net *core.Network, src, dst int) {
	for _, token := range net.Cookies(src) {
		net.AddCookie(dst, token)
	}
	t := tracker(net)
	for key, target := range t.shortcuts[src] {
		t.addShortcut(dst, key, target)
	}
	delete(t.shortcuts, src)
}

// Block wraps a gate-constructing function so that the calls it makes are
// attributed to a named construction path. identityArg selects which
// argument anchors the path — almost always 0, the gate Find/List will
// later be called on. name(identityArg) is tagged onto args[identityArg];
// each of fn's results is tagged with its return index ("0)", "1)", ...),
// and a block(i.j) shortcut is recorded on args[identityArg] pointing
// straight at that result, letting callers skip the intermediate path.
func Block(name string, identityArg int, args []Gate, fn func() []Gate) []Gate {
	if identityArg < 0 || identityArg >= len(args) {
		panic("gate.Block: identityArg out of range")
	}
	id := args[identityArg]
	net := id.net
	t := tracker(net)

	openTok := fmt.Sprintf("%s(%d", name, identityArg)
	net.AddCookie(id.index, openTok)

	results := fn()

	for j, r := range results {
		closeTok := fmt.Sprintf("%d)", j)
		net.AddCookie(r.index, closeTok)
		t.addShortcut(id.index, openTok+"."+closeTok, r.index)
	}
	return results
}

func isOpenToken(tok string) bool  { return strings.Contains(tok, "(") }
func isCloseToken(tok string) bool { return strings.HasSuffix(tok, ")") }

// scopeMatch pairs a gate reached while closing a scope with whatever
// tokens remain to be matched by the enclosing scope (nil at top level,
// or when the prefix runs out mid-scope).
type scopeMatch struct {
	mid  int
	rest []string
}

// matchScope consumes tokens starting at cur, stopping either when tokens
// runs out (a partial prefix, ending inside or at the edge of a scope) or
// when it matches the close token ending cur's current scope. Every
// nested open token is fully resolved — inner content plus its own close
// — by a self-contained recursive call before matchScope continues with
// whatever token follows it, so nesting falls out of ordinary recursion
// without tracking an explicit depth counter.
func matchScope(net *core.Network, t *pathState, tokens []string, cur int) []scopeMatch {
	if len(tokens) == 0 {
		return []scopeMatch{{mid: cur, rest: nil}}
	}
	head := tokens[0]
	rest := tokens[1:]

	switch {
	case isCloseToken(head):
		if !net.HasCookie(cur, head) {
			return nil
		}
		return []scopeMatch{{mid: cur, rest: rest}}

	case isOpenToken(head):
		if !net.HasCookie(cur, head) {
			return nil
		}
		if len(rest) > 0 && isCloseToken(rest[0]) {
			if target, ok := t.shortcuts[cur][head+"."+rest[0]]; ok {
				return []scopeMatch{{mid: target, rest: rest[1:]}}
			}
		}
		var out []scopeMatch
		for _, inner := range matchScope(net, t, rest, cur) {
			out = append(out, matchScope(net, t, inner.rest, inner.mid)...)
		}
		return out

	default:
		var out []scopeMatch
		if net.HasCookie(cur, head) {
			out = append(out, matchScope(net, t, rest, cur)...)
		}
		for _, nb := range net.Outputs(cur) {
			if net.HasCookie(nb, head) {
				out = append(out, matchScope(net, t, rest, nb)...)
			}
		}
		return out
	}
}

// matchPath resolves tokens fully (no leftover), returning every gate
// index the whole sequence can land on.
func matchPath(net *core.Network, t *pathState, tokens []string, cur int) []int {
	var out []int
	for _, m := range matchScope(net, t, tokens, cur) {
		if len(m.rest) == 0 {
			out = append(out, m.mid)
		}
	}
	return out
}

func splitPath(path string) []string {
	if path == "" {
		return nil
	}
	return strings.Split(path, ".")
}

func dedupInts(in []int) []int {
	seen := make(map[int]struct{}, len(in))
	out := in[:0]
	for _, v := range in {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// Find resolves path, starting from start, to the single gate whose
// construction path it names. It fails unless exactly one gate matches.
func Find(start Gate, path string) (Gate, error) {
	t := tracker(start.net)
	matches := dedupInts(matchPath(start.net, t, splitPath(path), start.index))
	switch len(matches) {
	case 0:
		return Gate{}, fmt.Errorf("gate: no match for path %q", path)
	case 1:
		return Gate{net: start.net, index: matches[0]}, nil
	default:
		return Gate{}, fmt.Errorf("gate: ambiguous path %q (%d matches)", path, len(matches))
	}
}

// List returns the sorted, deduplicated set of one-segment extensions of
// prefix that lead to at least one gate reachable from start. Each
// candidate is validated by re-running the same matcher one token deeper,
// so List never reports an extension Find itself would reject.
func List(start Gate, prefix string) []string {
	net := start.net
	t := tracker(net)
	prefixTokens := splitPath(prefix)

	positions := dedupInts(matchPath(net, t, prefixTokens, start.index))
	if len(positions) == 0 {
		return nil
	}

	var lastTok string
	if len(prefixTokens) > 0 {
		lastTok = prefixTokens[len(prefixTokens)-1]
	}

	candidates := map[string]struct{}{}
	for _, pos := range positions {
		for _, tok := range net.Cookies(pos) {
			candidates[tok] = struct{}{}
		}
		for _, nb := range net.Outputs(pos) {
			for _, tok := range net.Cookies(nb) {
				candidates[tok] = struct{}{}
			}
		}
		for key := range t.shortcuts[pos] {
			if i := strings.LastIndex(key, "."); i >= 0 {
				candidates[key[i+1:]] = struct{}{}
			}
		}
	}

	extended := make([]string, len(prefixTokens)+1)
	copy(extended, prefixTokens)

	seen := map[string]struct{}{}
	for cand := range candidates {
		if cand == lastTok {
			continue
		}
		extended[len(prefixTokens)] = cand
		if len(matchPath(net, t, extended, start.index)) > 0 {
			seen[cand] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for tok := range seen {
		out = append(out, tok)
	}
	sort.Strings(out)
	return out
}
