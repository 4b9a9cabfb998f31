// cause.go — walking error chains without looping forever.
//
// Unwrap chains are normally finite, but an Unwrap method may point back at an
// earlier error. Every walk in this package goes through a causeGuard, which
// remembers the errors it has visited and never descends past maxDepth.
//
// Pointer errors are remembered by address. Any other error is remembered by
// value, which needs the value to hash: a struct type can be comparable and
// still carry a slice-backed error in an interface field. Such errors are not
// remembered, and only the depth cap ends a walk through them.
package xgxreport

import "reflect"

// causeGuard tracks visited errors and depth during one walk.
type causeGuard struct {
	maxDepth int
	byAddr   map[uintptr]struct{}
	byValue  map[error]struct{}
}

func newCauseGuard(maxDepth int) *causeGuard {
	if maxDepth <= 0 {
		maxDepth = defaultMaxCauseDepth
	}
	return &causeGuard{
		maxDepth: maxDepth,
		byAddr:   make(map[uintptr]struct{}, 8),
		byValue:  make(map[error]struct{}, 8),
	}
}

// mark records err as visited. It returns false for nil or for an error the
// walk has already been through.
func (g *causeGuard) mark(err error) bool {
	if err == nil {
		return false
	}
	v := reflect.ValueOf(err)
	if v.Kind() == reflect.Pointer {
		addr := v.Pointer()
		if _, ok := g.byAddr[addr]; ok {
			return false
		}
		g.byAddr[addr] = struct{}{}
		return true
	}
	if !v.Type().Comparable() {
		return true
	}
	return g.markValue(err)
}

// markValue uses err itself as the key. Hashing panics when the value holds
// something uncomparable; err then counts as unvisited.
func (g *causeGuard) markValue(err error) (fresh bool) {
	defer func() {
		if recover() != nil {
			fresh = true
		}
	}()
	if _, ok := g.byValue[err]; ok {
		return false
	}
	g.byValue[err] = struct{}{}
	return true
}

// find walks err's tree depth-first, in the order errors.As uses, and returns
// the first error match accepts. err must already be marked.
func (g *causeGuard) find(err error, depth int, match func(error) bool) error {
	if match(err) {
		return err
	}
	if depth >= g.maxDepth {
		return nil
	}
	kids, _ := children(err)
	for _, k := range kids {
		if !g.mark(k) {
			continue
		}
		if found := g.find(k, depth+1, match); found != nil {
			return found
		}
	}
	return nil
}

type singleUnwrapper interface{ Unwrap() error }
type multiUnwrapper interface{ Unwrap() []error }

// children returns the direct causes of err. For multi-errors it returns all
// non-nil children and multi=true.
func children(err error) (kids []error, multi bool) {
	switch u := err.(type) {
	case multiUnwrapper:
		for _, k := range u.Unwrap() {
			if k != nil {
				kids = append(kids, k)
			}
		}
		return kids, true
	case singleUnwrapper:
		if c := u.Unwrap(); c != nil {
			return []error{c}, false
		}
	}
	return nil, false
}
