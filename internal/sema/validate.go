package sema

import (
	"fmt"
	"strings"

	"ucc/internal/ast"
	"ucc/internal/types"
)

// validate sweeps the finished tree and reports any node whose computed
// attribute still holds a sentinel. A hit means a pass is missing or buggy;
// the message carries the ancestor trace from the root as a debugging aid.
func (c *checker) validate(root ast.Node) {
	var trace []ast.Node
	var visit func(ast.Node)
	visit = func(n ast.Node) {
		trace = append(trace, n)
		if ht, ok := n.(ast.HasType); ok {
			if t := ht.Type(); t == nil || t == types.Uncomputed {
				c.reportSentinel(n, trace, types.Uncomputed.Name())
			}
		}
		if hf, ok := n.(ast.HasFunc); ok {
			if f := hf.Fn(); f == nil || f == types.UncomputedFn {
				c.reportSentinel(n, trace, types.UncomputedFn.Name())
			}
		}
		ast.EachChild(n, visit)
		trace = trace[:len(trace)-1]
	}
	visit(root)
}

func (c *checker) reportSentinel(n ast.Node, trace []ast.Node, what string) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s in %s; trace:", what, nodeName(n))
	for _, anc := range trace {
		fmt.Fprintf(&b, "\n  %s at line %s", nodeName(anc), anc.Pos())
	}
	c.rep.Report(c.phase, n.Pos(), b.String())
}

func nodeName(n ast.Node) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", n), "*ast.")
}
