// Package markup defines an analyzer reporting unbalanced tags in constant markup templates.
package markup

import (
	"errors"
	"go/ast"
	"go/constant"
	"strings"

	"github.com/TroutSoftware/tagbalance"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"
)

var Analyzer = &analysis.Analyzer{
	Name:     "markup",
	Doc:      `Check that markup passed to template functions has balanced tags`,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run_balanced,
}

var (
	funcs  = "github.com/TroutSoftware/rx.Get"
	syntax = "html"
)

func init() {
	Analyzer.Flags.StringVar(&funcs, "funcs", funcs, "comma-separated full names of functions taking markup as first argument")
	Analyzer.Flags.StringVar(&syntax, "syntax", syntax, "syntax of the markup: 'jsx' or 'html'")
}

func run_balanced(pass *analysis.Pass) (any, error) {
	syn, err := tagbalance.ParseSyntax(syntax)
	if err != nil {
		return nil, err
	}
	ck := tagbalance.Checker{Syntax: syn}

	watched := make(map[string]bool)
	for _, f := range strings.Split(funcs, ",") {
		if f = strings.TrimSpace(f); f != "" {
			watched[f] = true
		}
	}

	inspect := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	calls := []ast.Node{(*ast.CallExpr)(nil)}
	inspect.Preorder(calls, func(node ast.Node) {
		call := node.(*ast.CallExpr)
		fn := typeutil.StaticCallee(pass.TypesInfo, call)
		if fn == nil {
			return // dynamic call
		}
		if len(call.Args) == 0 || !watched[fn.FullName()] {
			return
		}

		arg := call.Args[0]
		tv, ok := pass.TypesInfo.Types[arg]
		if !ok || tv.Value == nil || tv.Value.Kind() != constant.String {
			return // only known at run time
		}

		if msg, bad := check(ck, constant.StringVal(tv.Value)); bad {
			pass.ReportRangef(arg, "%s", msg)
		}
	})
	return nil, nil
}

func check(ck tagbalance.Checker, tpl string) (msg string, bad bool) {
	err := ck.Check(tpl)
	if err == nil {
		return "", false
	}

	// single element templates, such as `<button>`, do not need to be closed
	var unclosed *tagbalance.UnclosedTagsError
	if errors.As(err, &unclosed) && len(unclosed.Tags) == 1 && openings(ck.Syntax, tpl) == 1 {
		return "", false
	}
	return err.Error(), true
}

func openings(syn tagbalance.Syntax, tpl string) int {
	tokens := tagbalance.Tokens(tagbalance.Sanitize(tpl))
	if syn == tagbalance.HTML {
		tokens = tagbalance.HTMLTokens(strings.NewReader(tpl), nil)
	}

	n := 0
	for tk := range tokens {
		if tk.Kind == tagbalance.Opening {
			n++
		}
	}
	return n
}
