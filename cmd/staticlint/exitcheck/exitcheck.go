// Package exitcheck flags entry points that terminate the process
// themselves. A main.main that calls os.Exit skips deferred cleanup
// (database close, logger sync) and cannot be driven from a test, so
// the analyzer asks for the call to live behind the entry point instead.
package exitcheck

import (
	"go/ast"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/analysis"
)

// Analyzer reports os.Exit calls in main.main.
var Analyzer = &analysis.Analyzer{
	Name: "exitcheck",
	Doc:  "forbids calling os.Exit from main.main",
	Run:  run,
}

func run(pass *analysis.Pass) (interface{}, error) {
	if pass.Pkg.Name() != "main" {
		return nil, nil
	}

	for _, file := range pass.Files {
		// Generated files in the build cache are not ours to report on.
		if inBuildCache(pass.Fset.File(file.Pos()).Name()) {
			continue
		}

		for _, decl := range file.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if !ok || fn.Name.Name != "main" || fn.Recv != nil {
				continue
			}

			ast.Inspect(fn.Body, func(n ast.Node) bool {
				call, ok := n.(*ast.CallExpr)
				if !ok {
					return true
				}

				sel, ok := call.Fun.(*ast.SelectorExpr)
				if !ok || sel.Sel.Name != "Exit" {
					return true
				}

				if ident, ok := sel.X.(*ast.Ident); ok && ident.Name == "os" {
					pass.Reportf(call.Pos(), "main.main must not call os.Exit directly")
				}

				return true
			})
		}
	}

	return nil, nil
}

func inBuildCache(path string) bool {
	return strings.Contains(filepath.ToSlash(path), "/go-build/")
}
