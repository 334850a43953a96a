package cprint

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"path/filepath"
	"runtime"
	"sync"
)

// callSite is where a debug print was called from.
type callSite struct {
	file  string
	line  int
	exprs []string // source text of the printed operands, when readable
}

// expr returns the source text of operand i, or its type when the source
// could not be read.
func (c callSite) expr(i int, v any) string {
	if i < len(c.exprs) {
		return c.exprs[i]
	}
	return fmt.Sprintf("%T", v)
}

// locate finds the caller skip frames above locate's caller. callee is the
// name of the function being called there; its operands from argOffset on
// are the printed values.
func locate(skip int, callee string, argOffset int) callSite {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return callSite{file: "???"}
	}
	return callSite{
		file:  filepath.Base(file),
		line:  line,
		exprs: sourceArgs(file, line, callee, argOffset),
	}
}

type parsedFile struct {
	fset *token.FileSet
	file *ast.File
}

var sources sync.Map // path -> *parsedFile, nil when unreadable

func parseSource(path string) *parsedFile {
	if v, ok := sources.Load(path); ok {
		return v.(*parsedFile)
	}
	var pf *parsedFile
	fset := token.NewFileSet()
	if f, err := parser.ParseFile(fset, path, nil, parser.SkipObjectResolution); err == nil {
		pf = &parsedFile{fset: fset, file: f}
	}
	v, _ := sources.LoadOrStore(path, pf)
	return v.(*parsedFile)
}

// sourceArgs returns the operand expressions of the innermost call to callee
// spanning line. It returns nil if there is no such call, if several calls tie
// for innermost (the line alone cannot tell them apart), or if the operands
// are spread with "...".
func sourceArgs(path string, line int, callee string, argOffset int) []string {
	pf := parseSource(path)
	if pf == nil {
		return nil
	}
	var best *ast.CallExpr
	bestSpan, ties := -1, 0
	ast.Inspect(pf.file, func(n ast.Node) bool {
		call, ok := n.(*ast.CallExpr)
		if !ok {
			return true
		}
		start := pf.fset.Position(call.Pos()).Line
		end := pf.fset.Position(call.End()).Line
		if line < start || line > end || calleeName(call.Fun) != callee {
			return true
		}
		switch span := end - start; {
		case best == nil || span < bestSpan:
			best, bestSpan, ties = call, span, 1
		case span == bestSpan:
			ties++
		}
		return true
	})
	if best == nil || ties > 1 || best.Ellipsis.IsValid() || len(best.Args) < argOffset {
		return nil
	}
	exprs := make([]string, 0, len(best.Args)-argOffset)
	for _, arg := range best.Args[argOffset:] {
		exprs = append(exprs, types.ExprString(arg))
	}
	return exprs
}

func calleeName(fun ast.Expr) string {
	switch f := fun.(type) {
	case *ast.Ident:
		return f.Name
	case *ast.SelectorExpr:
		return f.Sel.Name
	case *ast.IndexExpr:
		return calleeName(f.X)
	case *ast.IndexListExpr:
		return calleeName(f.X)
	case *ast.ParenExpr:
		return calleeName(f.X)
	}
	return ""
}
