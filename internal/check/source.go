package check

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"strings"
	"sync"
)

type parsedFile struct {
	fset *token.FileSet
	file *ast.File
	src  []byte
}

var sources = struct {
	mu    sync.Mutex
	files map[string]*parsedFile
}{files: make(map[string]*parsedFile)}

// loadSource parses path once per process. A file that cannot be read or
// parsed is remembered as nil.
func loadSource(path string) *parsedFile {
	sources.mu.Lock()
	defer sources.mu.Unlock()

	if pf, ok := sources.files[path]; ok {
		return pf
	}
	var pf *parsedFile
	if src, err := os.ReadFile(path); err == nil {
		fset := token.NewFileSet()
		if f, err := parser.ParseFile(fset, path, src, 0); err == nil {
			pf = &parsedFile{fset: fset, file: f, src: src}
		}
	}
	sources.files[path] = pf
	return pf
}

// operandTexts returns the source text of n call arguments starting at
// first, for the call to name spanning line in file. It returns nil when
// the call cannot be located, or when several such calls span the line
// since the frame carries no column to tell them apart.
func operandTexts(file string, line int, name string, first, n int) []string {
	pf := loadSource(file)
	if pf == nil {
		return nil
	}

	var matches []*ast.CallExpr
	ast.Inspect(pf.file, func(node ast.Node) bool {
		call, ok := node.(*ast.CallExpr)
		if !ok || calleeName(call.Fun) != name || len(call.Args) < first+n {
			return true
		}
		start, end := pf.fset.Position(call.Pos()).Line, pf.fset.Position(call.End()).Line
		if line >= start && line <= end {
			matches = append(matches, call)
		}
		return true
	})
	if len(matches) != 1 {
		return nil
	}
	call := matches[0]

	texts := make([]string, n)
	for i := 0; i < n; i++ {
		arg := call.Args[first+i]
		from := pf.fset.Position(arg.Pos()).Offset
		to := pf.fset.Position(arg.End()).Offset
		texts[i] = strings.Join(strings.Fields(string(pf.src[from:to])), " ")
	}
	return texts
}

// calleeName strips package qualifiers and explicit instantiation from a
// call's function expression.
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
	}
	return ""
}
