package utils

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func parseFuncs(t *testing.T, src string) map[string]*ast.FuncDecl {
	t.Helper()

	file, err := parser.ParseFile(token.NewFileSet(), "src.go", src, 0)
	require.NoError(t, err)
	funcs := map[string]*ast.FuncDecl{}
	for _, decl := range file.Decls {
		if fn, ok := decl.(*ast.FuncDecl); ok {
			funcs[fn.Name.Name] = fn
		}
	}

	return funcs
}

func TestFuncName(t *testing.T) {
	funcs := parseFuncs(t, `package p
func Plain() {}
func (l *List[T]) Insert(v T) {}
func (m Map[K, V]) Get(k K) {}
func (c cursor) Next() {}
`)
	for name, exp := range map[string]string{
		"Plain":  "Plain",
		"Insert": "(*List).Insert",
		"Get":    "Map.Get",
		"Next":   "cursor.Next",
	} {
		t.Run(name, func(t *testing.T) {
			act, err := FuncName(funcs[name])
			require.NoError(t, err)
			require.Equal(t, exp, act)
		})
	}
}

func TestFixSource(t *testing.T) {
	src := []byte(`package p

func (l *List[T]) Insert(v T) {
	trace.ListOnInsert(l.trace, trace.FunctionID(""), l.name)
}
`)
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "list.go", src, 0)
	require.NoError(t, err)
	fn := file.Decls[0].(*ast.FuncDecl)
	var lit *ast.BasicLit
	ast.Inspect(fn.Body, func(n ast.Node) bool {
		if l, ok := n.(*ast.BasicLit); ok {
			lit = l
		}

		return true
	})
	require.NotNil(t, lit)

	fixed, err := FixSource(fset, "example.com/m/p", src, []FunctionIDArg{{
		FuncDecl: fn,
		ArgPos:   lit.Pos(),
		ArgEnd:   lit.End(),
	}})
	require.NoError(t, err)
	require.Equal(t, `package p

func (l *List[T]) Insert(v T) {
	trace.ListOnInsert(l.trace, trace.FunctionID("example.com/m/p.(*List).Insert"), l.name)
}
`, string(fixed))
}

func TestModulePath(t *testing.T) {
	root := t.TempDir()
	_, err := ModulePath(root)
	require.Error(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(root, "go.mod"), []byte("module example.com/m\n\ngo 1.22\n"), 0o600))
	modulePath, err := ModulePath(root)
	require.NoError(t, err)
	require.Equal(t, "example.com/m", modulePath)

	require.NoError(t, os.WriteFile(filepath.Join(root, "go.mod"), []byte("go 1.22\n"), 0o600))
	_, err = ModulePath(root)
	require.Error(t, err)
}

func TestImportPath(t *testing.T) {
	root := filepath.Join("work", "m")
	for file, exp := range map[string]string{
		filepath.Join(root, "doc.go"):                    "example.com/m",
		filepath.Join(root, "collection", "list.go"):     "example.com/m/collection",
		filepath.Join(root, "internal", "stack", "a.go"): "example.com/m/internal/stack",
	} {
		act, err := ImportPath("example.com/m", root, file)
		require.NoError(t, err)
		require.Equal(t, exp, act)
	}
}
