// Command gstack rewrites the literal arguments of stack.FunctionID and
// trace.FunctionID calls with the full name of the enclosing function, so
// traces report call sites without resolving them at runtime.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/isle-engine/omni/internal/cmd/gstack/utils"
)

// packages whose FunctionID accepts a function id literal
var functionIDPackages = map[string]bool{
	"stack": true,
	"trace": true,
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: gstack [module root]\n")
	flag.PrintDefaults()
}

func functionIDArgs(file *ast.File) (args []utils.FunctionIDArg) {
	for _, decl := range file.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || fn.Body == nil {
			continue
		}
		ast.Inspect(fn.Body, func(n ast.Node) bool {
			call, ok := n.(*ast.CallExpr)
			if !ok || len(call.Args) != 1 {
				return true
			}
			sel, ok := call.Fun.(*ast.SelectorExpr)
			if !ok || sel.Sel.Name != "FunctionID" {
				return true
			}
			pkg, ok := sel.X.(*ast.Ident)
			if !ok || !functionIDPackages[pkg.Name] {
				return true
			}
			if lit, ok := call.Args[0].(*ast.BasicLit); ok && lit.Kind == token.STRING {
				args = append(args, utils.FunctionIDArg{
					FuncDecl: fn,
					ArgPos:   lit.Pos(),
					ArgEnd:   lit.End(),
				})
			}

			return true
		})
	}

	return args
}

func processFile(modulePath, root, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, src, 0)
	if err != nil {
		return err
	}
	args := functionIDArgs(file)
	if len(args) == 0 {
		return nil
	}
	importPath, err := utils.ImportPath(modulePath, root, path)
	if err != nil {
		return err
	}
	fixed, err := utils.FixSource(fset, importPath, src, args)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if bytes.Equal(src, fixed) {
		return nil
	}

	return os.WriteFile(path, fixed, info.Mode().Perm())
}

func skipDir(root, path, name string) bool {
	if path == root {
		return false
	}

	return strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") || name == "testdata"
}

func main() {
	flag.Usage = usage
	flag.Parse()
	args := flag.Args()

	if len(args) != 1 {
		flag.Usage()

		return
	}
	root := filepath.Clean(args[0])
	modulePath, err := utils.ModulePath(root)
	if err != nil {
		panic(err)
	}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if skipDir(root, path, d.Name()) {
				return filepath.SkipDir
			}

			return nil
		}
		if filepath.Ext(path) != ".go" || strings.HasSuffix(path, "_test.go") {
			return nil
		}

		return processFile(modulePath, root, path)
	})
	if err != nil {
		panic(err)
	}
}
