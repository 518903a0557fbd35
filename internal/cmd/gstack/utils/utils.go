package utils

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"os"
	"path"
	"path/filepath"
	"strconv"

	"golang.org/x/mod/modfile"
)

var errUnknownReceiver = errors.New("unknown receiver expression")

type FunctionIDArg struct {
	FuncDecl *ast.FuncDecl
	ArgPos   token.Pos
	ArgEnd   token.Pos
}

// ModulePath reads the module path from root/go.mod.
func ModulePath(root string) (string, error) {
	data, err := os.ReadFile(filepath.Join(root, "go.mod"))
	if err != nil {
		return "", err
	}
	modulePath := modfile.ModulePath(data)
	if modulePath == "" {
		return "", fmt.Errorf("no module directive in %s", filepath.Join(root, "go.mod"))
	}

	return modulePath, nil
}

// ImportPath returns the import path of the package holding file.
func ImportPath(modulePath, root, file string) (string, error) {
	rel, err := filepath.Rel(root, filepath.Dir(file))
	if err != nil {
		return "", err
	}
	if rel == "." {
		return modulePath, nil
	}

	return path.Join(modulePath, filepath.ToSlash(rel)), nil
}

// FixSource replaces every argument in args with the quoted id of the function
// declaring it. args must be ordered by position.
func FixSource(fset *token.FileSet, importPath string, src []byte, args []FunctionIDArg) ([]byte, error) {
	var (
		previousArgEnd int
		fixedSource    = make([]byte, 0, len(src))
	)
	for _, arg := range args {
		funcName, err := FuncName(arg.FuncDecl)
		if err != nil {
			return nil, fmt.Errorf("error during getting function name: %w", err)
		}
		argPosOffset := fset.Position(arg.ArgPos).Offset
		argEndOffset := fset.Position(arg.ArgEnd).Offset

		fixedSource = append(fixedSource, src[previousArgEnd:argPosOffset]...)
		fixedSource = append(fixedSource, strconv.Quote(importPath+"."+funcName)...)
		previousArgEnd = argEndOffset
	}

	return append(fixedSource, src[previousArgEnd:]...), nil
}

// FuncName formats decl the way the runtime names it without type parameters:
// "Func" or "(*Type).Method".
func FuncName(decl *ast.FuncDecl) (string, error) {
	if decl.Recv == nil || len(decl.Recv.List) == 0 {
		return decl.Name.Name, nil
	}
	recv, err := receiverName(decl.Recv.List[0].Type)
	if err != nil {
		return "", err
	}

	return recv + "." + decl.Name.Name, nil
}

func receiverName(expr ast.Expr) (string, error) {
	switch expr := expr.(type) {
	case *ast.Ident:
		return expr.Name, nil
	case *ast.StarExpr:
		name, err := receiverName(expr.X)
		if err != nil {
			return "", err
		}

		return "(*" + name + ")", nil
	case *ast.IndexExpr:
		return receiverName(expr.X)
	case *ast.IndexListExpr:
		return receiverName(expr.X)
	case *ast.ParenExpr:
		return receiverName(expr.X)
	default:
		return "", fmt.Errorf("%w: %T", errUnknownReceiver, expr)
	}
}
