package stack

import (
	"runtime"
	"strconv"
	"strings"
)

type recordOptions struct {
	packagePath  bool
	packageName  bool
	structName   bool
	functionName bool
	fileName     bool
	line         bool
	lambdas      bool
}

type recordOption func(opts *recordOptions)

func PackagePath(b bool) recordOption {
	return func(opts *recordOptions) {
		opts.packagePath = b
	}
}

func PackageName(b bool) recordOption {
	return func(opts *recordOptions) {
		opts.packageName = b
	}
}

func StructName(b bool) recordOption {
	return func(opts *recordOptions) {
		opts.structName = b
	}
}

func FunctionName(b bool) recordOption {
	return func(opts *recordOptions) {
		opts.functionName = b
	}
}

func FileName(b bool) recordOption {
	return func(opts *recordOptions) {
		opts.fileName = b
	}
}

func Line(b bool) recordOption {
	return func(opts *recordOptions) {
		opts.line = b
	}
}

func Lambda(b bool) recordOption {
	return func(opts *recordOptions) {
		opts.lambdas = b
	}
}

var _ Caller = call{}

type call struct {
	function uintptr
	file     string
	line     int
}

// Call captures the caller at depth frames above Call itself.
func Call(depth int) (c call) {
	c.function, c.file, c.line, _ = runtime.Caller(depth + 1)

	return c
}

func (c call) FunctionID() string {
	return c.Record(Lambda(false), FileName(false))
}

func (c call) Record(opts ...recordOption) string {
	options := recordOptions{
		packagePath:  true,
		packageName:  true,
		structName:   true,
		functionName: true,
		fileName:     true,
		line:         true,
		lambdas:      true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}

	var name string
	if fn := runtime.FuncForPC(c.function); fn != nil {
		name = strings.ReplaceAll(fn.Name(), "[...]", "")
	}

	return options.format(splitName(name), c.file[strings.LastIndexByte(c.file, '/')+1:], c.line)
}

type funcName struct {
	pkgPath    string
	pkgName    string
	structName string
	funcName   string
	lambdas    []string
}

// splitName parses runtime names like "a/b/pkg.(*T).Method.func1".
func splitName(name string) (n funcName) {
	if i := strings.LastIndexByte(name, '/'); i > -1 {
		n.pkgPath, name = name[:i], name[i+1:]
	}
	parts := strings.Split(name, ".")
	for len(parts) > 1 && isLambda(parts[len(parts)-1]) {
		n.lambdas = append([]string{parts[len(parts)-1]}, n.lambdas...)
		parts = parts[:len(parts)-1]
	}
	switch len(parts) {
	case 0:
	case 1:
		n.pkgName = parts[0]
	case 2:
		n.pkgName, n.funcName = parts[0], parts[1]
	default:
		n.pkgName, n.structName, n.funcName = parts[0], parts[1], parts[len(parts)-1]
	}

	return n
}

// isLambda matches closure suffixes: "func1" and the nested "1" of "func1.1".
func isLambda(s string) bool {
	if strings.HasPrefix(s, "func") {
		return true
	}
	_, err := strconv.Atoi(s)

	return err == nil
}

func (o recordOptions) format(n funcName, file string, line int) string {
	var b strings.Builder
	sep := func(c byte) {
		if b.Len() > 0 {
			b.WriteByte(c)
		}
	}
	if o.packagePath {
		b.WriteString(n.pkgPath)
	}
	if o.packageName {
		sep('/')
		b.WriteString(n.pkgName)
	}
	if o.structName && n.structName != "" {
		sep('.')
		b.WriteString(n.structName)
	}
	if o.functionName {
		sep('.')
		b.WriteString(n.funcName)
		if o.lambdas {
			for _, l := range n.lambdas {
				b.WriteByte('.')
				b.WriteString(l)
			}
		}
	}
	if o.fileName {
		closeBrace := b.Len() > 0
		if closeBrace {
			b.WriteByte('(')
		}
		b.WriteString(file)
		if o.line {
			b.WriteByte(':')
			b.WriteString(strconv.Itoa(line))
		}
		if closeBrace {
			b.WriteByte(')')
		}
	}

	return b.String()
}

// Record formats the call site depth frames above the caller of Record.
func Record(depth int, opts ...recordOption) string {
	return Call(depth + 1).Record(opts...)
}
