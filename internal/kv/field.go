package kv

import (
	"fmt"
	"reflect"
	"strconv"
	"time"
)

type FieldType int

// Note that the order matters
const (
	InvalidType FieldType = iota
	IntType
	Int64Type
	StringType
	BoolType
	DurationType
	StringsType
	ErrorType
	AnyType
	StringerType
	endType
)

var fieldTypeNames = [...]string{
	InvalidType:  "invalid",
	IntType:      "int",
	Int64Type:    "int64",
	StringType:   "string",
	BoolType:     "bool",
	DurationType: "time.Duration",
	StringsType:  "[]string",
	ErrorType:    "error",
	AnyType:      "any",
	StringerType: "stringer",
}

func (t FieldType) String() string {
	if t < 0 || t >= endType {
		return fieldTypeNames[InvalidType]
	}

	return fieldTypeNames[t]
}

// KeyValue is a typed log field.
// Only one of the value holders is meaningful for a given ftype.
type KeyValue struct {
	ftype FieldType
	key   string

	vint int64
	vstr string
	vany interface{}
}

func (f KeyValue) Type() FieldType {
	return f.ftype
}

func (f KeyValue) Key() string {
	return f.key
}

func (f KeyValue) IntValue() int {
	f.checkType(IntType)

	return int(f.vint)
}

func (f KeyValue) Int64Value() int64 {
	f.checkType(Int64Type)

	return f.vint
}

func (f KeyValue) StringValue() string {
	f.checkType(StringType)

	return f.vstr
}

func (f KeyValue) BoolValue() bool {
	f.checkType(BoolType)

	return f.vint != 0
}

func (f KeyValue) DurationValue() time.Duration {
	f.checkType(DurationType)

	return time.Duration(f.vint)
}

func (f KeyValue) StringsValue() []string {
	f.checkType(StringsType)
	if f.vany == nil {
		return nil
	}
	v, _ := f.vany.([]string)

	return v
}

func (f KeyValue) ErrorValue() error {
	f.checkType(ErrorType)
	if f.vany == nil {
		return nil
	}
	v, _ := f.vany.(error)

	return v
}

func (f KeyValue) Stringer() fmt.Stringer {
	f.checkType(StringerType)
	if f.vany == nil {
		return nil
	}
	v, _ := f.vany.(fmt.Stringer)

	return v
}

// AnyValue returns the value as it was passed to the constructor.
func (f KeyValue) AnyValue() interface{} {
	switch f.ftype {
	case IntType:
		return f.IntValue()
	case Int64Type:
		return f.Int64Value()
	case StringType:
		return f.StringValue()
	case BoolType:
		return f.BoolValue()
	case DurationType:
		return f.DurationValue()
	case StringsType:
		return f.StringsValue()
	case ErrorType:
		return f.ErrorValue()
	case StringerType:
		return f.Stringer()
	case AnyType:
		return f.vany
	default:
		panic(fmt.Sprintf("unknown field type: %v", f.ftype))
	}
}

func (f KeyValue) checkType(want FieldType) {
	if f.ftype != want {
		panic(fmt.Sprintf("bad type. have: %s, want: %s", f.ftype, want))
	}
}

// String formats the value for text loggers.
func (f KeyValue) String() string {
	switch f.ftype {
	case IntType, Int64Type:
		return strconv.FormatInt(f.vint, 10)
	case StringType:
		return f.vstr
	case BoolType:
		return strconv.FormatBool(f.BoolValue())
	case DurationType:
		return f.DurationValue().String()
	case StringsType:
		return fmt.Sprintf("%v", f.StringsValue())
	case ErrorType:
		if f.vany == nil {
			return "<nil>"
		}

		return f.ErrorValue().Error()
	case StringerType:
		if s := f.Stringer(); s != nil {
			return s.String()
		}

		return "<nil>"
	case AnyType:
		if isNil(f.vany) {
			return "<nil>"
		}

		return fmt.Sprintf("%v", f.vany)
	default:
		panic(fmt.Sprintf("unknown field type: %v", f.ftype))
	}
}

func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

func Int(k string, v int) KeyValue {
	return KeyValue{
		ftype: IntType,
		key:   k,
		vint:  int64(v),
	}
}

func Int64(k string, v int64) KeyValue {
	return KeyValue{
		ftype: Int64Type,
		key:   k,
		vint:  v,
	}
}

func String(k, v string) KeyValue {
	return KeyValue{
		ftype: StringType,
		key:   k,
		vstr:  v,
	}
}

func Bool(key string, value bool) KeyValue {
	var vint int64
	if value {
		vint = 1
	}

	return KeyValue{
		ftype: BoolType,
		key:   key,
		vint:  vint,
	}
}

func Duration(key string, value time.Duration) KeyValue {
	return KeyValue{
		ftype: DurationType,
		key:   key,
		vint:  value.Nanoseconds(),
	}
}

func Strings(key string, value []string) KeyValue {
	return KeyValue{
		ftype: StringsType,
		key:   key,
		vany:  value,
	}
}

func NamedError(key string, value error) KeyValue {
	return KeyValue{
		ftype: ErrorType,
		key:   key,
		vany:  value,
	}
}

func Error(value error) KeyValue {
	return NamedError("error", value)
}

func Any(key string, value interface{}) KeyValue {
	return KeyValue{
		ftype: AnyType,
		key:   key,
		vany:  value,
	}
}

func Stringer(key string, value fmt.Stringer) KeyValue {
	return KeyValue{
		ftype: StringerType,
		key:   key,
		vany:  value,
	}
}

func Latency(start time.Time) KeyValue {
	return Duration("latency", time.Since(start))
}
