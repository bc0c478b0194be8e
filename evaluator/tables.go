package evaluator

import (
	"math"

	"github.com/emirpasic/gods/maps/treemap"
)

// UnaryFunction is a real function of one argument.
type UnaryFunction func(float64) float64

// BinaryFunction is a real function of two arguments.
type BinaryFunction func(float64, float64) float64

// Tables are set up once and are read-only afterwards. Tree maps keep them
// ordered by name for listing.
var (
	constants       *treemap.Map // name -> float64
	unaryFunctions  *treemap.Map // name -> UnaryFunction
	binaryFunctions *treemap.Map // name -> BinaryFunction
)

func init() {
	constants = treemap.NewWithStringComparator()
	constants.Put("e", math.E)
	constants.Put("pi", math.Pi)
	//
	unaryFunctions = treemap.NewWithStringComparator()
	for name, f := range map[string]UnaryFunction{
		"sin":   math.Sin,
		"cos":   math.Cos,
		"tan":   math.Tan,
		"log":   math.Log,
		"exp":   math.Exp,
		"sqrt":  math.Sqrt,
		"asin":  math.Asin,
		"acos":  math.Acos,
		"atan":  math.Atan,
		"sinh":  math.Sinh,
		"cosh":  math.Cosh,
		"tanh":  math.Tanh,
		"asinh": math.Asinh,
		"acosh": math.Acosh,
		"atanh": math.Atanh,
	} {
		unaryFunctions.Put(name, f)
	}
	//
	binaryFunctions = treemap.NewWithStringComparator()
	binaryFunctions.Put("pow", BinaryFunction(math.Pow))
}

// Constant returns the value of a named constant.
func Constant(name string) (float64, bool) {
	if v, ok := constants.Get(name); ok {
		return v.(float64), true
	}
	return 0, false
}

// Unary returns the unary function of a given name.
func Unary(name string) (UnaryFunction, bool) {
	if f, ok := unaryFunctions.Get(name); ok {
		return f.(UnaryFunction), true
	}
	return nil, false
}

// Binary returns the binary function of a given name.
func Binary(name string) (BinaryFunction, bool) {
	if f, ok := binaryFunctions.Get(name); ok {
		return f.(BinaryFunction), true
	}
	return nil, false
}

// NamedValue is a constant together with its name.
type NamedValue struct {
	Name  string
	Value float64
}

// Constants lists the named constants, sorted by name.
func Constants() []NamedValue {
	list := make([]NamedValue, 0, constants.Size())
	it := constants.Iterator()
	for it.Next() {
		list = append(list, NamedValue{Name: it.Key().(string), Value: it.Value().(float64)})
	}
	return list
}

// UnaryFunctions lists the names of functions of one argument, sorted by name.
func UnaryFunctions() []string {
	return names(unaryFunctions)
}

// BinaryFunctions lists the names of functions of two arguments, sorted by name.
func BinaryFunctions() []string {
	return names(binaryFunctions)
}

func names(m *treemap.Map) []string {
	keys := m.Keys()
	list := make([]string, len(keys))
	for i, k := range keys {
		list[i] = k.(string)
	}
	return list
}
