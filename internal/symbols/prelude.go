package symbols

import "ucc/internal/types"

// addBuiltinFunctions seeds the environment with the uC builtin functions:
// pairwise conversions, string utilities, math, I/O and exit.
func (g *Global) addBuiltinFunctions() {
	b := g.reg.Builtins()
	convertible := map[string]types.Type{
		"int":    b.Int,
		"long":   b.Long,
		"double": b.Double,
		"string": b.String,
	}
	for _, src := range []string{"int", "long", "double", "string"} {
		for _, dst := range []string{"int", "long", "double", "string"} {
			if src == dst {
				continue
			}
			g.addConversion(src, convertible[src], dst, convertible[dst])
		}
	}
	g.addConversion("string", b.String, "boolean", b.Boolean)
	g.addConversion("boolean", b.Boolean, "string", b.String)

	g.addPrimitive("length", b.Int, b.String)
	g.addPrimitive("substr", b.String, b.String, b.Int, b.Int)
	g.addPrimitive("ordinal", b.Int, b.String)
	g.addPrimitive("character", b.String, b.Int)

	g.addPrimitive("pow", b.Double, b.Double, b.Double)
	g.addPrimitive("sqrt", b.Double, b.Double)
	g.addPrimitive("ceil", b.Double, b.Double)
	g.addPrimitive("floor", b.Double, b.Double)

	g.addPrimitive("print", b.Void, b.String)
	g.addPrimitive("println", b.Void, b.String)

	g.addPrimitive("peekchar", b.String)
	g.addPrimitive("readchar", b.String)
	g.addPrimitive("readline", b.String)

	g.addPrimitive("exit", b.Void, b.Int)
}

func (g *Global) addPrimitive(name string, ret types.Type, params ...types.Type) {
	g.funcs[name] = g.reg.NewPrimitiveFunc(name, ret, params...)
}

func (g *Global) addConversion(srcName string, src types.Type, dstName string, dst types.Type) {
	name := srcName + "_to_" + dstName
	g.funcs[name] = g.reg.NewPrimitiveFunc(name, dst, src)
}
