package symbol

import "amath.elv.sh/pkg/mathml"

const (
	mi = mathml.Identifier
	mo = mathml.Operator
)

// Output of the symbols that render as the nbsp-padded words "and", "or" and
// "if".
const nbsp = " "

// Builtin returns the builtin symbols, in definition order. Each call returns
// fresh copies.
func Builtin() []*Symbol {
	return []*Symbol{
		// Greek letters.
		sym(Greek, "alpha", mi, "α", "", Const),
		sym(Greek, "beta", mi, "β", "", Const),
		sym(Greek, "chi", mi, "χ", "", Const),
		sym(Greek, "delta", mi, "δ", "", Const),
		sym(Greek, "Delta", mo, "Δ", "", Const),
		sym(Greek, "epsi", mi, "ε", "epsilon", Const),
		sym(Greek, "varEpsilon", mi, "ɛ", "", Const),
		sym(Greek, "eta", mi, "η", "", Const),
		sym(Greek, "gamma", mi, "γ", "", Const),
		sym(Greek, "Gamma", mo, "Γ", "", Const),
		sym(Greek, "iota", mi, "ι", "", Const),
		sym(Greek, "kappa", mi, "κ", "", Const),
		sym(Greek, "lambda", mi, "λ", "", Const),
		sym(Greek, "Lambda", mo, "Λ", "", Const),
		sym(Greek, "lamda", mi, "λ", "", Const),
		sym(Greek, "Lamda", mo, "Λ", "", Const),
		sym(Greek, "mu", mi, "μ", "", Const),
		sym(Greek, "nu", mi, "ν", "", Const),
		sym(Greek, "omega", mi, "ω", "", Const),
		sym(Greek, "Omega", mo, "Ω", "", Const),
		sym(Greek, "phi", mi, "ϕ", "", Const),
		sym(Greek, "varPhi", mi, "φ", "", Const),
		sym(Greek, "Phi", mo, "Φ", "", Const),
		sym(Greek, "pi", mi, "π", "", Const),
		sym(Greek, "Pi", mo, "Π", "", Const),
		sym(Greek, "psi", mi, "ψ", "", Const),
		sym(Greek, "Psi", mi, "Ψ", "", Const),
		sym(Greek, "rho", mi, "ρ", "", Const),
		sym(Greek, "sigma", mi, "σ", "", Const),
		sym(Greek, "Sigma", mo, "Σ", "", Const),
		sym(Greek, "tau", mi, "τ", "", Const),
		sym(Greek, "theta", mi, "θ", "", Const),
		sym(Greek, "varTheta", mi, "ϑ", "", Const),
		sym(Greek, "Theta", mo, "Θ", "", Const),
		sym(Greek, "upsilon", mi, "υ", "", Const),
		sym(Greek, "xi", mi, "ξ", "", Const),
		sym(Greek, "Xi", mo, "Ξ", "", Const),
		sym(Greek, "zeta", mi, "ζ", "", Const),

		// Binary operations.
		sym(Operators, "*", mo, "⋅", "cdot", Const),
		sym(Operators, "**", mo, "∗", "ast", Const),
		sym(Operators, "***", mo, "⋆", "star", Const),
		sym(Operators, "//", mo, "/", "", Const),
		sym(Operators, `\\`, mo, `\`, "backslash", Const),
		sym(Operators, "setminus", mo, `\`, "", Const, "set difference"),
		sym(Operators, "xx", mo, "×", "times", Const),
		sym(Operators, "|><", mo, "⋉", "lTimes", Const, "left semijoin"),
		sym(Operators, "><|", mo, "⋊", "rTimes", Const, "right semijoin"),
		sym(Operators, "|><|", mo, "⋈", "bowTie", Const, "natural join"),
		sym(Operators, "]><", mo, "⟕", "lJoin", Const, "left outer join"),
		sym(Operators, "><[", mo, "⟖", "rJoin", Const, "right outer join"),
		sym(Operators, "]><[", mo, "⟗", "oJoin", Const, "full outer join"),
		sym(Operators, "-:", mo, "÷", "div", Const, "division sign"),
		sym(Operators, "divide", mo, "-:", "", Definition),
		sym(Operators, "@", mo, "∘", "circ", Const, "composition of maps"),
		sym(Operators, "o+", mo, "⊕", "oPlus", Const, "exclusive or"),
		sym(Operators, "o-", mo, "⊖", "ominus", Const, "symmetric difference"),
		sym(Operators, "ox", mo, "⊗", "oTimes", Const, "tensor product"),
		sym(Operators, "o.", mo, "⊙", "oDot", Const),
		sym(Operators, "o/", mo, "⊘", "oSlash", Const),
		sym(Operators, "O.", mo, "⨀", "bigodot", Const),
		sym(Operators, "O+", mo, "⨁", "bigoplus", Const),
		sym(Operators, "Ox", mo, "⨂", "bigotimes", Const),
		sym(Operators, "sum", mo, "∑", "∑", UnderOver, "sum over"),
		sym(Operators, "prod", mo, "∏", "∏", UnderOver, "product over"),
		sym(Operators, "coprod", mo, "∐", "∐", UnderOver, "coproduct over"),
		sym(Operators, "^^", mo, "∧", "wedge", Const, "logical and"),
		sym(Operators, "^^^", mo, "⋀", "bigWedge", UnderOver, "and over"),
		sym(Operators, "vv", mo, "∨", "vee", Const, "logical or"),
		sym(Operators, "vvv", mo, "⋁", "bigVee", UnderOver, "or over"),
		sym(Operators, "nn", mo, "∩", "cap", Const, "intersection"),
		sym(Operators, "nnn", mo, "⋂", "bigCap", UnderOver, "intersection over"),
		sym(Operators, "uu", mo, "∪", "cup", Const, "union"),
		sym(Operators, "uuu", mo, "⋃", "bigCup", UnderOver, "union over"),
		sym(Operators, "bigSqCup", mo, "⨆", "", UnderOver),
		sym(Operators, "sqCap", mo, "⊓", "", UnderOver),
		sym(Operators, "sqCup", mo, "⊔", "", UnderOver),

		// Relations.
		sym(Relations, "!=", mo, "≠", "ne", Const),
		sym(Relations, ":=", mo, ":=", "", Const),
		sym(Relations, "<=", mo, "≤", "le", Const, "less than or equal to"),
		sym(Relations, "lt=", mo, "≤", "leq", Const, "less than or equal to"),
		sym(Relations, "gt", mo, ">", "", Const, "greater than"),
		sym(Relations, ">=", mo, "≥", "ge", Const, "greater than or equal to"),
		sym(Relations, "gt=", mo, "≥", "geq", Const, "greater than or equal to"),
		sym(Relations, "-<", mo, "≺", "prec", Const),
		sym(Relations, "-lt", mo, "≺", "", Const),
		sym(Relations, ">-", mo, "≻", "succ", Const),
		sym(Relations, "-<=", mo, "⪯", "preceq", Const),
		sym(Relations, ">-=", mo, "⪰", "succeq", Const),
		sym(Relations, "in", mo, "∈", "", Const, "element of"),
		sym(Relations, "!in", mo, "∉", "notIn", Const, "not an element of"),
		sym(Relations, "sub", mo, "⊂", "subSet", Const, "proper subset of"),
		sym(Relations, "sup", mo, "⊃", "supSet", Const, "proper superset of"),
		sym(Relations, "subE", mo, "⊆", "subSetEq", Const, "subset of"),
		sym(Relations, "supE", mo, "⊇", "supSetEq", Const, "superset of"),
		sym(Relations, "-=", mo, "≡", "equiv", Const),
		sym(Relations, "~=", mo, "≅", "cong", Const),
		sym(Relations, "~~", mo, "≈", "approx", Const),
		sym(Relations, "prop", mo, "∝", "propTo", Const, "proportional to"),

		// Logic.
		sym(Logic, "and", mo, nbsp+"and"+nbsp, "", Const),
		sym(Logic, "or", mo, nbsp+"or"+nbsp, "", Const),
		sym(Logic, "not", mo, "¬", "neg", Const),
		sym(Logic, "if", mo, nbsp+"if"+nbsp, "", Const),
		sym(Logic, "=>", mo, "⇒", "implies", Const, "implication"),
		sym(Logic, "<=>", mo, "⇔", "iff", Const, "equivalence"),
		sym(Logic, "AA", mo, "∀", "forAll", Const, "universal quantifier"),
		sym(Logic, "EE", mo, "∃", "exists", Const, "existential quantifier"),
		sym(Logic, "_|_", mo, "⊥", "bot", Const, "bottom element"),
		sym(Logic, "TT", mo, "⊤", "top", Const, "top element"),
		sym(Logic, "|--", mo, "⊢", "vDash", Const),
		sym(Logic, "|==", mo, "⊨", "models", Const),

		// Brackets.
		sym(Brackets, "(", mo, "(", "left(", LeftBracket),
		sym(Brackets, "〖", mo, "〖", "begin", LeftBracket),
		sym(Brackets, "〗", mo, "〗", "end", RightBracket),
		sym(Brackets, ")", mo, ")", "right)", RightBracket),
		sym(Brackets, "[", mo, "[", "left[", LeftBracket),
		sym(Brackets, "]", mo, "]", "right]", RightBracket),
		sym(Brackets, "{", mo, "{", "", LeftBracket),
		sym(Brackets, "}", mo, "}", "", RightBracket),
		sym(Brackets, "|", mo, "|", "", LeftRightBracket),
		sym(Brackets, ":|:", mo, "|", "", Const),
		sym(Brackets, "|:", mo, "|", "", LeftBracket),
		sym(Brackets, ":|", mo, "|", "", RightBracket),
		sym(Brackets, "(:", mo, "〈", "lAngle", LeftBracket),
		sym(Brackets, ":)", mo, "〉", "rAngle", RightBracket),
		sym(Brackets, "<<", mo, "≪", "", LeftBracket),
		sym(Brackets, "<<<", mo, "⋘", "", LeftBracket),
		sym(Brackets, ">>", mo, "≫", "", RightBracket),
		sym(Brackets, ">>>", mo, "⋙", "", RightBracket),
		sym(Brackets, "{:", mo, "{:", "", LeftBracket, "invisible opening bracket").
			with(InvisibleBracket{}),
		sym(Brackets, ":}", mo, ":}", "", RightBracket, "invisible closing bracket").
			with(InvisibleBracket{}),
		sym(Brackets, "|__", mo, "⌊", "lFloor", Const, "left floor"),
		sym(Brackets, "__|", mo, "⌋", "rFloor", Const, "right floor"),
		sym(Brackets, "|~", mo, "⌈", "lCeiling", Const, "left ceiling"),
		sym(Brackets, "~|", mo, "⌉", "rCeiling", Const, "right ceiling"),

		// Miscellaneous symbols.
		sym(Misc, "int", mo, "∫", "", Const, "integral"),
		sym(Misc, "iint", mo, "∬", "", Const, "double integral"),
		sym(Misc, "iiint", mo, "∭", "", Const, "triple integral"),
		sym(Misc, "iiiint", mo, "⨌", "", Const, "quadruple integral"),
		sym(Misc, "oint", mo, "∮", "", Const, "contour integral"),
		sym(Misc, "oiint", mo, "∯", "", Const, "surface integral"),
		sym(Misc, "oiiint", mo, "∰", "", Const, "volume integral"),
		sym(Misc, "aoint", mo, "∳", "", Const, "anticlockwise contour integral"),
		sym(Misc, "dx", mi, "dx", "", Definition, "differential of x"),
		sym(Misc, "dy", mi, "dy", "", Definition, "differential of y"),
		sym(Misc, "dz", mi, "dz", "", Definition, "differential of z"),
		sym(Misc, "dt", mi, "dt", "", Definition, "differential of t"),
		sym(Misc, "del", mo, "∂", "partial", Const, "partial derivative"),
		sym(Misc, "grad", mo, "∇", "nabla", Const, "gradient"),
		sym(Misc, "PlusMinus", mo, "±", "plusminus", Const),
		sym(Misc, "+-", mo, "±", "pm", Const),
		sym(Misc, "MinusPlus", mo, "∓", "minusplus", Const),
		sym(Misc, "-+", mo, "∓", "mp", Const),
		sym(Misc, "O/", mo, "∅", "emptySet", Const, "empty set"),
		sym(Misc, "oo", mo, "∞", "infty", Const, "infinity"),
		sym(Misc, "aleph", mi, "ℵ", "", Const, "countable infinity"),
		sym(Misc, "beth", mi, "ℶ", "", Const),
		sym(Misc, "daleth", mi, "ℸ", "", Const),
		sym(Misc, "gimel", mi, "ℷ", "", Const),
		sym(Misc, ":.", mo, "∴", "therefore", Const),
		sym(Misc, ":'", mo, "∵", "because", Const),
		sym(Misc, "'", mo, "′", "prime", Const),
		sym(Misc, "tilde", mathml.Over, "~", "", Unary).with(Accent{}),
		sym(Misc, `\ `, mo, nbsp, "", Const),
		sym(Misc, "frown", mo, "⌢", "", Const),
		sym(Misc, "quad", mo, nbsp+nbsp, "", Const),
		sym(Misc, "qQuad", mo, nbsp+nbsp+nbsp+nbsp, "", Const),
		sym(Misc, "cDots", mo, "⋯", "cdots", Const, "centered dots"),
		sym(Misc, "vDots", mo, "⋮", "vdots", Const, "vertical dots"),
		sym(Misc, "dDots", mo, "⋱", "ddots", Const, "diagonal dots"),
		sym(Misc, "/_", mo, "∠", "angle", Const, "angle"),
		sym(Misc, `/_\`, mo, "△", "triangle", Const, "triangle"),
		sym(Misc, "diamond", mi, "⋄", "", Const),
		sym(Misc, "square", mi, "□", "", Const),
		sym(Misc, "diamondSuit", mi, "♢", "", Const),
		sym(Misc, "clubSuit", mi, "♣", "", Const),
		sym(Misc, "dotEq", mi, "≐", "", Const),
		sym(Misc, "PP", mo, "ℙ", "", Const, "prime numbers"),
		sym(Misc, "CC", mo, "ℂ", "", Const, "complex numbers"),
		sym(Misc, "NN", mo, "ℕ", "", Const, "natural numbers"),
		sym(Misc, "QQ", mo, "ℚ", "", Const, "rational numbers"),
		sym(Misc, "RR", mo, "ℝ", "", Const, "real numbers"),
		sym(Misc, "ZZ", mo, "ℤ", "", Const, "integers"),
		sym(Misc, "Dd", mi, "ⅅ", "", Const, "differential"),
		sym(Misc, "dd", mi, "ⅆ", "", Const, "differential"),
		sym(Misc, "ee", mi, "ⅇ", "", Const, "Euler's number"),
		sym(Misc, "ii", mi, "ⅈ", "", Const, "imaginary unit"),
		sym(Misc, "jj", mi, "ⅉ", "", Const, "imaginary unit"),
		sym(Misc, "degree", mo, "°", "", Const),
		sym(Misc, "ell", mi, "ℓ", "", Const),
		sym(Misc, "f", mi, "f", "", Unary).with(Function{}),
		sym(Misc, "g", mi, "g", "", Unary).with(Function{}),
		sym(Misc, "h", mi, "h", "", Unary).with(Function{}),

		// Standard functions.
		sym(Functions, "lim", mo, "lim", "", UnderOver, "limit"),
		sym(Functions, "Lim", mo, "Lim", "", UnderOver),
		fn("sin"), fn("Sin"), fn("cos"), fn("Cos"), fn("tan"), fn("Tan"),
		fn("SinH"), fn("sinH"), fn("CosH"), fn("cosH"), fn("TanH"), fn("tanH"),
		fn("Cot"), fn("cot"), fn("sec"), fn("Sec"), fn("csc"), fn("Csc"),
		fn("ArcSin"), fn("arcSin"), fn("ArcCos"), fn("arcCos"),
		fn("arcTan"), fn("ArcTan"),
		fn("cotH"), fn("CotH"), fn("secH"), fn("SecH"), fn("CscH"), fn("cscH"),
		sym(Functions, "abs", mo, "abs", "", Unary, "absolute value").
			with(FenceOverride{"|", "|"}),
		sym(Functions, "norm", mo, "norm", "", Unary, "norm").
			with(FenceOverride{"∥", "∥"}),
		sym(Functions, "det", mo, "det", "", Unary, "determinant").
			with(FenceOverride{"|", "|"}),
		sym(Functions, "floor", mo, "floor", "", Unary, "floor").
			with(FenceOverride{"⌊", "⌋"}),
		sym(Functions, "ceil", mo, "ceil", "", Unary, "ceiling").
			with(FenceOverride{"⌈", "⌉"}),
		fn("exp"), fn("log"), fn("ln"), fn("Ln"),
		sym(Functions, "dim", mo, "dim", "", Const, "dimension"),
		sym(Functions, "mod", mo, "mod", "", Const, "remainder of a division"),
		fn("gcd", "greatest common divisor"),
		fn("lcm", "least common multiple"),
		sym(Functions, "lub", mo, "lub", "", Const, "least upper bound"),
		sym(Functions, "glb", mo, "glb", "", Const, "greatest lower bound"),
		sym(Functions, "min", mo, "min", "", UnderOver, "minimum"),
		sym(Functions, "Min", mo, "Min", "", UnderOver),
		sym(Functions, "max", mo, "max", "", UnderOver, "maximum"),
		sym(Functions, "Max", mo, "Max", "", UnderOver),
		fn("Log"),
		sym(Functions, "Abs", mo, "Abs", "", Unary, "absolute value").
			with(FenceOverride{"|", "|"}),

		// Arrows.
		sym(Arrows, "->", mo, "→", "to", Const),
		sym(Arrows, ">->", mo, "↣", "rightarrowtail", Const),
		sym(Arrows, "->>", mo, "↠", "twoheadrightarrow", Const),
		sym(Arrows, ">->>", mo, "⤖", "twoheadrightarrowtail", Const),
		sym(Arrows, "|->", mo, "↦", "mapsto", Const),
		sym(Arrows, "uArr", mo, "↑", "upArrow", Const),
		sym(Arrows, "dArr", mo, "↓", "downArrow", Const),
		sym(Arrows, "rArr", mo, "→", "rightArrow", Const),
		sym(Arrows, "lArr", mo, "←", "leftArrow", Const),
		sym(Arrows, "hArr", mo, "↔", "leftRightArrow", Const),
		sym(Arrows, "RArr", mo, "⇒", "RightArrow", Const),
		sym(Arrows, "LArr", mo, "⇐", "LeftArrow", Const),
		sym(Arrows, "HArr", mo, "⇔", "LeftRightArrow", Const),

		// Commands with arguments.
		sym(Adornments, "√", mathml.SquareRoot, "sqrt", "", Unary).with(Radical{}),
		sym(Adornments, "sqrt", mathml.SquareRoot, "sqrt", "", Unary, "square root").
			with(Radical{}),
		sym(Adornments, "root", mathml.Root, "root", "", Binary, "n-th root, written root(n)(x)").
			with(Stacked{}),
		sym(Adornments, "frac", mathml.Fraction, "/", "", Binary, "fraction"),
		sym(Adornments, "over", mathml.Fraction, "/", "", Infix),
		sym(Adornments, "/", mathml.Fraction, "/", "", Infix),
		sym(Adornments, "¦", mathml.Under, "¦", "atop", Infix),
		sym(Adornments, "stackRel", mathml.Over, "stackrel", "", Binary, "same as overSet").
			with(Stacked{}),
		sym(Adornments, "overSet", mathml.Over, "stackrel", "", Binary, "places the first argument above the second").
			with(Stacked{}),
		sym(Adornments, "underSet", mathml.Under, "stackrel", "", Binary, "places the first argument below the second").
			with(Stacked{}),
		sym(Adornments, "_", mathml.Sub, "_", "", Infix, "subscript"),
		sym(Adornments, "^", mathml.Sup, "^", "", Infix, "superscript"),
		accent("hat", mathml.Over, "̂", ""),
		accent("Bar", mathml.Over, "̿", "", "double overline"),
		accent("bar", mathml.Over, "¯", "overline", "overline"),
		accent("ul", mathml.Under, "̲", "underline", "underline"),
		accent("vec", mathml.Over, "⃗", "", "vector"),
		accent("dot", mathml.Over, "̇", "", "time derivative"),
		accent("ddot", mathml.Over, "̈", "", "second time derivative"),
		accent("dddot", mathml.Over, "⃛", "", "third time derivative"),
		accent("ddddot", mathml.Over, "⃜", "", "fourth time derivative"),
		sym(Adornments, "...", mo, "…", "ldots", Const, "lower dots"),
		accent("overArc", mathml.Over, "⏜", "overParen", "arc"),
		sym(Adornments, "uBrace", mathml.Under, "⏟", "underBrace", UnaryUnderOver, "brace below the argument").
			with(Accent{}),
		sym(Adornments, "oBrace", mathml.Over, "⏞", "overBrace", UnaryUnderOver, "brace above the argument").
			with(Accent{}),
		sym(Adornments, "text", mathml.Text, "text", "", Text, "verbatim text"),
		sym(Adornments, "mbox", mathml.Text, "mbox", "", Text),
		sym(Adornments, "color", mathml.Style, "", "", Binary, "color of the second argument, written color(red)(x)").
			with(AttributeCarrier{"mathcolor"}),
		sym(Adornments, "id", mathml.Row, "", "", Binary).with(AttributeCarrier{"id"}),
		sym(Adornments, "class", mathml.Row, "", "", Binary).with(AttributeCarrier{"class"}),
		sym(Adornments, "cancel", mathml.Enclose, "cancel", "", Unary, "cancelled term").
			with(Enclosure{"updiagonalstrike"}),
		sym(Adornments, `"`, mathml.Text, "mbox", "", Text),

		// Fonts.
		font("bb", "bold", nil),
		font("mathBf", "bold", nil),
		font("sf", "sans-serif", nil),
		font("mathSf", "sans-serif", nil),
		font("bbb", "double-struck", DoubleStruckLetters),
		font("mathBb", "double-struck", DoubleStruckLetters),
		font("cc", "script", ScriptLetters),
		font("mathCal", "script", ScriptLetters),
		font("tt", "monospace", nil),
		font("mathTt", "monospace", nil),
		font("fr", "fraktur", FrakturLetters),
		font("mathFrak", "fraktur", FrakturLetters),
	}
}

func sym(g Group, name string, k mathml.Kind, output, tex string, a Arity, desc ...string) *Symbol {
	s := &Symbol{Name: name, Output: output, Kind: k, Arity: a, TeX: tex,
		Group: g, Behavior: Plain{}}
	if len(desc) > 0 {
		s.Description = desc[0]
	}
	return s
}

func (s *Symbol) with(b Behavior) *Symbol {
	s.Behavior = b
	return s
}

func fn(name string, desc ...string) *Symbol {
	return sym(Functions, name, mo, name, "", Unary, desc...).with(Function{})
}

func accent(name string, k mathml.Kind, glyph, tex string, desc ...string) *Symbol {
	return sym(Adornments, name, k, glyph, tex, Unary, desc...).with(Accent{})
}

func font(name, variant string, codes []string) *Symbol {
	return sym(Fonts, name, mathml.Style, name, "", Unary, variant).
		with(FontRemap{"mathvariant", variant, codes})
}

// BuiltinTable returns a new table of the builtin symbols.
func BuiltinTable() *Table {
	return NewTable(Builtin())
}
