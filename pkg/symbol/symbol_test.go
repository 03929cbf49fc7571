package symbol

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"amath.elv.sh/pkg/tt"
	"github.com/google/go-cmp/cmp"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"alpha", "alpha: α (greek letter)"},
		{"sin", "sin (function)"},
		{"oo", "oo: ∞ (symbol), infinity"},
		{"cancel", "cancel (adornment), cancelled term"},
	}
	for _, test := range tests {
		if got := builtin.Get(test.name).Describe(); got != test.want {
			t.Errorf("Describe(%q) = %q, want %q", test.name, got, test.want)
		}
	}
}

func TestBehaviors(t *testing.T) {
	if !builtin.Get("sin").IsFunction() {
		t.Errorf("sin is not a function")
	}
	if builtin.Get("alpha").IsFunction() {
		t.Errorf("alpha is a function")
	}
	if !builtin.Get("{:").IsInvisible() || !builtin.Get(":}").IsInvisible() {
		t.Errorf("{: and :} are not invisible")
	}
	if !builtin.Get("hat").IsAccent() || !builtin.Get("uBrace").IsAccent() {
		t.Errorf("hat and uBrace are not accents")
	}
	if b, ok := builtin.Get("abs").Behavior.(FenceOverride); !ok || b.Open != "|" {
		t.Errorf("abs has behavior %#v", builtin.Get("abs").Behavior)
	}
	if b, ok := builtin.Get("cc").Behavior.(FontRemap); !ok || len(b.Codes) != 52 {
		t.Errorf("cc has behavior %#v", builtin.Get("cc").Behavior)
	}
	for _, s := range builtin.Symbols() {
		if s.Behavior == nil {
			t.Errorf("%s has nil behavior", s.Name)
		}
	}
}

func TestStrings(t *testing.T) {
	tt.Test(t, tt.Fn("Arity.String", Arity.String), tt.Table{
		tt.Args(Const).Rets("Const"),
		tt.Args(UnaryUnderOver).Rets("UnaryUnderOver"),
		tt.Args(Arity(100)).Rets("Arity(?)"),
	})
	tt.Test(t, tt.Fn("Group.String", Group.String), tt.Table{
		tt.Args(Greek).Rets("greek letter"),
		tt.Args(Defined).Rets("defined symbol"),
		tt.Args(Group(100)).Rets("group(?)"),
	})
}

func TestRestyle(t *testing.T) {
	tt.Test(t, tt.Fn("Restyle", Restyle), tt.Table{
		tt.Args("A", ScriptLetters).Rets("𝒜", true),
		tt.Args("B", ScriptLetters).Rets("ℬ", true),
		tt.Args("xe", ScriptLetters).Rets("𝓍ℯ", true),
		tt.Args("R", DoubleStruckLetters).Rets("ℝ", true),
		tt.Args("x", DoubleStruckLetters).Rets("𝕩", true),
		tt.Args("Z", FrakturLetters).Rets("ℨ", true),
		tt.Args("a1", FrakturLetters).Rets("𝔞1", true),
		tt.Args("12", ScriptLetters).Rets("12", false),
		tt.Args("α", ScriptLetters).Rets("α", false),
		tt.Args("A", []string(nil)).Rets("A", false),
	})
}

func TestRegistry(t *testing.T) {
	r := NewRegistry(BuiltinTable())
	before := r.Table()
	if err := r.Register("R2", "RR^2", "realPlane", "the real plane"); err != nil {
		t.Fatal(err)
	}
	after := r.Table()
	if before.Get("R2") != nil {
		t.Errorf("registration changed the old table")
	}
	s := after.Get("R2")
	if s == nil {
		t.Fatalf("R2 not registered")
	}
	if s.Arity != Definition || s.Group != Defined || s.Output != "RR^2" {
		t.Errorf("registered symbol is %#v", s)
	}
	if after.Get("realplane") != s {
		t.Errorf("TeX alias of registered symbol not lower-cased")
	}

	tt.Test(t, tt.Fn("Register", r.Register), tt.Table{
		tt.Args("", "x", "", "").Rets(tt.ErrorIs(ErrInvalidName)),
		tt.Args(" x", "x", "", "").Rets(tt.ErrorIs(ErrInvalidName)),
		tt.Args("x", "x", "\tx", "").Rets(tt.ErrorIs(ErrInvalidName)),
		tt.Args("xx2", "x", "", "").Rets(nil),
	})
}

func TestRegistry_ConcurrentRegisterAndLookup(t *testing.T) {
	r := NewRegistry(BuiltinTable())
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				r.Register(fmt.Sprintf("user%d_%d", i, j), "x", "", "")
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				name, _ := r.Table().Lookup("alpha+beta")
				if name != "alpha" {
					t.Errorf("Lookup matched %q during registration", name)
					return
				}
			}
		}()
	}
	wg.Wait()
	for i := 0; i < 4; i++ {
		for j := 0; j < 20; j++ {
			if r.Table().Get(fmt.Sprintf("user%d_%d", i, j)) == nil {
				t.Errorf("user%d_%d lost", i, j)
			}
		}
	}
}

var definitionsYAML = `
- name: R2
  output: RR^2
  description: the real plane
- name: half
  output: 1/2
  tex: oneHalf
`

func TestLoadDefinitions(t *testing.T) {
	defs, err := LoadDefinitions(strings.NewReader(definitionsYAML))
	if err != nil {
		t.Fatal(err)
	}
	want := []Def{
		{Name: "R2", Output: "RR^2", Description: "the real plane"},
		{Name: "half", Output: "1/2", TeX: "oneHalf"},
	}
	if diff := cmp.Diff(want, defs); diff != "" {
		t.Errorf("LoadDefinitions (-want +got):\n%s", diff)
	}

	r := NewRegistry(BuiltinTable())
	if err := r.RegisterDefinitions(defs); err != nil {
		t.Fatal(err)
	}
	if r.Table().Get("onehalf") == nil {
		t.Errorf("definition with TeX alias not registered")
	}
}

func TestLoadDefinitions_Empty(t *testing.T) {
	defs, err := LoadDefinitions(strings.NewReader(""))
	if defs != nil || err != nil {
		t.Errorf("got (%v, %v), want (nil, nil)", defs, err)
	}
}

func TestLoadDefinitions_Malformed(t *testing.T) {
	_, err := LoadDefinitions(strings.NewReader("name: [unclosed"))
	if err == nil {
		t.Errorf("got nil error")
	}
}

func TestRegisterDefinitions_AllOrNothing(t *testing.T) {
	r := NewRegistry(BuiltinTable())
	err := r.RegisterDefinitions([]Def{
		{Name: "good", Output: "x"}, {Name: "", Output: "y"}})
	if !errors.Is(err, ErrInvalidName) {
		t.Errorf("got error %v, want ErrInvalidName", err)
	}
	if r.Table().Get("good") != nil {
		t.Errorf("valid definition registered despite error")
	}
}
