package lazylet_test

import (
	"errors"
	"fmt"

	"github.com/freshtonic/lazylet/pkg/diagnostics"
	"github.com/freshtonic/lazylet/pkg/lazylet"
)

func Example() {
	env := lazylet.New().
		Bind("x", 5).
		Bind("y", func() any { return 2 + 3 })

	fmt.Println(env.MustGet("x"), env.MustGet("y"))
	// Output: 5 5
}

func ExampleEnv_Bind_counter() {
	n := 0
	env := lazylet.New().Bind("next", func() any {
		n++
		return n
	})

	fmt.Println(env.MustGet("next"), env.MustGet("next"), env.MustGet("next"))
	// Output: 1 2 3
}

func ExampleEnv_Names() {
	env := lazylet.New().Bind("b", 2).Bind("a", 1).Bind("b", 20)
	fmt.Println(env.Names())
	// Output: [b a]
}

func ExampleEnv_Get_unbound() {
	env := lazylet.New()
	_, err := env.Get("missing")
	fmt.Println(errors.Is(err, lazylet.ErrUnbound))

	var d *diagnostics.Diagnostic
	if errors.As(err, &d) {
		fmt.Println(diagnostics.FormatDiagnostic(d, true))
	}
	// Output:
	// true
	// error[E_UNBOUND]: unbound name 'missing'
	//   --> "missing"
	//   hint: bind it before reading
}

func ExampleGetAs() {
	env := lazylet.New().Bind("port", func() any { return 8080 })
	port, err := lazylet.GetAs[int](env, "port")
	fmt.Println(port, err)

	_, err = lazylet.GetAs[string](env, "port")
	fmt.Println(err)
	// Output:
	// 8080 <nil>
	// E_TYPE: 'port' is int, want string
}
