package bind_test

import (
	"fmt"
	"strings"

	"github.com/hasbyte1/go-chain-utils/bind"
)

func ExampleBind() {
	pad, _ := bind.Bind(strings.Repeat, "-", bind.Blank)
	s, _ := pad(3)
	fmt.Println(s)
	// Output: ---
}

func ExampleBind_prepend() {
	trim, _ := bind.Bind(strings.TrimSuffix, ".go")
	s, _ := trim("main.go")
	fmt.Println(s)
	// Output: main
}

func ExampleBind2() {
	over, _ := bind.Bind2(func(k string, v, floor int) bool { return v > floor }, 10)
	ok, _ := over("score", 42)
	fmt.Println(ok)
	// Output: true
}
