package namespace_test

import (
	"fmt"

	"github.com/matzehuels/svgsprite/pkg/namespace"
)

func ExampleToken() {
	for _, i := range []int{0, 25, 26, 701, 702} {
		fmt.Println(namespace.Token(i))
	}
	// Output:
	// a
	// z
	// aa
	// zz
	// aaa
}
