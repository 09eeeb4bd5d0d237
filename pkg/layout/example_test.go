package layout_test

import (
	"fmt"

	"github.com/matzehuels/svgsprite/pkg/layout"
	"github.com/matzehuels/svgsprite/pkg/shape"
)

func ExampleCompute() {
	shapes := []*shape.Shape{
		{ID: "a", Width: 10, Height: 10},
		{ID: "b", Width: 20, Height: 20},
		{ID: "c", Width: 30, Height: 30},
	}
	sp := layout.Compute(shapes, layout.Horizontal, layout.Padding{}, -1)

	for _, it := range sp.Items {
		fmt.Printf("%s: %s\n", it.Name, layout.Position(it))
	}
	fmt.Printf("sprite: %vx%v\n", sp.Width, sp.Height)
	// Output:
	// a: 0 0
	// b: -10px 0
	// c: -30px 0
	// sprite: 60x30
}

func ExampleParseKind() {
	for _, s := range []string{"vertical", "diagonal", "packed"} {
		k, ok := layout.ParseKind(s)
		fmt.Println(k, ok)
	}
	// Output:
	// vertical true
	// diagonal true
	// horizontal false
}
