package script_test

import (
	"fmt"

	"github.com/matzehuels/listview/pkg/script"
)

func ExampleParse() {
	s, err := script.Parse([]byte(`
[[op]]
call = "add"
args = ["A"]

[[op]]
call = "indexOf"
args = ["A", 0]
`))
	if err != nil {
		panic(err)
	}
	for _, op := range s.Ops {
		fmt.Printf("line %d: %s\n", op.Line, op)
	}
	fmt.Println(s.Kind, script.Usage("indexOf"))
	// Output:
	// line 2: add(A)
	// line 6: indexOf(A, 0)
	// linked indexOf(item [, position])
}
