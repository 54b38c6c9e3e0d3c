package filter_test

import (
	"fmt"

	"github.com/matzehuels/galleryfind/pkg/filter"
)

func ExampleNameClause() {
	for _, p := range []string{"*Get*", "PowerShell*", "*Get", "Power*Get"} {
		c, _ := filter.NameClause(p)
		fmt.Println(c)
	}
	// Output:
	// substringof('Get', Id)
	// startswith(Id, 'PowerShell')
	// endswith(Id, 'Get')
	// startswith(Id, 'Power') and endswith(Id, 'Get')
}

func ExampleVersionClause() {
	r, _ := filter.ParseVersionRange("[1.0,2.0)")
	fmt.Println(filter.VersionClause(r))
	// Output:
	// NormalizedVersion ge '1.0.0' and NormalizedVersion lt '2.0.0'
}
