package pdbs_test

import (
	"fmt"

	"github.com/fabianbuerkle/spdb/bdd"
	"github.com/fabianbuerkle/spdb/pdbs"
	"github.com/fabianbuerkle/spdb/task"
)

// ExampleNewSPDB builds a pattern database over a single switch variable and
// queries the cost of flipping it to the goal value.
func ExampleNewSPDB() {
	tk := &task.Task{
		Variables: []task.Variable{{ID: 0, Domain: 2}},
		Operators: []task.Operator{
			{ID: 0, Name: "flip", Pre: []task.Fact{{Var: 0, Val: 0}}, Eff: []task.Fact{{Var: 0, Val: 1}}, Cost: 1},
		},
		Goal:    []task.Fact{{Var: 0, Val: 1}},
		Initial: task.State{0},
	}

	proxy := task.NewProxy(tk)
	manager := bdd.NewManager(4, 1024, 0)
	layout, err := task.NewVarLayout(proxy, manager)
	if err != nil {
		panic(err)
	}

	db, err := pdbs.NewSPDB(layout, proxy, task.Pattern{0})
	if err != nil {
		panic(err)
	}

	fmt.Println(db.GetValue(task.State{0}))
	fmt.Println(db.GetValue(task.State{1}))

	// Output:
	// 1
	// 0
}
