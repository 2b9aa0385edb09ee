// Command gen-trees writes random gene trees for benchmarks and fixtures.
//
// Every tree is a random rooted binary tree whose leaves are named
// <species><sep><gene>, with species drawn from a fixed pool so that
// duplications and speciations both occur.
package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"github.com/aretw0/orthology/pkg/adapters/memory"
	"github.com/aretw0/orthology/pkg/adapters/newick"
	"github.com/spf13/cobra"
)

type params struct {
	trees   int
	leaves  int
	species int
	sep     string
	seed    uint64
}

func main() {
	var p params
	cmd := &cobra.Command{
		Use:   "gen-trees [output]",
		Short: "Generate random Newick gene trees",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 1 {
				f, err := os.Create(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
				fmt.Fprintf(cmd.ErrOrStderr(), "Generating %d trees in: %s\n", p.trees, args[0])
			}
			return generate(out, p)
		},
	}
	cmd.Flags().IntVar(&p.trees, "trees", 1, "Number of trees")
	cmd.Flags().IntVar(&p.leaves, "leaves", 16, "Leaves per tree")
	cmd.Flags().IntVar(&p.species, "species", 4, "Size of the species pool")
	cmd.Flags().StringVar(&p.sep, "sep", "_", "Separator between species and gene id")
	cmd.Flags().Uint64Var(&p.seed, "seed", 1, "Random seed")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func generate(w io.Writer, p params) error {
	if p.leaves < 2 || p.species < 1 || p.trees < 1 {
		return fmt.Errorf("need at least 1 tree, 2 leaves and 1 species")
	}
	rng := rand.New(rand.NewPCG(p.seed, p.seed^0x9e3779b97f4a7c15))
	for i := 0; i < p.trees; i++ {
		if _, err := fmt.Fprintln(w, newick.Format(randomTree(rng, p))); err != nil {
			return err
		}
	}
	return nil
}

// randomTree joins random pairs of subtrees until one root is left.
func randomTree(rng *rand.Rand, p params) *memory.Node {
	pool := make([]*memory.Node, p.leaves)
	genes := make(map[int]int, p.species)
	for i := range pool {
		sp := rng.IntN(p.species)
		genes[sp]++
		pool[i] = memory.Leaf(fmt.Sprintf("sp%d%sg%d", sp, p.sep, genes[sp]))
	}

	for len(pool) > 1 {
		i := rng.IntN(len(pool))
		a := pool[i]
		pool[i] = pool[len(pool)-1]
		pool = pool[:len(pool)-1]

		j := rng.IntN(len(pool))
		pool[j] = memory.Inner(a, pool[j])
	}
	return pool[0]
}
