package main

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"testing"

	"github.com/g-m-twostay/go-avl/Trees"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

// sweep holds the parameters of one run. Step i of steps removes i/steps of
// the keys and then issues as many Member queries.
type sweep struct {
	addN  uint32
	steps uint32
	seed  int64
	quiet bool
}

var __r1 bool

func (s sweep) create(r *rand.Rand, all []int) (*Trees.AVLTree[int, struct{}, uint32], []int) {
	tree := Trees.New[int, struct{}, uint32](nil)
	for range s.addN {
		a := r.Int()
		tree.Insert(a, struct{}{})
		all = append(all, a)
	}
	return tree, all
}

// delQry returns the benchmark removing rmvN of the keys then querying qryN
// keys, half present and half random.
func (s sweep) delQry(r *rand.Rand, rmvN, qryN uint32) func(*testing.B) {
	return func(b *testing.B) {
		all := make([]int, 0, s.addN)
		b.ResetTimer()
		for range b.N {
			b.StopTimer()
			var tree *Trees.AVLTree[int, struct{}, uint32]
			tree, all = s.create(r, all[:0])
			b.StartTimer()
			for _, v := range all[:rmvN] {
				tree.Delete(v)
			}
			for _, v := range all[rmvN:] {
				__r1 = tree.Member(v)
			}
			for range qryN {
				__r1 = tree.Member(r.Int())
			}
		}
	}
}

func (s sweep) run() error {
	if s.steps < 2 {
		return fmt.Errorf("steps must be at least 2, got %d", s.steps)
	}
	r := rand.New(rand.NewSource(s.seed))
	var bar *progressbar.ProgressBar
	if !s.quiet {
		bar = progressbar.NewOptions(int(s.steps-1),
			progressbar.OptionSetDescription("measuring"),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetWriter(os.Stderr),
		)
	}
	cs := make([]float64, 0, s.steps)
	for i := uint32(1); i < s.steps; i++ {
		rmvN := s.addN / s.steps * i
		br := testing.Benchmark(s.delQry(r, rmvN, rmvN))
		cs = append(cs, float64(br.NsPerOp())/1e6)
		if bar != nil {
			bar.Add(1)
		}
	}
	if bar != nil {
		bar.Finish()
		fmt.Fprintln(os.Stderr)
	}
	var sum float64
	for _, v := range cs {
		sum += v
	}
	avg := sum / float64(len(cs))
	fmt.Printf("average: %fms/op\n", avg)
	sum = 0
	for _, v := range cs {
		a := v - avg
		sum += a * a
	}
	fmt.Printf("stddev: %fms/op\n", math.Sqrt(sum/float64(len(cs))))
	return nil
}

func main() {
	testing.Init()
	var s sweep
	cmd := &cobra.Command{
		Use:   "measure",
		Short: "Times removals and lookups on AVL trees of decreasing size",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.run()
		},
	}
	cmd.Flags().Uint32Var(&s.addN, "size", 1000000, "number of keys inserted before each step")
	cmd.Flags().Uint32Var(&s.steps, "steps", 50, "number of removal fractions to measure")
	cmd.Flags().Int64Var(&s.seed, "seed", 0, "seed of the key generator")
	cmd.Flags().BoolVarP(&s.quiet, "quiet", "q", false, "don't show progress")
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
