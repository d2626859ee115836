package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/plan-systems/klog"

	"github.com/katalvlaran/leafpair/treeio"
	"github.com/katalvlaran/leafpair/treepair"
)

// main is a thin boundary: parse flags, read the tree, run the reduction,
// print the count. All tracing goes to stderr via klog so stdout carries
// nothing but the answer.
func main() {
	file := flag.String("f", "", "path to input file (default: standard input)")
	verbose := flag.Bool("v", false, "trace every reduction step to stderr")

	fset := flag.NewFlagSet("", flag.ContinueOnError)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})

	flag.Parse()

	g, err := treeio.ParseFile(*file)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var opts []treepair.Option
	if *verbose {
		opts = append(opts, treepair.WithOnReduce(func(leaf int, snapshot string, paths int) {
			klog.Infof("reducing node %d\n%s\npairs found so far: %d", leaf, snapshot, paths)
		}))
	}

	paths, err := treepair.CountPaths(g, opts...)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println(paths)
	klog.Flush()
}
