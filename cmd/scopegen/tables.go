package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/Faultbox/vectorscope/internal/engine/tracer"
	"github.com/Faultbox/vectorscope/pkg/geometry"
)

func cmdSolids(args []string) error {
	fs := flag.NewFlagSet("solids", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	arena := geometry.Default()
	printer.Printf("%-14s %8s %6s %6s %6s %10s\n", "Solid", "Vertices", "Edges", "Steps", "Jumps", "Edge len")
	for id := geometry.SolidID(0); int(id) < arena.Len(); id++ {
		s := arena.Solid(id)
		e := s.Edge(0)
		length := s.Vertex(int(e.A)).Sub(s.Vertex(int(e.B))).Length()
		printer.Printf("%-14s %8d %6d %6d %6d %10.4f\n",
			s.Name(), s.VertexCount(), s.EdgeCount(), s.Len(), geometry.EulerianGaps(s), length)
	}
	fmt.Println()
	fmt.Println("Jumps are traversal steps that do not start where the previous edge ended;")
	fmt.Println("the blank window hides them.")
	return nil
}

func cmdParams(args []string) error {
	fs := flag.NewFlagSet("params", flag.ExitOnError)
	kindName := fs.String("kind", "polyhedra", "Tracer kind")
	if err := fs.Parse(args); err != nil {
		return err
	}
	kind, err := tracer.ParseKind(*kindName)
	if err != nil {
		return err
	}

	table := kind.Params()
	fmt.Printf("%s (%d parameters)\n", kind.Title(), table.Len())
	for _, page := range table.Pages {
		fmt.Printf("\n[%s]\n", page.Name)
		for _, idx := range page.Indices {
			d := table.Params[idx]
			rng := printer.Sprintf("%d..%d", d.Min, d.Max)
			if len(d.Enum) > 0 {
				rng = strings.Join(d.Enum, "|")
				if len(d.Enum) > 6 {
					rng = fmt.Sprintf("%s|...|%s", strings.Join(d.Enum[:4], "|"), d.Enum[len(d.Enum)-1])
				}
			}
			fmt.Printf("  %2d  %-12s %-32s default %s\n", idx, d.Name, rng, d.Format(d.Default))
		}
	}
	return nil
}
