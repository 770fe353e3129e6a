// Command diagramtest parses a 2D diagram, reports how its labels map
// to catalogue parts, and optionally writes an SVG showing the
// resulting hit regions.
package main

import (
	"flag"
	"fmt"
	"os"

	"anatomy-mapper/internal/anatomy"
	"anatomy-mapper/internal/diagram"
	"anatomy-mapper/internal/session"

	"github.com/rs/zerolog"
)

func main() {
	typeName := flag.String("type", "ear", "Anatomy type: ear, nose, throat, dental, lungs, kidney, skeleton")
	out := flag.String("out", "", "Write a region overlay SVG to this path")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Println("Usage: diagramtest [-type ear] [-out regions.svg] <diagram.svg>")
		os.Exit(1)
	}

	typ, err := anatomy.ParseType(*typeName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	doc, err := diagram.Parse(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Diagram %s: %.0fx%.0f, %d labels\n", flag.Arg(0), doc.Width, doc.Height, len(doc.Labels))

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.WarnLevel)
	ix := diagram.BuildIndex(doc, anatomy.Get(typ), log)

	if ix.FromLabels() {
		fmt.Println("Regions from diagram labels:")
	} else {
		fmt.Println("No labels matched; regions from catalogue fallback table:")
	}
	for _, region := range ix.Regions() {
		label := region.Label
		if label == "" {
			label = "(fallback)"
		}
		fmt.Printf("  %-28s %-22s x=%.0f y=%.0f w=%.0f h=%.0f\n",
			label, region.Key,
			region.Rect.X, region.Rect.Y, region.Rect.Width, region.Rect.Height)
	}

	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		defer f.Close()

		rec := session.New(typ, zerolog.Nop()).Record()
		if err := session.WriteSnapshotSVG(f, ix, rec); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Region overlay written to %s\n", *out)
	}
}
