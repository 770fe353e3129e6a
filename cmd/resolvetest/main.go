// Command resolvetest resolves mesh names against an anatomy catalogue
// and prints the cascade result, for checking how a vendor asset's node
// names will map before loading it in the viewer.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"anatomy-mapper/internal/anatomy"
	"anatomy-mapper/internal/model"
	"anatomy-mapper/internal/resolver"

	"github.com/rs/zerolog"
)

func main() {
	typeName := flag.String("type", "ear", "Anatomy type: ear, nose, throat, dental, lungs, kidney, skeleton")
	modelPath := flag.String("model", "", "Resolve every mesh of a scene document instead of stdin names")
	ancestors := flag.String("ancestors", "", "Comma separated ancestor names, nearest first (stdin mode)")
	flag.Parse()

	typ, err := anatomy.ParseType(*typeName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if *modelPath != "" {
		resolveModel(*modelPath, typ)
		return
	}

	var parents []string
	if *ancestors != "" {
		for _, p := range strings.Split(*ancestors, ",") {
			parents = append(parents, strings.TrimSpace(p))
		}
	}

	// names from arguments, or interactively from stdin
	names := flag.Args()
	if len(names) == 0 {
		fmt.Println("Enter mesh names, one per line (Ctrl-D to finish):")
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			if name := strings.TrimSpace(scanner.Text()); name != "" {
				names = append(names, name)
			}
		}
	}

	for _, name := range names {
		printResult(name, resolver.Resolve(name, typ, parents), typ)
	}
}

func resolveModel(path string, typ anatomy.Type) {
	arena, err := model.Load(path, zerolog.Nop())
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	resolved, missed := 0, 0
	for _, id := range arena.MeshIDs() {
		n := arena.Node(id)
		ref := resolver.NodeRef{
			Name:         n.Name,
			Ancestors:    arena.AncestorNames(id),
			LoadIndex:    n.Mesh.LoadIndex,
			SiblingIndex: arena.SiblingIndex(id),
		}
		key := resolver.ResolveNode(ref, typ)
		printResult(n.Name, key, typ)
		if key == "" {
			missed++
		} else {
			resolved++
		}
	}
	fmt.Printf("\n%d meshes: %d resolved, %d unresolved\n", resolved+missed, resolved, missed)
}

func printResult(name string, key anatomy.PartKey, typ anatomy.Type) {
	switch {
	case key == "":
		fmt.Printf("  %-40s -> (no match)\n", name)
	case key == anatomy.PartNA:
		fmt.Printf("  %-40s -> NA (rig geometry)\n", name)
	default:
		info, _ := anatomy.Get(typ).Info(key)
		fmt.Printf("  %-40s -> %s (%s)\n", name, key, info.Name)
	}
}
