// Command shaderirc lowers a pre-type-checked shading-language program
// tree to this module's intermediate representation.
package main

import (
	"encoding/gob"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/shaderlang/ilgen/ast"
	"github.com/shaderlang/ilgen/config"
	"github.com/shaderlang/ilgen/diagnostic"
	"github.com/shaderlang/ilgen/lower"
)

func usage() {
	const use = `
Usage: shaderirc [OPTION]... PROGRAM

PROGRAM is a gob-encoded ast.Program, produced by an external parsing
and semantic-analysis front end.
`
	fmt.Fprintln(os.Stderr, use[1:])
	flag.PrintDefaults()
}

func main() {
	configPath := flag.String("config", "", "path to a compile-options TOML manifest")
	quiet := flag.Bool("quiet", false, "suppress the startup banner and success line")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}

	if !*quiet {
		diagnostic.PrintBanner("shaderirc")
	}

	prog, err := loadProgram(flag.Arg(0))
	if err != nil {
		log.Fatalf("unable to load program: %+v", err)
	}

	var opts *config.CompileOptions
	if *configPath != "" {
		opts, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("unable to load config: %+v", err)
		}
	}

	sink := diagnostic.ConsoleSink{}
	gen := lower.NewGenerator(prog, opts, sink)
	out, err := gen.Lower()
	if err != nil {
		log.Fatalf("lowering failed: %+v", err)
	}

	fmt.Print(out.Summary())
	if !*quiet {
		diagnostic.PrintSuccess(fmt.Sprintf("lowered %d functions, %d structs, %d globals",
			len(out.Functions), len(out.Structs), len(out.Globals)))
	}
}

func loadProgram(path string) (*ast.Program, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	prog := &ast.Program{}
	if err := gob.NewDecoder(f).Decode(prog); err != nil {
		return nil, err
	}
	return prog, nil
}
