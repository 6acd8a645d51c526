// proxygen generates rebindable proxy types for Go interfaces.
//
// For every requested interface it emits a struct with one slot field per
// operation, a constructor binding each slot to the backing instance, and an
// init function registering the proxy with the github.com/ygrebnov/proxy
// runtime. Typical use from a go:generate directive:
//
//	//go:generate proxygen -type CookieService .
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ygrebnov/proxy/internal/gen"
)

func main() {
	var (
		typeNames = flag.String("type", "", "comma-separated interface names to proxy (required)")
		outFile   = flag.String("out", "", "output file; default <type>_proxy.go in the current directory")
		pkgName   = flag.String("pkg-name", "", "package name for the generated file; default is the interfaces' own package")
	)
	flag.Usage = usage
	flag.Parse()

	if *typeNames == "" {
		usage()
		os.Exit(2)
	}
	pattern := "."
	if flag.NArg() > 0 {
		pattern = flag.Arg(0)
	}

	var names []string
	for _, n := range strings.Split(*typeNames, ",") {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}

	src, err := gen.Generate(gen.Options{
		Pattern:     pattern,
		Interfaces:  names,
		PackageName: *pkgName,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "proxygen:", err)
		os.Exit(1)
	}

	out := *outFile
	if out == "" {
		out = filepath.Join(".", strings.ToLower(names[0])+"_proxy.go")
	}
	if err := os.WriteFile(out, src, 0o644); err != nil {
		fmt.Fprintln(os.Stderr, "proxygen:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `usage: proxygen -type Interface[,Interface...] [-out file] [-pkg-name name] [package]

proxygen generates a rebindable proxy type for each named interface of the
given package (default "."). The generated file registers its proxies with
the github.com/ygrebnov/proxy runtime.

`)
	flag.PrintDefaults()
}
