// Command tagvet checks markup literals in Go source, and is meant to run as a vet tool:
//
//	go vet -vettool=$(which tagvet) -markup.funcs=example.com/ui.HTML ./...
package main

import (
	"github.com/TroutSoftware/tagbalance/cmd/tagvet/internal/markup"
	"golang.org/x/tools/go/analysis/unitchecker"
)

func main() {
	unitchecker.Main(markup.Analyzer)
}
