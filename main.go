package main

import (
	"github.com/openbiblio/authormail/cmd"

	// Register source plugins
	_ "github.com/openbiblio/authormail/source/europepmc"
	_ "github.com/openbiblio/authormail/source/mdpi"
	_ "github.com/openbiblio/authormail/source/pubmed"
)

func main() {
	cmd.Execute()
}
