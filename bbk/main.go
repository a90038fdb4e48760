// Command bbk manages a single-operator bank book from the terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/google/subcommands"

	"github.com/bankbook/bankbook/cmd"
)

// version is overridden by the release build.
var version = "devel"

func main() {
	showVersion := flag.Bool("version", false, "Print the version and exit.")

	name := path.Base(os.Args[0])
	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	for _, c := range cmd.Commands {
		commander.Register(c, "bank book")
	}

	flag.Parse()
	if *showVersion {
		fmt.Printf("%s %s\n", name, version)
		return
	}
	os.Exit(int(commander.Execute(context.Background())))
}
