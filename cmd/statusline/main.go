package main

import (
	"os"

	"github.com/grovetools/statusline/cli"
	"github.com/grovetools/statusline/cmd"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		verbose, _ := rootCmd.PersistentFlags().GetBool("verbose")
		cli.NewErrorHandler("statusline", os.Stderr, verbose).Handle(err)
		os.Exit(1)
	}
}
