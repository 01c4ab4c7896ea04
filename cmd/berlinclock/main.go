package main

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/quentinrf/berlin-clock/internal/cli"
)

func main() {
	if err := cli.NewRootCommand(viper.New()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
