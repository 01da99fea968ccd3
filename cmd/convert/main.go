package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"lmm-be/internal/tools/convert"
)

func main() {
	cfg, err := convert.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		exitf("Error: %v", err)
	}

	if err := convert.Run(context.Background(), cfg, os.Stdout); err != nil {
		exitf("Error: %v", err)
	}
}

func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
