package main

import (
	"fmt"
	"os"

	"github.com/variantkit/variantkit/internal/catalog"
	"github.com/variantkit/variantkit/internal/logger"
)

func main() {
	log, err := logger.New(logger.Options{Level: "info", HumanReadable: true})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}

	app := &appContext{
		catalog: catalog.Builtin(),
		log:     log,
	}

	if err := newRootCmd(app).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
