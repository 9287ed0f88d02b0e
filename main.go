package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/ziadkadry99/mcp-matrix/cmd"
	"github.com/ziadkadry99/mcp-matrix/internal/errors"
)

func main() {
	err := cmd.Execute()
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("Error:"), err)
	if s := errors.Suggestion(err); s != "" {
		fmt.Fprintf(os.Stderr, "%s\n", s)
	}
	os.Exit(errors.Code(err))
}
