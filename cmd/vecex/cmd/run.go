package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/vecexlang/vecex/internal/interp"
	"github.com/vecexlang/vecex/internal/reader"
)

func runScript(_ *cobra.Command, args []string) error {
	filename := args[0]
	debug, err := parseFlagArg(args[1], "debug")
	if err != nil {
		return err
	}
	safe, err := parseFlagArg(args[2], "safe")
	if err != nil {
		return err
	}

	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	expr, err := reader.Read(string(content))
	if err != nil {
		return err
	}

	if debug {
		fmt.Println("[DEBUG] " + expr.Tree.PrettyPrint())
	}

	argv := append([]string{filename}, args[3:]...)
	ev := interp.New(os.Stdout, os.Stdin, safe, argv)

	_, evalErr := ev.EvalTree(expr)
	if exitSig, ok := evalErr.(*interp.ExitSignal); ok {
		os.Exit(exitSig.Code)
	}
	if evalErr != nil {
		if verbose {
			fmt.Fprintf(os.Stderr, "[DEBUG] evaluation failed after parsing %s\n", filename)
		}
		return evalErr
	}
	return nil
}

func parseFlagArg(s, name string) (bool, error) {
	switch s {
	case "0":
		return false, nil
	case "1":
		return true, nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n != 0, nil
	}
	return false, fmt.Errorf("%s flag must be 0 or 1, got %q", name, s)
}
