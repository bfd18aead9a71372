package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "vecex <source-file> <debug:0|1> <safe:0|1> [argv...]",
	Short: "vecex-lisp interpreter",
	Long: `vecex is a small, dynamically-typed Lisp-family interpreter.

It reads a source file of S-expressions, parses it into a flat depth-tree,
and evaluates that tree against a builtin library plus any user-defined
closures. debug gates an AST dump to stdout; safe gates type-pattern
checking at every builtin dispatch. Trailing arguments are exposed inside
the program as a Vector of Strings bound to the name "argv".`,
	Version: Version,
	Args:    cobra.MinimumNArgs(3),
	RunE:    runScript,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose diagnostics on stderr")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
