package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/listview/pkg/script"
)

func (c *CLI) callsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "calls",
		Short: "List the operations a script may call",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(stdout, StyleTitle.Render("Script calls"))
			for _, name := range script.Calls() {
				printKeyValue(name, script.Usage(name))
			}
			fmt.Fprintln(stdout)
			printInfo("kinds: %s", strings.Join([]string{string(script.KindLinked), string(script.KindCircular)}, ", "))
			return nil
		},
	}
}
