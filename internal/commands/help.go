package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:   "help",
	Short: "Show comprehensive help for bankt",
	Long:  `Display detailed help for all bankt commands and flags.`,
	Run: func(cmd *cobra.Command, args []string) {
		showCustomHelp()
	},
}

func showCustomHelp() {
	fmt.Print(`
██████╗  █████╗ ███╗   ██╗██╗  ██╗████████╗
██╔══██╗██╔══██╗████╗  ██║██║ ██╔╝╚══██╔══╝
██████╔╝███████║██╔██╗ ██║█████╔╝    ██║
██╔══██╗██╔══██║██║╚██╗██║██╔═██╗    ██║
██████╔╝██║  ██║██║ ╚████║██║  ██╗   ██║
╚═════╝ ╚═╝  ╚═╝╚═╝  ╚═══╝╚═╝  ╚═╝   ╚═╝

bankt - CLI Overtime Time Bank

COMMANDS:

  start                   Start an overtime session
    -d, --desc            Description for the session
    --no-ui               Start without the interactive timer

  stop                    Stop the running overtime session
  status                  Show the running session and elapsed time

  absence                 Plan an absence against the banked balance
    --from                Start: dd/mm/yyyy hh:mm, dd/mm/yyyy, or hh:mm
    --to                  End: same formats; bare hh:mm uses the start date
    -d, --desc            Description for the absence

    Without --from/--to an interactive form opens. Overdrawing the
    net balance is allowed but flagged with a warning.

  ls                      List entries, most recent first
    -t, --type            Filter by type: overtime|absence
    -s, --status          Filter by status: active|completed|planned

  edit <id>               Edit a completed or planned entry
    --from, --to          New time range
    -d, --desc            New description

  rm <id>                 Delete an entry (stop the session first to
                          delete the active one)

  balance                 Show balances plus statistics
  report                  Render the monthly report
    --month               Month as mm/yyyy (default: current)
    --user                Name on the report header

  help                    Show this help
  version                 Show version information

Entries are addressed by id prefix as shown in 'bankt ls'.

`)
}
