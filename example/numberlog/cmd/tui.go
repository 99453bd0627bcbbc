package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jonoton/go-messenger/example/numberlog/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Change the number interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup(cmd)
		if err != nil {
			return err
		}
		defer a.Shutdown()

		model, err := tui.New(a.Messenger, a.Log, a.Status)
		if err != nil {
			return err
		}
		_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
		return err
	},
}

func init() {
	tuiCmd.Flags().Int("start", 0, "initial value (overrides NUMBERLOG_START)")
	rootCmd.AddCommand(tuiCmd)
}
