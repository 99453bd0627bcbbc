package cmd

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/jonoton/go-messenger/example/numberlog/internal/app"
	"github.com/jonoton/go-messenger/example/numberlog/internal/viewmodel"
)

var runSteps int

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Change the number headlessly and print the log",
	Long: `run increments the number --steps times and then decrements it back,
printing every log line. Halfway through, a temporary status view is
dropped and garbage collected; the messenger stops notifying it without
anyone unregistering it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup(cmd)
		if err != nil {
			return err
		}
		defer a.Shutdown()
		return runDemo(cmd.OutOrStdout(), a, runSteps)
	},
}

func init() {
	runCmd.Flags().IntVar(&runSteps, "steps", 3, "number of increments and decrements")
	runCmd.Flags().Int("start", 0, "initial value (overrides NUMBERLOG_START)")
	rootCmd.AddCommand(runCmd)
}

func runDemo(w io.Writer, a *app.App, steps int) error {
	popup, err := viewmodel.NewStatus(a.Messenger, "popup")
	if err != nil {
		return err
	}

	n := a.Number()
	printed := 0
	flush := func() {
		lines := a.Log.Lines()
		for _, line := range lines[printed:] {
			fmt.Fprintln(w, line)
		}
		printed = len(lines)
	}

	for i := 0; i < steps; i++ {
		if err := n.Increment(); err != nil {
			return err
		}
		flush()
	}
	fmt.Fprintln(w, "--", popup)

	// Nothing refers to the popup after this point.
	runtime.KeepAlive(popup)
	runtime.GC()
	fmt.Fprintf(w, "-- popup dropped, %d log subscribers before purge\n", a.Messenger.Len(viewmodel.MsgLogAppended))

	for i := 0; i < steps; i++ {
		if err := n.Decrement(); err != nil {
			return err
		}
		flush()
	}

	fmt.Fprintf(w, "-- %d log subscribers after purge\n", a.Messenger.Len(viewmodel.MsgLogAppended))
	fmt.Fprintln(w, "--", a.Status)
	return nil
}
