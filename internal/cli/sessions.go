package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesim/internal/storage"
)

var sessionsLimit int

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List recent play sessions",
	RunE:  runSessions,
}

func init() {
	sessionsCmd.Flags().IntVarP(&sessionsLimit, "limit", "n", 10, "Number of sessions to show")
	rootCmd.AddCommand(sessionsCmd)
}

func runSessions(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewSessionRepository(db)
	sessions, err := repo.List(sessionsLimit)
	if err != nil {
		return err
	}

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet. Run 'cubesim play' to start one.")
		return nil
	}

	fmt.Printf("%-10s %-20s %-10s %-8s %s\n", "ID", "Started", "Duration", "Moves", "Solved")
	for _, s := range sessions {
		duration := "-"
		if s.DurationMs != nil {
			duration = (time.Duration(*s.DurationMs) * time.Millisecond).Round(time.Second).String()
		}
		count, err := repo.GetMoveCount(s.SessionID)
		if err != nil {
			return err
		}
		solved := ""
		if s.Solved {
			solved = "yes"
		}
		fmt.Printf("%-10s %-20s %-10s %-8d %s\n",
			s.SessionID[:8], s.StartedAt.Local().Format("2006-01-02 15:04:05"),
			duration, count, solved)
	}

	return nil
}
