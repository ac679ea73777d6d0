package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesim"
	"github.com/SeamusWaldron/cubesim/internal/storage"
)

var replayStepwise bool

var replayCmd = &cobra.Command{
	Use:   "replay [session-id]",
	Short: "Replay a recorded session",
	Long: `Replay the moves of a recorded session on a fresh cube and show the
result. Defaults to the most recent session. Session IDs may be
abbreviated to any unique prefix shown by 'cubesim sessions'.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&replayStepwise, "steps", false, "Show the net after every move")
	rootCmd.AddCommand(replayCmd)
}

func runReplay(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	sessions := storage.NewSessionRepository(db)

	var session *storage.Session
	if len(args) == 1 {
		session, err = findSession(sessions, args[0])
	} else {
		session, err = sessions.GetLast()
	}
	if err != nil {
		return err
	}
	if session == nil {
		return fmt.Errorf("no session found")
	}

	records, err := storage.NewMoveRepository(db).GetBySession(session.SessionID)
	if err != nil {
		return err
	}
	moves := storage.ToMoves(records)

	fmt.Printf("Session %s: %d moves\n\n", session.SessionID[:8], len(moves))

	cube := cubesim.NewCube(cubesim.NewMemScene())
	for i, m := range moves {
		cube.Apply(m)
		if replayStepwise {
			fmt.Printf("%d. %s\n", i+1, m.Notation())
			fmt.Print(renderNet(cube.Facelets()))
			fmt.Println()
		}
	}

	if !replayStepwise {
		fmt.Println(cubesim.FormatMoves(moves))
		fmt.Println()
		fmt.Print(renderNet(cube.Facelets()))
	}

	if cube.IsSolved() {
		fmt.Println("\nFinal state: solved")
	} else {
		fmt.Println("\nFinal state: scrambled")
	}

	return nil
}

// findSession resolves a session ID prefix against the stored sessions.
func findSession(repo *storage.SessionRepository, prefix string) (*storage.Session, error) {
	if s, err := repo.Get(prefix); err != nil {
		return nil, err
	} else if s != nil {
		return s, nil
	}

	all, err := repo.List(1000)
	if err != nil {
		return nil, err
	}

	var match *storage.Session
	for i := range all {
		if len(prefix) <= len(all[i].SessionID) && all[i].SessionID[:len(prefix)] == prefix {
			if match != nil {
				return nil, fmt.Errorf("session prefix %q is ambiguous", prefix)
			}
			match = &all[i]
		}
	}
	if match == nil {
		return nil, fmt.Errorf("no session matches %q", prefix)
	}
	return match, nil
}
