package cli

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/cubelab/cubesim"
)

var (
	shuffleMoves int
	shuffleSeed  int64
	shuffleSave  bool
)

var shuffleCmd = &cobra.Command{
	Use:   "shuffle",
	Short: "Generate and apply a random shuffle",
	Long: `Generate a random move sequence, apply it to a solved cube and print
the result.

With --seed the sequence is reproducible. With --save the session is
stored in the database and can be replayed later with 'cubesim replay'.`,
	RunE: runShuffle,
}

func init() {
	rootCmd.AddCommand(shuffleCmd)
	shuffleCmd.Flags().IntVarP(&shuffleMoves, "moves", "n", cubesim.DefaultShuffleLength, "Number of random moves")
	shuffleCmd.Flags().Int64Var(&shuffleSeed, "seed", 0, "Random seed (0 = time-based)")
	shuffleCmd.Flags().BoolVar(&shuffleSave, "save", false, "Save the session to the database")
}

func runShuffle(cmd *cobra.Command, args []string) error {
	var seed *int64
	rngSeed := time.Now().UnixNano()
	if shuffleSeed != 0 {
		rngSeed = shuffleSeed
		seed = &shuffleSeed
	}

	sim := cubesim.NewSim(
		cubesim.WithLogger(getLogger()),
		cubesim.WithRand(rand.New(rand.NewSource(rngSeed))),
	)

	moves := sim.ShuffleN(shuffleMoves)
	for sim.IsShuffling() {
		sim.Advance(1)
	}

	fmt.Printf("Shuffle (%d moves): %s\n", len(moves), cubesim.FormatMoves(moves))
	fmt.Println()
	fmt.Println(sim.String())

	if shuffleSave {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		id, err := db.SaveSession(seed, moves, sim.FaceletString())
		if err != nil {
			return fmt.Errorf("failed to save session: %w", err)
		}
		fmt.Printf("Saved session: %s\n", id)
		fmt.Printf("Replay with: cubesim replay %s\n", id)
	}

	return nil
}
