package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/molemath/internal/problemgen"
	"github.com/abhisek/molemath/internal/round"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Play rounds in plain text (no TUI, no timer)",
	Long: `Generate problems, show them on the board, and answer by slot number.

This is a stateless developer tool for checking problem and distractor
quality. Scoring follows the game rules.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("difficulty", "normal", "Difficulty: simple or normal")
	previewCmd.Flags().Int("count", 5, "Number of problems")
	previewCmd.Flags().Uint64("seed", 0, "Random seed (0 picks one from the clock)")
}

func runPreview(cmd *cobra.Command, args []string) error {
	diffVal, _ := cmd.Flags().GetString("difficulty")
	count, _ := cmd.Flags().GetInt("count")
	seed, _ := cmd.Flags().GetUint64("seed")

	d, err := problemgen.ParseDifficulty(diffVal)
	if err != nil {
		return err
	}
	if count <= 0 {
		return fmt.Errorf("invalid count %d: must be positive", count)
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return preview(cmd.InOrStdin(), cmd.OutOrStdout(), d, count, seed)
}

// preview plays count rounds on in/out and returns after the summary line.
func preview(in io.Reader, out io.Writer, d problemgen.Difficulty, count int, seed uint64) error {
	gen := problemgen.NewSeeded(seed)
	presenter := round.NewPresenter(gen, gen.Rand())
	board := round.NewBoard(round.NumSlots)
	profile := d.Profile()
	scanner := bufio.NewScanner(in)

	fmt.Fprintf(out, "Difficulty: %s (seed %d)\n\n", d, seed)

	var score, correct int
	for i := 1; i <= count; i++ {
		p := gen.Generate(d)
		presenter.Present(board, p.Answer, d)

		fmt.Fprintf(out, "── Problem %d/%d ──\n", i, count)
		fmt.Fprintln(out, p.Text())
		printBoard(out, board)

		fmt.Fprint(out, "\nSlot (1-9): ")
		if !scanner.Scan() {
			fmt.Fprintln(out, "\n(input closed)")
			break
		}
		answer := strings.TrimSpace(scanner.Text())
		if answer == "" {
			fmt.Fprintln(out, "(skipped)")
			fmt.Fprintln(out)
			continue
		}

		n, err := strconv.Atoi(answer)
		slot, ok := board.Slot(n - 1)
		if err != nil || !ok || !slot.Occupied {
			fmt.Fprintf(out, "No mole in slot %q. Answer: %d\n\n", answer, p.Answer)
			continue
		}

		if slot.Value == p.Answer {
			correct++
			score += profile.CorrectPoints
			fmt.Fprintln(out, "\033[32m✓ Correct!\033[0m")
		} else {
			score = max(0, score-profile.WrongPenalty)
			fmt.Fprintf(out, "\033[31m✗ Wrong.\033[0m Answer: %d\n", p.Answer)
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintf(out, "── Summary: %d/%d correct, score %d ──\n", correct, count, score)
	return nil
}

// printBoard writes the board as a 3-column grid of "[slot] value" cells.
func printBoard(w io.Writer, b *round.Board) {
	for i, s := range b.Slots() {
		cell := "  ·"
		if s.Occupied {
			cell = fmt.Sprintf("%3d", s.Value)
		}
		fmt.Fprintf(w, "  [%d]%s", i+1, cell)
		if (i+1)%3 == 0 {
			fmt.Fprintln(w)
		}
	}
}
