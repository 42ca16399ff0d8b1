package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/tictactoe-engine/internal/engine"
)

var errInputClosed = errors.New("input closed")

// main - plays one game in the terminal, any mix of human and engine seats.
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	out := termenv.NewOutput(os.Stdout)
	in := bufio.NewScanner(os.Stdin)

	fmt.Println("tic-tac-toe")
	fmt.Println("moves are entered as \"row col\", both from 0 to 2")
	fmt.Println()

	engineSeats, err := chooseSeats(in)
	if err != nil {
		return err
	}

	session := engine.NewSession()

	for !session.IsCompleted() {
		printBoard(out, session.Board())

		turn := session.Turn()

		var cell engine.Cell
		if engineSeats[turn] {
			cell, err = session.BestMove()
			if err != nil {
				return fmt.Errorf("engine failed to move: %w", err)
			}

			fmt.Printf("%s plays %d %d\n", colorMark(out, turn), cell.Row, cell.Col)
		} else {
			cell, err = readMove(in, out, session)
			if err != nil {
				return err
			}
		}

		if err = session.PerformMove(cell); err != nil {
			return fmt.Errorf("failed to perform move: %w", err)
		}
	}

	printBoard(out, session.Board())
	printResult(out, session.Winner())

	return nil
}

// chooseSeats - asks who controls each mark; true means the engine plays it.
func chooseSeats(in *bufio.Scanner) (map[engine.Mark]bool, error) {
	seats := make(map[engine.Mark]bool, 2)

	for _, mark := range []engine.Mark{engine.X, engine.O} {
		for {
			fmt.Printf("who plays %s, [h]uman or [e]ngine? ", mark)

			if !in.Scan() {
				return nil, errInputClosed
			}

			answer := strings.ToLower(strings.TrimSpace(in.Text()))

			if answer == "h" || answer == "human" {
				seats[mark] = false
				break
			}

			if answer == "e" || answer == "engine" {
				seats[mark] = true
				break
			}

			fmt.Println("please answer h or e")
		}
	}

	return seats, nil
}

// readMove - prompts until the player enters a legal cell.
func readMove(in *bufio.Scanner, out *termenv.Output, session *engine.Session) (engine.Cell, error) {
	for {
		fmt.Printf("%s to move (row col): ", colorMark(out, session.Turn()))

		if !in.Scan() {
			return engine.Cell{}, errInputClosed
		}

		var cell engine.Cell
		if _, err := fmt.Sscanf(strings.TrimSpace(in.Text()), "%d %d", &cell.Row, &cell.Col); err != nil {
			fmt.Println("could not read that, enter two numbers like: 1 2")
			continue
		}

		if !session.IsValidMove(cell) {
			fmt.Println("that cell is taken or off the board")
			continue
		}

		return cell, nil
	}
}

func printBoard(out *termenv.Output, board engine.Board) {
	fmt.Println()

	for row := 0; row < engine.Size; row++ {
		rendered := make([]string, 0, engine.Size)
		for col := 0; col < engine.Size; col++ {
			rendered = append(rendered, fmt.Sprintf(" %s ", renderCell(out, board[row][col])))
		}

		fmt.Println(strings.Join(rendered, "|"))

		if row < engine.Size-1 {
			fmt.Println("---+---+---")
		}
	}

	fmt.Println()
}

// renderCell - a colored mark, or a dot for an empty cell.
func renderCell(out *termenv.Output, mark engine.Mark) string {
	if mark == engine.Empty {
		return "."
	}

	return colorMark(out, mark)
}

// colorMark - X in red, O in blue.
func colorMark(out *termenv.Output, mark engine.Mark) string {
	color := "9"
	if mark == engine.O {
		color = "12"
	}

	return out.String(string(mark)).Foreground(out.Color(color)).Bold().String()
}

func printResult(out *termenv.Output, winner engine.Mark) {
	if winner == engine.Empty {
		fmt.Println("it's a draw")
		return
	}

	fmt.Printf("%s wins\n", colorMark(out, winner))
}
