// Package console - текстовый интерфейс игры Mines поверх движка, без базы и сети.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	engine "mines_backend/internal/engine/mines"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	hiddenCell = '?'
	gemCell    = '*'
	mineCell   = 'X'
)

const helpText = `commands:
  start <mines> <bet>        start a round with 1-24 mines
  reveal <index>             reveal a cell 0-24
  reveal <row> <col>         reveal a cell by row and column 0-4
  cashout                    take the current win
  balance                    show balance
  help                       show this help
  quit                       exit`

var errQuit = errors.New("quit")

// Game Консольная партия: одна сессия с балансом и текущим раундом
type Game struct {
	engine  *engine.Engine
	session *engine.Session
	out     io.Writer
}

func NewGame(eng *engine.Engine, balance decimal.Decimal, out io.Writer) *Game {
	return &Game{
		engine:  eng,
		session: engine.NewSession(balance),
		out:     out,
	}
}

func (g *Game) Balance() decimal.Decimal {
	return g.session.Balance()
}

// Run Читает команды построчно до quit, конца ввода или отмены ctx.
// Ошибки игры печатаются и не прерывают цикл
func (g *Game) Run(ctx context.Context, in io.Reader) error {
	fmt.Fprintf(g.out, "balance: %s\n%s\n", g.session.Balance().StringFixed(2), helpText)

	scanner := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(g.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(g.out)
			return scanner.Err()
		}

		err := g.Exec(scanner.Text())
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(g.out, "error: %v\n", err)
		}
	}
}

// Exec Выполняет одну команду
func (g *Game) Exec(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	cmd, args := strings.ToLower(fields[0]), fields[1:]
	switch cmd {
	case "start", "s":
		return g.start(args)
	case "reveal", "r":
		return g.reveal(args)
	case "cashout", "c":
		return g.cashout()
	case "balance", "b":
		fmt.Fprintf(g.out, "balance: %s\n", g.session.Balance().StringFixed(2))
		return nil
	case "help", "h":
		fmt.Fprintln(g.out, helpText)
		return nil
	case "quit", "q", "exit":
		return errQuit
	default:
		return fmt.Errorf("unknown command %q, type help", cmd)
	}
}

func (g *Game) start(args []string) error {
	if len(args) != 2 {
		return errors.New("usage: start <mines> <bet>")
	}
	mineCount, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("mines: %w", err)
	}
	bet, err := decimal.NewFromString(args[1])
	if err != nil {
		return fmt.Errorf("bet: %w", err)
	}

	if _, err := g.session.Start(g.engine, mineCount, bet); err != nil {
		return err
	}

	fmt.Fprintf(g.out, "round started: %d mines, bet %s, balance %s\n",
		mineCount, bet.StringFixed(2), g.session.Balance().StringFixed(2))
	g.render()
	return nil
}

func (g *Game) reveal(args []string) error {
	index, err := parseCell(args)
	if err != nil {
		return err
	}

	res, err := g.session.Reveal(g.engine, index)
	if err != nil {
		return err
	}

	switch outcome := res.Outcome.(type) {
	case engine.MineHit:
		g.render()
		fmt.Fprintf(g.out, "boom! mine at %d, round lost. balance %s\n",
			outcome.Index, g.session.Balance().StringFixed(2))
	case engine.SafeReveal:
		g.render()
		if res.AutoCashout {
			fmt.Fprintf(g.out, "board cleared! won %s, balance %s\n",
				res.Payout.StringFixed(2), res.Balance.StringFixed(2))
			return nil
		}
		fmt.Fprintf(g.out, "gem! multiplier x%s, potential win %s\n",
			outcome.Multiplier.StringFixed(2), outcome.PotentialWin.StringFixed(2))
	}
	return nil
}

func (g *Game) cashout() error {
	round := g.session.Round()
	mult, _ := round.Multiplier()

	payout, err := g.session.Cashout(g.engine)
	if err != nil {
		return err
	}

	g.render()
	fmt.Fprintf(g.out, "cashed out x%s: won %s, balance %s\n",
		mult.StringFixed(2), payout.StringFixed(2), g.session.Balance().StringFixed(2))
	return nil
}

func (g *Game) render() {
	fmt.Fprint(g.out, Render(g.session.Round()))
}

// parseCell Принимает индекс 0-24 или пару строка/столбец 0-4
func parseCell(args []string) (int, error) {
	switch len(args) {
	case 1:
		index, err := strconv.Atoi(args[0])
		if err != nil {
			return 0, fmt.Errorf("index: %w", err)
		}
		return index, nil
	case 2:
		row, err := strconv.Atoi(args[0])
		if err != nil {
			return 0, fmt.Errorf("row: %w", err)
		}
		col, err := strconv.Atoi(args[1])
		if err != nil {
			return 0, fmt.Errorf("col: %w", err)
		}
		if row < 0 || row >= engine.GridSide || col < 0 || col >= engine.GridSide {
			return 0, engine.ErrInvalidCell
		}
		return row*engine.GridSide + col, nil
	default:
		return 0, errors.New("usage: reveal <index> | reveal <row> <col>")
	}
}

// Render Рисует поле 5x5 и строку состояния раунда. Мины видны только после завершения раунда
func Render(round *engine.Round) string {
	var mines [engine.GridSize]bool
	for _, i := range round.Mines() {
		mines[i] = true
	}

	var b strings.Builder
	b.WriteString("    0 1 2 3 4\n")
	for row := 0; row < engine.GridSide; row++ {
		fmt.Fprintf(&b, "%d  ", row)
		for col := 0; col < engine.GridSide; col++ {
			i := row*engine.GridSide + col
			cell := hiddenCell
			switch {
			case round.IsRevealed(i):
				cell = gemCell
			case mines[i]:
				cell = mineCell
			}
			b.WriteByte(' ')
			b.WriteByte(byte(cell))
		}
		b.WriteByte('\n')
	}

	if round.Status() == engine.StatusIdle {
		return b.String()
	}

	mult, _ := round.Multiplier()
	fmt.Fprintf(&b, "%s | mines %d | revealed %d/%d | x%s | win %s\n",
		round.Status(), round.MineCount(), round.RevealedCount(), round.SafeCells(),
		mult.StringFixed(2), round.PotentialWin().StringFixed(2))
	return b.String()
}
