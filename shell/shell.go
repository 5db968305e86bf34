// Package shell is a small interactive console for playing and
// analyzing games against the engine.
package shell

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/daniig04/Projecte-PROP/automatic"
	"github.com/daniig04/Projecte-PROP/config"
	"github.com/daniig04/Projecte-PROP/game"
	"github.com/daniig04/Projecte-PROP/player"
)

type ShellController struct {
	l      *readline.Instance
	cfg    *config.Config
	pos    *game.Position
	engine *player.MinimaxPlayer
}

func usage(w io.Writer) {
	io.WriteString(w, "commands:\n")
	io.WriteString(w, "new [size] - start a new game\n")
	io.WriteString(w, "show - print the board\n")
	io.WriteString(w, "play <row> <col> - place a stone for the side to move\n")
	io.WriteString(w, "ai - let the engine move for the side to move\n")
	io.WriteString(w, "solve <depth> - run a fixed-depth search without playing the result\n")
	io.WriteString(w, "autoplay [games] - engine vs engine, report batch stats\n")
	io.WriteString(w, "depth <n> - fixed search depth; 0 switches to iterative deepening\n")
	io.WriteString(w, "timer <ms> - per-move budget for iterative deepening\n")
	io.WriteString(w, "exit - leave the shell\n")
}

func NewShellController(cfg *config.Config) (*ShellController, error) {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "oust> ",
		HistoryFile:     "/tmp/oust_readline.history",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, err
	}
	sc := &ShellController{l: l, cfg: cfg}
	sc.newGame(cfg.BoardSize)
	return sc, nil
}

func (sc *ShellController) newGame(size int) {
	sc.pos = game.NewPosition(size)
	sc.engine = sc.newEngine()
}

func (sc *ShellController) newEngine() *player.MinimaxPlayer {
	if sc.cfg.FixedDepth > 0 {
		return player.NewMinimaxPlayer("shell", sc.cfg.FixedDepth, sc.cfg.Evaluator())
	}
	return player.NewIterativePlayer("shell", sc.cfg.Evaluator())
}

func (sc *ShellController) Loop() {
	defer sc.l.Close()
	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			continue
		} else if err == io.EOF {
			break
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if done := sc.execute(fields[0], fields[1:]); done {
			break
		}
	}
	log.Debug().Msg("leaving shell")
}

func (sc *ShellController) execute(cmd string, args []string) bool {
	switch cmd {
	case "new":
		size := sc.cfg.BoardSize
		if len(args) > 0 {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 2 {
				sc.out("bad board size\n")
				return false
			}
			size = n
		}
		sc.newGame(size)
		sc.out(sc.pos.String())
	case "show":
		sc.out(sc.pos.String())
	case "play":
		sc.play(args)
	case "ai":
		sc.aiMove()
	case "solve":
		sc.solve(args)
	case "autoplay":
		sc.autoplay(args)
	case "depth":
		if len(args) == 1 {
			if n, err := strconv.Atoi(args[0]); err == nil && n >= 0 {
				sc.cfg.FixedDepth = n
				sc.engine = sc.newEngine()
				return false
			}
		}
		sc.out("usage: depth <n>\n")
	case "timer":
		if len(args) == 1 {
			if ms, err := strconv.Atoi(args[0]); err == nil && ms > 0 {
				sc.cfg.MoveTimeMs = ms
				return false
			}
		}
		sc.out("usage: timer <ms>\n")
	case "help":
		usage(sc.l.Stderr())
	case "exit", "quit":
		return true
	default:
		sc.out(fmt.Sprintf("unknown command %q; try help\n", cmd))
	}
	return false
}

func (sc *ShellController) play(args []string) {
	if sc.pos.GameOver() {
		sc.out("game is over; start a new one\n")
		return
	}
	if len(args) != 2 {
		sc.out("usage: play <row> <col>\n")
		return
	}
	row, err1 := strconv.Atoi(args[0])
	col, err2 := strconv.Atoi(args[1])
	if err1 != nil || err2 != nil {
		sc.out("usage: play <row> <col>\n")
		return
	}
	if err := sc.pos.PlaceStone(game.Point{Row: row, Col: col}); err != nil {
		sc.out(fmt.Sprintf("illegal move: %v\n", err))
		return
	}
	sc.out(sc.pos.String())
	sc.reportOutcome()
}

func (sc *ShellController) aiMove() {
	if sc.pos.GameOver() {
		sc.out("game is over; start a new one\n")
		return
	}
	if sc.cfg.FixedDepth == 0 && sc.cfg.MoveTimeMs > 0 {
		timer := time.AfterFunc(
			time.Duration(sc.cfg.MoveTimeMs)*time.Millisecond,
			sc.engine.TimeoutNotify)
		defer timer.Stop()
	}
	start := time.Now()
	mv := sc.engine.Move(sc.pos)
	if len(mv.Path) == 0 {
		sc.out("engine found no move\n")
		return
	}
	for _, pt := range mv.Path {
		if err := sc.pos.PlaceStone(pt); err != nil {
			sc.out(fmt.Sprintf("engine produced illegal move %v: %v\n", pt, err))
			return
		}
	}
	sc.out(fmt.Sprintf("%s plays %s [%v, %d nodes, depth %d, %v]\n",
		sc.engine.Name(), formatPath(mv.Path), mv.Kind, mv.NodesExplored,
		mv.DepthReached, time.Since(start).Round(time.Millisecond)))
	sc.out(sc.pos.String())
	sc.reportOutcome()
}

func (sc *ShellController) solve(args []string) {
	if len(args) != 1 {
		sc.out("usage: solve <depth>\n")
		return
	}
	depth, err := strconv.Atoi(args[0])
	if err != nil || depth < 1 {
		sc.out("usage: solve <depth>\n")
		return
	}
	probe := player.NewMinimaxPlayer("probe", depth, sc.cfg.Evaluator())
	mv := probe.Move(sc.pos.Copy())
	sc.out(fmt.Sprintf("best %s [%d nodes]\n", formatPath(mv.Path), mv.NodesExplored))
}

func (sc *ShellController) autoplay(args []string) {
	games := 1
	if len(args) > 0 {
		if n, err := strconv.Atoi(args[0]); err == nil && n > 0 {
			games = n
		}
	}
	stats, err := automatic.PlayBatch(context.Background(), sc.cfg, games, 1)
	if err != nil {
		sc.out(fmt.Sprintf("autoplay error: %v\n", err))
		return
	}
	stats.LogSummary()
	sc.out(fmt.Sprintf("games %d: black %d, white %d, draws %d\n",
		stats.Games, stats.BlackWins, stats.WhiteWins, stats.Draws))
}

func (sc *ShellController) reportOutcome() {
	if !sc.pos.GameOver() {
		return
	}
	if w := sc.pos.Winner(); w != game.None {
		sc.out(fmt.Sprintf("%v wins\n", w))
	} else {
		sc.out("draw\n")
	}
}

func formatPath(path []game.Point) string {
	return strings.Join(lo.Map(path, func(p game.Point, _ int) string {
		return p.String()
	}), " ")
}

func (sc *ShellController) out(s string) {
	io.WriteString(sc.l.Stdout(), s)
}
