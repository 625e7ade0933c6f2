// Package play is a terminal front end that drives the statgen engine
// directly: it renders pools and prompts and reads commands line by line.
package play

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	statgenengine "github.com/KirkDiggler/rpg-statgen/internal/engine/statgen"
	"github.com/KirkDiggler/rpg-statgen/internal/entities"
	"github.com/KirkDiggler/rpg-statgen/internal/errors"
)

// ErrQuit is returned when the player leaves before committing
var ErrQuit = errors.New(errors.CodeCanceled, "player quit")

// Config holds the dependencies of a Game
type Config struct {
	In        io.Reader
	Out       io.Writer
	Generator statgenengine.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.In == nil {
		vb.RequiredField("In")
	}
	if c.Out == nil {
		vb.RequiredField("Out")
	}
	if c.Generator == nil {
		vb.RequiredField("Generator")
	}
	return vb.Build()
}

// Result is the accepted score set
type Result struct {
	Method entities.Method
	Scores entities.AbilityScoreSet
}

// Game is one interactive generation run
type Game struct {
	in        *bufio.Scanner
	out       io.Writer
	generator statgenengine.Generator
}

// New creates a game
func New(cfg *Config) (*Game, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Game{
		in:        bufio.NewScanner(cfg.In),
		out:       cfg.Out,
		generator: cfg.Generator,
	}, nil
}

// Run asks for a method and plays it until scores are accepted. It returns
// ErrQuit when the player quits or input ends.
func (g *Game) Run(ctx context.Context) (*Result, error) {
	g.printMethods()

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		line, ok := g.ask("Choose a method (1-3)")
		if !ok || isQuit(line) {
			return nil, ErrQuit
		}

		method, err := parseMethodChoice(line)
		if err != nil {
			g.printf("%s\n", errors.GetMessage(err))
			continue
		}

		var scores entities.AbilityScoreSet
		switch method {
		case entities.MethodPriority:
			scores, err = g.playPriority()
		case entities.MethodHardcore:
			scores, err = g.playHardcore()
		case entities.MethodBestThreeOfFour:
			scores, err = g.playBestThreeOfFour(ctx)
		}
		if err != nil {
			return nil, err
		}

		return &Result{Method: method, Scores: scores}, nil
	}
}

func (g *Game) playPriority() (entities.AbilityScoreSet, error) {
	for {
		most, ok := g.askAttribute("Most important ability")
		if !ok {
			return nil, ErrQuit
		}
		least, ok := g.askAttribute("Least important ability")
		if !ok {
			return nil, ErrQuit
		}

		scores, err := g.generator.GeneratePriority(most, least)
		if statgenengine.IsInvalidInput(err) {
			g.printf("%s\n", errors.GetMessage(err))
			continue
		}
		if err != nil {
			return nil, err
		}

		g.printScores(scores)
		return scores, nil
	}
}

func (g *Game) playHardcore() (entities.AbilityScoreSet, error) {
	scores, err := g.generator.GenerateHardcore()
	if err != nil {
		return nil, err
	}
	g.printScores(scores)
	return scores, nil
}

func (g *Game) playBestThreeOfFour(ctx context.Context) (entities.AbilityScoreSet, error) {
	session, err := statgenengine.StartSession(g.generator)
	if err != nil {
		return nil, err
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		g.printSession(session)
		line, ok := g.ask("pick N, reset, reroll, commit or quit")
		if !ok {
			return nil, ErrQuit
		}

		fields := strings.Fields(strings.ToLower(line))
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "pick", "p":
			if len(fields) != 2 {
				g.printf("Usage: pick N\n")
				continue
			}
			position, convErr := strconv.Atoi(fields[1])
			if convErr != nil {
				g.printf("%q is not a pool position\n", fields[1])
				continue
			}
			if err := session.Pick(position); err != nil {
				g.printf("%s\n", errors.GetMessage(err))
			}
		case "reset":
			session.Reset()
		case "reroll":
			if _, err := session.Reroll(); err != nil {
				return nil, err
			}
		case "commit":
			scores, err := session.Commit()
			if statgenengine.IsIncompleteAssignment(err) {
				g.printf("%s\n", errors.GetMessage(err))
				continue
			}
			if err != nil {
				return nil, err
			}
			return scores, nil
		case "quit", "q":
			return nil, ErrQuit
		default:
			g.printf("Unknown command %q\n", fields[0])
		}
	}
}

func (g *Game) ask(prompt string) (string, bool) {
	g.printf("%s> ", prompt)
	if !g.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(g.in.Text()), true
}

func (g *Game) askAttribute(prompt string) (entities.Attribute, bool) {
	for {
		line, ok := g.ask(prompt)
		if !ok || isQuit(line) {
			return "", false
		}
		attr, err := entities.ParseAttribute(line)
		if err != nil {
			g.printf("%s\n", errors.GetMessage(err))
			continue
		}
		return attr, true
	}
}

func (g *Game) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(g.out, format, args...)
}

func (g *Game) printMethods() {
	for i, info := range entities.Methods() {
		g.printf("%d. %s: %s\n", i+1, info.Name, info.Summary)
	}
}

func (g *Game) printScores(scores entities.AbilityScoreSet) {
	for _, attr := range entities.Attributes() {
		v := scores[attr]
		g.printf("  %s %2d (%s)\n", attr.Short(), v, entities.FormatModifier(entities.Modifier(v)))
	}
}

func (g *Game) printSession(session *statgenengine.Session) {
	pool := session.Pool()
	g.printf("\nPool:")
	for i, entry := range pool {
		if session.IsConsumed(i) {
			g.printf("  [%d] --", i)
			continue
		}
		g.printf("  [%d] %d", i, entry.Value)
	}
	g.printf("\n")

	assigned := session.Assigned()
	for _, attr := range entities.Attributes() {
		if v, ok := assigned[attr]; ok {
			g.printf("  %s %2d (%s)\n", attr.Short(), v, entities.FormatModifier(entities.Modifier(v)))
		}
	}
	g.printf("%s\n", session.Prompt())
}

func parseMethodChoice(line string) (entities.Method, error) {
	if n, err := strconv.Atoi(line); err == nil {
		methods := entities.Methods()
		if n < 1 || n > len(methods) {
			return "", errors.InvalidArgumentf("choose a method between 1 and %d", len(methods))
		}
		return methods[n-1].Method, nil
	}
	return entities.ParseMethod(line)
}

func isQuit(line string) bool {
	switch strings.ToLower(line) {
	case "q", "quit", "exit":
		return true
	}
	return false
}
