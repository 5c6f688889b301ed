// Package console adapts an interactive terminal to the engine's player
// contract: prompts and notices out, command lines in.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/heartsforbots/internal/hearts"
)

var (
	promptStyle = lipgloss.NewStyle().Bold(true)
	inputStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	redCard     = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

var cardTokenRe = regexp.MustCompile(`\b([X2-9TJQKA])([CDHS])\b`)

// Player is a line-based human player. One goroutine owns the input reader
// so a cancelled context can abandon a pending read without losing lines.
type Player struct {
	name  string
	out   io.Writer
	lines chan string
	view  hearts.View
}

// New creates a console player reading commands from in and writing prompts
// and notices to out.
func New(name string, in io.Reader, out io.Writer) *Player {
	p := &Player{
		name:  name,
		out:   out,
		lines: make(chan string),
	}
	go func() {
		defer close(p.lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			p.lines <- scanner.Text()
		}
	}()
	return p
}

func (p *Player) Name() string { return p.name }

func (p *Player) Join(view hearts.View) {
	p.view = view
	fmt.Fprintln(p.out, promptStyle.Render(fmt.Sprintf("Welcome to Hearts, %s. You are seat %d.", p.name, view.Seat()+1)))
	fmt.Fprintf(p.out, "At the table: %s.\n", strings.Join(view.PlayerNames(), ", "))
}

func (p *Player) Notify(message string) {
	fmt.Fprintln(p.out, colorizeCards(message))
}

func (p *Player) ReportError(message string) {
	fmt.Fprintln(p.out, errorStyle.Render(message))
}

func (p *Player) RequestText(ctx context.Context, prompt hearts.Prompt) (string, error) {
	fmt.Fprintln(p.out, promptStyle.Render(colorizeCards(prompt.Text)))
	fmt.Fprint(p.out, inputStyle.Render("> "))
	return p.readLine(ctx)
}

// RequestInt re-prompts locally until the response is an integer in range,
// so only well-formed answers reach the engine.
func (p *Player) RequestInt(ctx context.Context, prompt hearts.Prompt, low, high int) (int, error) {
	for {
		fmt.Fprintln(p.out, promptStyle.Render(fmt.Sprintf("%s (%d-%d)", prompt.Text, low, high)))
		fmt.Fprint(p.out, inputStyle.Render("> "))
		line, err := p.readLine(ctx)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			p.ReportError(fmt.Sprintf("%q is not a number", strings.TrimSpace(line)))
			continue
		}
		if n < low || n > high {
			p.ReportError(fmt.Sprintf("%d is out of range, choose %d-%d", n, low, high))
			continue
		}
		return n, nil
	}
}

func (p *Player) readLine(ctx context.Context) (string, error) {
	select {
	case line, ok := <-p.lines:
		if !ok {
			return "", io.EOF
		}
		return line, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// colorizeCards renders red-suit card tokens in red.
func colorizeCards(text string) string {
	return cardTokenRe.ReplaceAllStringFunc(text, func(tok string) string {
		switch tok[1] {
		case 'H', 'D':
			return redCard.Render(tok)
		default:
			return tok
		}
	})
}
