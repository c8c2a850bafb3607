// Package terminal is a line-oriented browser over the screen controllers:
// competitions, then a competition's matches, then one match.
package terminal

import (
	"bufio"
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/riskibarqy/football-center/internal/platform/logging"
	"github.com/riskibarqy/football-center/internal/presentation"
	"github.com/riskibarqy/football-center/internal/usecase"
	"github.com/valyala/bytebufferpool"
)

// Browser keeps a stack of pages. Leaving a page closes its screen so a
// fetch that finishes afterwards is dropped.
type Browser struct {
	screens *usecase.Screens
	catalog *presentation.Catalog
	in      io.Reader
	out     io.Writer
	logger  *logging.Logger
	stack   []page
}

func NewBrowser(screens *usecase.Screens, in io.Reader, out io.Writer, logger *logging.Logger) *Browser {
	if logger == nil {
		logger = logging.Default()
	}
	return &Browser{
		screens: screens,
		catalog: screens.Views().Catalog(),
		in:      in,
		out:     out,
		logger:  logger.Named("terminal"),
	}
}

// Run shows the competition list and executes commands until q, end of
// input, or ctx is done.
func (b *Browser) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer b.closeAll()

	lines, scanErr := readLines(ctx, b.in)
	b.push(ctx, newHomePage(b.screens))

	for {
		b.prompt()

		var line string
		var ok bool
		select {
		case <-ctx.Done():
			return nil
		case line, ok = <-lines:
		}
		if !ok {
			return <-scanErr
		}

		if quit := b.handle(ctx, strings.TrimSpace(line)); quit {
			return nil
		}
	}
}

func (b *Browser) handle(ctx context.Context, cmd string) (quit bool) {
	top := b.top()
	switch strings.ToLower(cmd) {
	case "":
		b.render(top)
	case "q":
		return true
	case "b":
		if len(b.stack) == 1 {
			return true
		}
		top.close()
		b.stack = b.stack[:len(b.stack)-1]
		b.load(ctx, b.top())
	case "r":
		if !top.failed() {
			b.notice(b.catalog.Text(presentation.MsgUnknownCommand, cmd))
			return false
		}
		b.load(ctx, top)
	default:
		row, err := strconv.Atoi(cmd)
		if err != nil {
			b.notice(b.catalog.Text(presentation.MsgUnknownCommand, cmd))
			return false
		}
		next, ok := top.open(row)
		if !ok {
			b.notice(b.catalog.Text(presentation.MsgNoSuchRow, row))
			return false
		}
		b.push(ctx, next)
	}
	return false
}

func (b *Browser) push(ctx context.Context, p page) {
	b.stack = append(b.stack, p)
	b.load(ctx, p)
}

func (b *Browser) load(ctx context.Context, p page) {
	b.notice(b.catalog.Text(p.loadingKey()))
	p.load(ctx)
	if p.failed() {
		b.logger.DebugContext(ctx, "page load failed", "page", p.name())
	}
	b.render(p)
}

func (b *Browser) top() page {
	return b.stack[len(b.stack)-1]
}

func (b *Browser) closeAll() {
	for i := len(b.stack) - 1; i >= 0; i-- {
		b.stack[i].close()
	}
	b.stack = nil
}

func (b *Browser) render(p page) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	p.render(buf, b.catalog)
	_, _ = b.out.Write(buf.B)
}

func (b *Browser) prompt() {
	top := b.top()
	key := presentation.MsgPromptDetail
	switch {
	case top.failed():
		key = presentation.MsgPromptError
	case top.selectable():
		key = presentation.MsgPromptList
	}
	b.notice("[" + b.catalog.Text(key) + "] > ")
}

func (b *Browser) notice(text string) {
	if !strings.HasSuffix(text, " ") {
		text += "\n"
	}
	_, _ = io.WriteString(b.out, text)
}

// readLines scans in on its own goroutine so Run can stop on ctx while a
// read is blocked.
func readLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errs := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				errs <- nil
				return
			}
		}
		errs <- scanner.Err()
	}()
	return lines, errs
}
