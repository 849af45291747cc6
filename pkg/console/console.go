package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	banner = "🇲🇦 Welcome to Morocco Travel Assistant! (Type 'quit' to exit)\n" +
		"You can ask about routes between major Moroccan cities\n" +
		"Example: How can I travel from Casablanca to Rabat?\n"

	quitCommand = "quit"
)

type QueryProcessor interface {
	ProcessQuery(text string) string
}

// Console. line oriented chat loop over any reader/writer pair
type Console struct {
	log       *zap.Logger
	processor QueryProcessor
	in        io.Reader
	out       io.Writer
	prompt    string
}

func New(processor QueryProcessor, in io.Reader, out io.Writer, prompt string, log *zap.Logger) *Console {
	return &Console{
		log:       log,
		processor: processor,
		in:        in,
		out:       out,
		prompt:    prompt,
	}
}

var errStopped = errors.New("console stopped")

/*
Run. answers every line until "quit" (any case), end of input, or ctx cancellation.
only a read or write error is returned; quitting and EOF return nil, cancellation returns ctx.Err().

the line reader and the answer loop run in one errgroup. when either stops, in is closed if it is an io.Closer
so a pending read returns; a reader that is neither finite nor closable keeps Run waiting for its next line.
*/
func (c *Console) Run(ctx context.Context) error {
	if _, err := io.WriteString(c.out, banner); err != nil {
		return err
	}

	lines := make(chan string)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return c.readLines(gctx, lines)
	})

	g.Go(func() error {
		return c.answerLines(gctx, lines)
	})

	g.Go(func() error {
		<-gctx.Done()
		if closer, ok := c.in.(io.Closer); ok {
			_ = closer.Close()
		}
		return nil
	})

	err := g.Wait()
	if errors.Is(err, errStopped) {
		return nil
	}
	return err
}

// readLines. lines of any length, without the trailing "\n" or "\r\n". lines is closed at end of input.
func (c *Console) readLines(ctx context.Context, lines chan<- string) error {
	reader := bufio.NewReader(c.in)
	for {
		line, err := reader.ReadString('\n')
		if len(line) > 0 {
			line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
			select {
			case lines <- line:
			case <-ctx.Done():
				return nil
			}
		}

		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if errors.Is(err, io.EOF) {
				close(lines)
				return nil
			}
			return fmt.Errorf("read query: %w", err)
		}
	}
}

func (c *Console) answerLines(ctx context.Context, lines <-chan string) error {
	for {
		if _, err := fmt.Fprintf(c.out, "\n%s", c.prompt); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			c.log.Info("console stopped", zap.Error(ctx.Err()))
			return ctx.Err()
		case query, ok := <-lines:
			if !ok {
				c.log.Info("end of input, console stopped")
				return errStopped
			}

			if strings.EqualFold(query, quitCommand) {
				c.log.Info("quit requested, console stopped")
				return errStopped
			}

			c.log.Debug("processing query", zap.Int("length", len(query)))
			answer := c.processor.ProcessQuery(query)
			if _, err := fmt.Fprintf(c.out, "\nAssistant: %s\n", answer); err != nil {
				return err
			}
		}
	}
}
