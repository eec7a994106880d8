package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/Sheeplet1/gologo/canvas"
	"github.com/Sheeplet1/gologo/interp"
	"github.com/Sheeplet1/gologo/lang"
	"github.com/Sheeplet1/gologo/parser"
	"github.com/Sheeplet1/gologo/turtle"
)

func runREPL(width, height int) int {
	s := newSession(width, height)
	if !isInteractive() {
		return s.runBuffered(bufio.NewReader(os.Stdin))
	}
	return s.runInteractive()
}

// session holds one interactive run: a persistent canvas, turtle, and
// environment that statements accumulate into until reset.
type session struct {
	width, height int
	image         *canvas.Image
	turtle        *turtle.Turtle
	env           *lang.Env
	ex            *interp.Executor
}

func newSession(width, height int) *session {
	s := &session{width: width, height: height}
	s.reset()
	return s
}

func (s *session) reset() {
	s.image = canvas.NewImage(s.width, s.height)
	s.turtle = turtle.New(s.image)
	s.env = lang.NewEnv()
	s.ex = interp.New(s.turtle, s.env)
}

// eval parses and executes one buffered chunk of script, printing any
// error. Meta-commands are handled separately; eval reports whether the
// session should continue.
func (s *session) eval(src string) bool {
	if cmd := strings.TrimSpace(src); strings.HasPrefix(cmd, ":") {
		return s.metaCommand(cmd)
	}
	nodes, err := parser.ParseString(src, s.env)
	if err != nil {
		errorf("parse error: %v", err)
		return true
	}
	if err := s.ex.Execute(nodes); err != nil {
		errorf("execution error: %v", err)
		return true
	}
	fmt.Println(s.state())
	return true
}

func (s *session) metaCommand(cmd string) bool {
	fields := strings.Fields(cmd)
	switch fields[0] {
	case ":quit":
		return false
	case ":reset":
		s.reset()
		fmt.Println(s.state())
	case ":state":
		fmt.Println(s.state())
	case ":save":
		if len(fields) != 2 {
			errorf("usage: :save <image.svg|image.png>")
			return true
		}
		if err := saveImage(s.image, fields[1]); err != nil {
			errorf("%v", err)
			return true
		}
		fmt.Printf("saved %d segments to %s\n", len(s.image.Segments()), fields[1])
	default:
		errorf("unknown command %q (try :state, :save, :reset, :quit)", fields[0])
	}
	return true
}

func (s *session) state() string {
	pen := "up"
	if s.turtle.IsPenDown() {
		pen = "down"
	}
	return fmt.Sprintf("turtle: x=%.1f y=%.1f heading=%d pen=%s color=%d",
		s.turtle.X, s.turtle.Y, s.turtle.Heading, pen, s.turtle.PenColor)
}

func (s *session) runBuffered(reader *bufio.Reader) int {
	var buffer strings.Builder

	for {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			errorf("read error: %v", err)
			return 1
		}
		atEOF := errors.Is(err, io.EOF)
		buffer.WriteString(line)

		src := buffer.String()
		if strings.TrimSpace(src) != "" {
			if s.incomplete(src) && !atEOF {
				continue
			}
			buffer.Reset()
			if !s.eval(src) {
				return 0
			}
		}
		if atEOF {
			return 0
		}
	}
}

// incomplete reports whether src ends inside an open block, meaning more
// lines should be buffered before parsing for real.
func (s *session) incomplete(src string) bool {
	_, err := parser.ParseString(src, s.env)
	return parser.IsIncomplete(err)
}

func (s *session) runInteractive() int {
	state := liner.NewLiner()
	defer state.Close()
	state.SetCtrlCAborts(true)

	historyPath := replHistoryPath()
	if historyPath != "" {
		if f, err := os.Open(historyPath); err == nil {
			state.ReadHistory(f)
			f.Close()
		}
		defer func() {
			if f, err := os.Create(historyPath); err == nil {
				state.WriteHistory(f)
				f.Close()
			}
		}()
	}

	fmt.Println(s.state())

	var buffer strings.Builder
	for {
		prompt := "gologo> "
		if buffer.Len() > 0 {
			prompt = "....... "
		}
		input, err := state.Prompt(prompt)
		if err != nil {
			switch {
			case errors.Is(err, liner.ErrPromptAborted):
				fmt.Println()
				buffer.Reset()
				continue
			case errors.Is(err, io.EOF):
				fmt.Println()
				return 0
			default:
				errorf("read error: %v", err)
				return 1
			}
		}
		buffer.WriteString(input)
		buffer.WriteString("\n")

		src := buffer.String()
		if strings.TrimSpace(src) == "" {
			buffer.Reset()
			continue
		}
		if s.incomplete(src) {
			continue
		}
		buffer.Reset()
		if trimmed := strings.TrimSpace(src); trimmed != "" {
			state.AppendHistory(trimmed)
		}
		if !s.eval(src) {
			return 0
		}
	}
}

func replHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, ".gologo_history")
}

func isInteractive() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
