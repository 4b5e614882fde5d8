//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/timburks/ropey/commander"
	"github.com/timburks/ropey/config"
	"github.com/timburks/ropey/editor"
	"github.com/timburks/ropey/screen"
)

var errNoTerminal = errors.New("ropey needs a terminal; use --eval to run without one")

type arguments struct {
	filenames  []string
	script     string
	configPath string
}

func parseArguments(args []string) (*arguments, error) {
	a := &arguments{}
	for i := 0; i < len(args); i++ {
		argi := args[i]
		switch argi {
		case "--eval": // eval expression
			i++
			if i >= len(args) {
				return nil, errors.New("no expression specified for --eval option")
			}
			a.script = args[i]
		case "--config":
			i++
			if i >= len(args) {
				return nil, errors.New("no file specified for --config option")
			}
			a.configPath = args[i]
		default:
			a.filenames = append(a.filenames, argi)
		}
	}
	return a, nil
}

func loadSettings(path string) (config.Settings, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}

// openFile loads filename into the editor. A file that does not exist yet
// gives an empty buffer that will be saved under that name.
func openFile(e *editor.Editor, filename string) error {
	fileinfo, err := os.Stat(filename)
	if errors.Is(err, fs.ErrNotExist) {
		e.Buffer.SetFileName(filename)
		return nil
	}
	if err != nil {
		return err
	}
	if fileinfo.IsDir() {
		return fmt.Errorf("%s is a directory", filename)
	}
	return e.ReadFile(filename)
}

func run(args []string, stdout io.Writer) error {
	a, err := parseArguments(args)
	if err != nil {
		return err
	}
	settings, err := loadSettings(a.configPath)
	if err != nil {
		return err
	}

	// Open a log file.
	f, err := os.OpenFile(settings.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()
	log.SetOutput(f)
	defer log.SetOutput(os.Stderr)

	// The editor manages all text manipulation.
	e := editor.NewEditor(editor.Options{
		UndoLimit: settings.UndoLimit,
		MaxLeaf:   settings.Rope.MaxLeaf,
		Rebalance: settings.RebalanceEnabled(),
	})

	// The commander converts user inputs into commands for the editor.
	c := commander.NewCommander(e)

	if len(a.filenames) > 0 {
		if err := openFile(e, a.filenames[0]); err != nil {
			return err
		}
		for _, filename := range a.filenames[1:] {
			log.Printf("Only one file is edited at a time, ignoring %s", filename)
		}
	}

	if a.script != "" {
		// Run a script and exit.
		fmt.Fprintln(stdout, c.ParseEval(a.script))
		return nil
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errNoTerminal
	}

	// Create a screen to manage display.
	s := screen.NewScreen(settings.TabWidth)
	if s == nil {
		return errors.New("unable to open the terminal")
	}
	defer s.Close()

	// Run the main event loop.
	for c.IsRunning() {
		s.Render(e, c)
		err = c.ProcessEvent(s.GetNextEvent())
		if err != nil {
			log.Output(1, err.Error())
		}
	}
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
