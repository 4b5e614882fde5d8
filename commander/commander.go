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
package commander

import (
	"fmt"
	"strings"

	"github.com/timburks/ropey/operations"
	gott "github.com/timburks/ropey/types"
)

// The Commander converts user input into commands for the Editor.
type Commander struct {
	editor  gott.Editor
	mode    int    // editor mode
	prompt  int    // what the prompt is asking for
	input   string // prompt or lisp text as it is being typed
	message string // status message
	debug   bool   // debug mode displays information about events (key codes, etc)
}

func NewCommander(e gott.Editor) *Commander {
	c := &Commander{editor: e, mode: gott.ModeEdit}
	c.bindPrimitives()
	return c
}

func (c *Commander) GetMode() int {
	return c.mode
}

func (c *Commander) SetMode(m int) {
	c.mode = m
}

func (c *Commander) IsRunning() bool {
	return c.mode != gott.ModeQuit
}

func (c *Commander) SetDebug(debug bool) {
	c.debug = debug
}

// GetPrompt returns the label shown before the text being typed.
func (c *Commander) GetPrompt() string {
	switch c.mode {
	case gott.ModeLisp:
		return "lisp"
	case gott.ModePrompt:
		switch c.prompt {
		case gott.PromptSaveAs:
			return "Save as"
		case gott.PromptOpen:
			return "Open file"
		}
	}
	return ""
}

func (c *Commander) GetInput() string {
	return c.input
}

func (c *Commander) GetMessage() string {
	return c.message
}

func (c *Commander) ProcessEvent(event *gott.Event) error {
	if c.debug {
		c.message = fmt.Sprintf("event=%+v", event)
	}
	switch event.Type {
	case gott.EventKey:
		return c.ProcessKey(event)
	default:
		return nil
	}
}

func (c *Commander) ProcessKey(event *gott.Event) error {
	var err error
	switch c.mode {
	case gott.ModeEdit:
		err = c.ProcessKeyEditMode(event)
	case gott.ModePrompt:
		err = c.ProcessKeyPromptMode(event)
	case gott.ModeLisp:
		err = c.ProcessKeyLispMode(event)
	}
	return err
}

func (c *Commander) ProcessKeyEditMode(event *gott.Event) error {
	e := c.editor
	b := e.GetBuffer()

	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case gott.KeyCtrlQ:
			c.mode = gott.ModeQuit
		case gott.KeyCtrlA:
			if b.FileName() == "" {
				c.openPrompt(gott.PromptSaveAs)
				return nil
			}
			return c.save(e.Save())
		case gott.KeyCtrlO:
			c.openPrompt(gott.PromptOpen)
		case gott.KeyCtrlL:
			c.mode = gott.ModeLisp
			c.input = "("
		case gott.KeyCtrlZ:
			if !b.Undo() {
				c.message = "Nothing to undo"
			}
		case gott.KeyCtrlY:
			if !b.Redo() {
				c.message = "Nothing to redo"
			}
		case gott.KeyCtrlR:
			e.Repeat()
		case gott.KeyCtrlB:
			b.MoveWordLeft()
		case gott.KeyCtrlF:
			b.MoveWordRight()
		case gott.KeyHome:
			b.MoveToLineStart()
		case gott.KeyEnd:
			b.MoveToLineEnd()
		case gott.KeyArrowUp:
			b.MoveCursor(gott.MoveUp)
		case gott.KeyArrowDown:
			b.MoveCursor(gott.MoveDown)
		case gott.KeyArrowLeft:
			b.MoveCursor(gott.MoveLeft)
		case gott.KeyArrowRight:
			b.MoveCursor(gott.MoveRight)
		//
		// edits are performed so that they can be repeated
		//
		case gott.KeyEnter:
			e.Perform(&operations.Insert{Text: "\n"}, 1)
		case gott.KeyTab:
			e.Perform(&operations.Insert{Text: "\t"}, 1)
		case gott.KeySpace:
			e.Perform(&operations.Insert{Text: " "}, 1)
		case gott.KeyBackspace:
			e.Perform(&operations.Backspace{Count: 1}, 1)
		case gott.KeyCtrlK:
			e.Perform(&operations.DeleteLine{}, 1)
		case gott.KeyCtrlN:
			e.Perform(&operations.NewlineBelow{}, 1)
		case gott.KeyCtrlP:
			e.Perform(&operations.NewlineAbove{}, 1)
		}
		return nil
	}
	if ch != 0 {
		e.Perform(&operations.Insert{Text: string(ch)}, 1)
	}
	return nil
}

func (c *Commander) ProcessKeyPromptMode(event *gott.Event) error {
	if c.editLine(event) {
		return c.PerformPrompt()
	}
	return nil
}

func (c *Commander) ProcessKeyLispMode(event *gott.Event) error {
	if c.editLine(event) {
		c.message = c.ParseEval(c.input)
		c.closePrompt()
	}
	return nil
}

// editLine applies a key to the text being typed at the prompt. It returns
// true when the text has been entered.
func (c *Commander) editLine(event *gott.Event) bool {
	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case gott.KeyEsc:
			c.closePrompt()
		case gott.KeyEnter:
			return true
		case gott.KeyBackspace:
			if r := []rune(c.input); len(r) > 0 {
				c.input = string(r[:len(r)-1])
			}
		case gott.KeySpace:
			c.input += " "
		case gott.KeyTab:
			c.input += "\t"
		}
		return false
	}
	if ch != 0 {
		c.input += string(ch)
	}
	return false
}

// PerformPrompt acts on a file name entered at the prompt.
func (c *Commander) PerformPrompt() error {
	e := c.editor
	name := strings.TrimSpace(c.input)
	purpose := c.prompt
	c.closePrompt()
	if name == "" {
		c.message = "No file name given"
		return nil
	}
	switch purpose {
	case gott.PromptSaveAs:
		return c.save(e.SaveAs(name))
	case gott.PromptOpen:
		if err := e.ReadFile(name); err != nil {
			c.message = fmt.Sprintf("Failed to open %s: %v", name, err)
			return err
		}
		c.message = fmt.Sprintf("Opened %s", name)
	}
	return nil
}

func (c *Commander) openPrompt(purpose int) {
	c.mode = gott.ModePrompt
	c.prompt = purpose
	c.input = ""
}

func (c *Commander) closePrompt() {
	c.mode = gott.ModeEdit
	c.prompt = gott.PromptNone
	c.input = ""
}

func (c *Commander) save(err error) error {
	b := c.editor.GetBuffer()
	if err != nil {
		c.message = fmt.Sprintf("Failed to save %s: %v", b.FileName(), err)
		return err
	}
	c.message = fmt.Sprintf("Wrote %d characters to %s", b.Length(), b.FileName())
	return nil
}
