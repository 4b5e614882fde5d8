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
	"errors"
	"fmt"
	"log"

	"github.com/steelseries/golisp"
	"github.com/timburks/ropey/operations"
	gott "github.com/timburks/ropey/types"
)

type primitive func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error)

// bindPrimitives makes the editor scriptable. Primitives are global to the
// interpreter, so the most recently created Commander receives them.
func (c *Commander) bindPrimitives() {
	for name, fn := range map[string]primitive{
		"insert":        c.insertImpl,
		"backspace":     c.editImpl(func(n int) gott.Operation { return &operations.Backspace{Count: n} }),
		"newline-above": c.editImpl(func(int) gott.Operation { return &operations.NewlineAbove{} }),
		"newline-below": c.editImpl(func(int) gott.Operation { return &operations.NewlineBelow{} }),
		"delete-line":   c.editImpl(func(int) gott.Operation { return &operations.DeleteLine{} }),
		"left":          c.moveImpl(func(b gott.Buffer) { b.MoveCursor(gott.MoveLeft) }),
		"right":         c.moveImpl(func(b gott.Buffer) { b.MoveCursor(gott.MoveRight) }),
		"up":            c.moveImpl(func(b gott.Buffer) { b.MoveCursor(gott.MoveUp) }),
		"down":          c.moveImpl(func(b gott.Buffer) { b.MoveCursor(gott.MoveDown) }),
		"word-left":     c.moveImpl(func(b gott.Buffer) { b.MoveWordLeft() }),
		"word-right":    c.moveImpl(func(b gott.Buffer) { b.MoveWordRight() }),
		"line-start":    c.moveImpl(func(b gott.Buffer) { b.MoveToLineStart() }),
		"line-end":      c.moveImpl(func(b gott.Buffer) { b.MoveToLineEnd() }),
		"buffer-start":  c.moveImpl(func(b gott.Buffer) { b.MoveToStart() }),
		"buffer-end":    c.moveImpl(func(b gott.Buffer) { b.MoveToEnd() }),
		"undo":          c.historyImpl(func(b gott.Buffer) bool { return b.Undo() }),
		"redo":          c.historyImpl(func(b gott.Buffer) bool { return b.Redo() }),
		"text":          c.textImpl,
		"line":          c.lineImpl,
		"cursor":        c.queryImpl(func(b gott.Buffer) int { return b.CursorIndex() }),
		"row":           c.queryImpl(func(b gott.Buffer) int { return b.Cursor().Row }),
		"col":           c.queryImpl(func(b gott.Buffer) int { return b.Cursor().Col }),
		"length":        c.queryImpl(func(b gott.Buffer) int { return b.Length() }),
		"line-count":    c.queryImpl(func(b gott.Buffer) int { return b.LineCount() }),
		"save":          c.saveImpl,
		"diff":          c.diffImpl,
	} {
		golisp.MakePrimitiveFunction(name, "*", fn)
	}
	golisp.MakePrimitiveFunction("save-as", "1", c.saveAsImpl)
}

// ParseEval evaluates a lisp expression and returns its printed value or
// the error that stopped it.
func (c *Commander) ParseEval(command string) string {
	value, err := golisp.ParseAndEval(command)
	if err != nil {
		log.Printf("ERR %+v", err)
		return err.Error()
	}
	log.Printf("SEXPR %+v", golisp.String(value))
	return golisp.String(value)
}

func (c *Commander) cursorResult() *golisp.Data {
	return golisp.IntegerWithValue(int64(c.editor.GetBuffer().CursorIndex()))
}

func (c *Commander) insertImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return nil, errors.New("insert requires a string argument")
	}
	c.editor.Perform(&operations.Insert{Text: golisp.StringValue(val)}, 1)
	return c.cursorResult(), nil
}

func (c *Commander) editImpl(op func(n int) gott.Operation) primitive {
	return func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		n, err := countArgument(args)
		if err != nil {
			return nil, err
		}
		c.editor.Perform(op(n), 1)
		return c.cursorResult(), nil
	}
}

func (c *Commander) moveImpl(move func(b gott.Buffer)) primitive {
	return func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		n, err := countArgument(args)
		if err != nil {
			return nil, err
		}
		b := c.editor.GetBuffer()
		for i := 0; i < n; i++ {
			move(b)
		}
		return c.cursorResult(), nil
	}
}

func (c *Commander) historyImpl(step func(b gott.Buffer) bool) primitive {
	return func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		return golisp.BooleanWithValue(step(c.editor.GetBuffer())), nil
	}
}

func (c *Commander) queryImpl(query func(b gott.Buffer) int) primitive {
	return func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		return golisp.IntegerWithValue(int64(query(c.editor.GetBuffer()))), nil
	}
}

func (c *Commander) textImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return golisp.StringWithValue(c.editor.GetBuffer().Text()), nil
}

func (c *Commander) lineImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	b := c.editor.GetBuffer()
	row := b.Cursor().Row
	if !golisp.NilP(args) {
		val := golisp.Car(args)
		if !golisp.IntegerP(val) {
			return nil, errors.New("line requires an integer argument")
		}
		row = int(golisp.IntegerValue(val))
	}
	if row < 0 || row >= b.LineCount() {
		return nil, fmt.Errorf("line %d is out of range", row)
	}
	return golisp.StringWithValue(b.Line(row)), nil
}

func (c *Commander) saveImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if err := c.editor.Save(); err != nil {
		return nil, err
	}
	return golisp.IntegerWithValue(int64(c.editor.GetBuffer().Length())), nil
}

func (c *Commander) saveAsImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return nil, errors.New("save-as requires a string argument")
	}
	if err := c.editor.SaveAs(golisp.StringValue(val)); err != nil {
		return nil, err
	}
	return golisp.IntegerWithValue(int64(c.editor.GetBuffer().Length())), nil
}

func (c *Commander) diffImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	diff, err := c.editor.Diff()
	if err != nil {
		return nil, err
	}
	return golisp.StringWithValue(diff), nil
}

// countArgument reads an optional repeat count, defaulting to one.
func countArgument(args *golisp.Data) (int, error) {
	if golisp.NilP(args) {
		return 1, nil
	}
	val := golisp.Car(args)
	if !golisp.IntegerP(val) {
		return 0, errors.New("expected an integer count")
	}
	n := int(golisp.IntegerValue(val))
	if n < 0 {
		return 0, fmt.Errorf("count must not be negative: %d", n)
	}
	return n, nil
}
