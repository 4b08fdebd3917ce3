// jobject-tester is an interactive inspector for a jobject property
// tree. It seeds a root object with sample values and accepts simple
// commands (get, set, call, names, ...) against dot-separated paths.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jobject-lang/jobject"
	"golang.org/x/term"
)

func main() {
	root := jobject.NewObject()
	seed(root)

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		runTerminal(root, fd)
		return
	}
	runPlain(root)
}

// seed fills the root object with a small tree to poke at.
func seed(root *jobject.Object) {
	root.Set("greeting", jobject.From("hello"))
	root.Set("items", jobject.From([]int{1, 2, 3}))
	root.Set("now", jobject.FromHolder(jobject.NewDate()))

	user := jobject.NewObject()
	user.Set("name", jobject.From("alice"))
	jobject.DefineReadOnly(user, "shout", func() jobject.Value {
		return jobject.From(strings.ToUpper(jobject.ToString(user.Get("name"))) + "!")
	})
	root.Set("user", jobject.FromHolder(user))

	root.Set("double", jobject.FromHolder(jobject.NewFunction("double", func(args []jobject.Value) jobject.Value {
		if len(args) == 0 {
			return jobject.Absent()
		}
		return jobject.FromFloat(jobject.ToNumber(args[0]) * 2)
	})))
}

// runTerminal drives the inspector through a raw-mode line editor.
func runTerminal(root *jobject.Object, fd int) {
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		runPlain(root)
		return
	}
	defer term.Restore(fd, oldState)

	screen := struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout}
	t := term.NewTerminal(screen, "% ")
	if w, h, err := term.GetSize(fd); err == nil {
		t.SetSize(w, h)
	}

	fmt.Fprintln(t, "jobject inspector; type 'help' for commands, 'exit' to quit")
	for {
		line, err := t.ReadLine()
		if err != nil {
			return
		}
		out, quit := execute(root, line)
		if out != "" {
			fmt.Fprintln(t, out)
		}
		if quit {
			return
		}
	}
}

// runPlain is the non-TTY fallback: one command per stdin line.
func runPlain(root *jobject.Object) {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("% ")
		if !scanner.Scan() {
			break
		}
		out, quit := execute(root, scanner.Text())
		if out != "" {
			fmt.Println(out)
		}
		if quit {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "error reading input: %v\n", err)
	}
}

const helpText = `commands:
  get PATH             resolve and render a property
  kind PATH            show the resolved value's kind
  set PATH VALUE       write a property (reports ok/rejected)
  def PATH VALUE       define a read-only, non-configurable property
  del PATH             delete a property
  has PATH             check for a stored descriptor
  names [PATH]         list enumerable property names
  call PATH [ARG...]   invoke a function property
  help, exit`

func execute(root *jobject.Object, line string) (string, bool) {
	args := tokenize(line)
	if len(args) == 0 {
		return "", false
	}
	cmd, args := args[0], args[1:]

	switch cmd {
	case "help":
		return helpText, false
	case "exit", "quit":
		return "", true
	case "get":
		if len(args) != 1 {
			return "usage: get PATH", false
		}
		v, err := lookup(root, args[0])
		if err != "" {
			return err, false
		}
		return jobject.ToString(v), false
	case "kind":
		if len(args) != 1 {
			return "usage: kind PATH", false
		}
		v, err := lookup(root, args[0])
		if err != "" {
			return err, false
		}
		return v.Kind().String(), false
	case "set":
		if len(args) != 2 {
			return "usage: set PATH VALUE", false
		}
		h, name, err := parent(root, args[0])
		if err != "" {
			return err, false
		}
		if h.Set(name, parseValue(args[1])) {
			return "ok", false
		}
		return "rejected", false
	case "def":
		if len(args) != 2 {
			return "usage: def PATH VALUE", false
		}
		h, name, err := parent(root, args[0])
		if err != "" {
			return err, false
		}
		jobject.DefineValue(h, name, parseValue(args[1]), false, true, false)
		return "ok", false
	case "del":
		if len(args) != 1 {
			return "usage: del PATH", false
		}
		h, name, err := parent(root, args[0])
		if err != "" {
			return err, false
		}
		if h.Delete(name) {
			return "ok", false
		}
		return "rejected", false
	case "has":
		if len(args) != 1 {
			return "usage: has PATH", false
		}
		h, name, err := parent(root, args[0])
		if err != "" {
			return err, false
		}
		return strconv.FormatBool(h.Has(name)), false
	case "names":
		h := jobject.Holder(root)
		if len(args) == 1 {
			v, err := lookup(root, args[0])
			if err != "" {
				return err, false
			}
			var ok bool
			if h, ok = v.AsHolder(); !ok {
				return "not an object: " + args[0], false
			}
		}
		return strings.Join(h.Names(), " "), false
	case "call":
		if len(args) < 1 {
			return "usage: call PATH [ARG...]", false
		}
		v, err := lookup(root, args[0])
		if err != "" {
			return err, false
		}
		fn, ok := v.AsFunction()
		if !ok {
			return "not a function: " + args[0], false
		}
		callArgs := make([]jobject.Value, len(args)-1)
		for i, a := range args[1:] {
			callArgs[i] = parseValue(a)
		}
		return jobject.ToString(fn.Call(callArgs...)), false
	default:
		return "unknown command: " + cmd + " (try 'help')", false
	}
}

// lookup resolves a dot-separated path to a value.
func lookup(root *jobject.Object, path string) (jobject.Value, string) {
	h, name, err := parent(root, path)
	if err != "" {
		return jobject.Absent(), err
	}
	return h.Get(name), ""
}

// parent walks all but the last path segment and returns the holder
// the final segment should be resolved against.
func parent(root *jobject.Object, path string) (jobject.Holder, string, string) {
	segs := strings.Split(path, ".")
	h := jobject.Holder(root)
	for _, seg := range segs[:len(segs)-1] {
		next, ok := h.Get(seg).AsHolder()
		if !ok {
			return nil, "", "not an object: " + seg
		}
		h = next
	}
	return h, segs[len(segs)-1], ""
}

// parseValue turns a command token into a Value: null, true/false,
// integer, float, or a string (quotes already stripped by tokenize).
func parseValue(tok string) jobject.Value {
	switch tok {
	case "null":
		return jobject.Absent()
	case "true":
		return jobject.FromBool(true)
	case "false":
		return jobject.FromBool(false)
	}
	if n, err := strconv.ParseInt(tok, 10, 64); err == nil {
		return jobject.From(n)
	}
	if f, err := strconv.ParseFloat(tok, 64); err == nil {
		return jobject.FromFloat(f)
	}
	return jobject.From(tok)
}

// tokenize splits a command line on spaces, honoring double quotes.
func tokenize(line string) []string {
	var out []string
	var cur strings.Builder
	inQuote := false
	flushed := true
	for _, r := range line {
		switch {
		case r == '"':
			inQuote = !inQuote
			flushed = false
		case r == ' ' && !inQuote:
			if !flushed || cur.Len() > 0 {
				out = append(out, cur.String())
				cur.Reset()
				flushed = true
			}
		default:
			cur.WriteRune(r)
			flushed = false
		}
	}
	if !flushed || cur.Len() > 0 {
		out = append(out, cur.String())
	}
	return out
}
