package system

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/leoferlopes/google-cloud-tfs/pkg/runner"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/syntax"
)

// ToolRunner is re-exported from pkg/runner so adapters and callers share one name.
type ToolRunner = runner.ToolRunner

// LiveToolRunner is an implementation of ToolRunner that runs the tool on the live system.
type LiveToolRunner struct {
	toolPath string
	echo     io.Writer
	args     []string
	lineErr  error
}

// NewLiveToolRunner returns a runner for the tool at toolPath. When echo is
// not nil the command line and the process output are copied to it.
func NewLiveToolRunner(toolPath string, echo io.Writer) *LiveToolRunner {
	return &LiveToolRunner{toolPath: toolPath, echo: echo}
}

// Line splits text into words using shell quoting rules and nothing else:
// quotes and backslash escapes are removed, while parameter references,
// substitutions, tildes, braces and globs reach the tool exactly as typed.
func (r *LiveToolRunner) Line(text string) runner.ToolRunner {
	fields, err := splitWords(text)
	if err != nil {
		if r.lineErr == nil {
			r.lineErr = fmt.Errorf("parsing command line %q: %w", text, err)
		}
		return r
	}
	r.args = append(r.args, fields...)
	return r
}

func (r *LiveToolRunner) Arg(text string) runner.ToolRunner {
	r.args = append(r.args, text)
	return r
}

func (r *LiveToolRunner) ArgIf(condition bool, text string) runner.ToolRunner {
	if condition {
		r.args = append(r.args, text)
	}
	return r
}

// ExecSync runs the tool and waits for it to exit.
func (r *LiveToolRunner) ExecSync() runner.ExecResult {
	if r.lineErr != nil {
		return runner.ExecResult{Error: r.lineErr, Code: -1}
	}
	if r.echo != nil {
		fmt.Fprintf(r.echo, "[command]%s\n", r.String())
	}

	cmd := exec.Command(r.toolPath, r.args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = r.tee(&stdout)
	cmd.Stderr = r.tee(&stderr)

	err := cmd.Run()

	result := runner.ExecResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.Code = exitErr.ExitCode()
		} else {
			// Binary not found or not executable.
			result.Error = fmt.Errorf("executing %s: %w", r.toolPath, err)
			result.Code = -1
		}
	}
	return result
}

// Args returns a copy of the arguments collected so far.
func (r *LiveToolRunner) Args() []string {
	return append([]string(nil), r.args...)
}

// Err returns the first command line parse error, if any.
func (r *LiveToolRunner) Err() error {
	return r.lineErr
}

// String renders the invocation the way a shell user would type it.
func (r *LiveToolRunner) String() string {
	words := make([]string, 0, len(r.args)+1)
	for _, w := range append([]string{r.toolPath}, r.args...) {
		words = append(words, quote(w))
	}
	return strings.Join(words, " ")
}

func (r *LiveToolRunner) tee(buf *bytes.Buffer) io.Writer {
	if r.echo == nil {
		return buf
	}
	return io.MultiWriter(buf, r.echo)
}

func splitWords(text string) ([]string, error) {
	fields := []string{}
	err := syntax.NewParser().Words(strings.NewReader(text), func(w *syntax.Word) bool {
		var sb strings.Builder
		for _, part := range w.Parts {
			writeWordPart(&sb, text, part)
		}
		fields = append(fields, sb.String())
		return true
	})
	if err != nil {
		return nil, err
	}
	return fields, nil
}

func writeWordPart(sb *strings.Builder, text string, part syntax.WordPart) {
	switch p := part.(type) {
	case *syntax.Lit:
		sb.WriteString(unescape(p.Value, false))
	case *syntax.SglQuoted:
		if p.Dollar {
			// $'...' carries C-style escapes.
			v, err := expand.Literal(nil, &syntax.Word{Parts: []syntax.WordPart{p}})
			if err == nil {
				sb.WriteString(v)
				return
			}
		}
		sb.WriteString(p.Value)
	case *syntax.DblQuoted:
		for _, inner := range p.Parts {
			if lit, ok := inner.(*syntax.Lit); ok {
				sb.WriteString(unescape(lit.Value, true))
				continue
			}
			sb.WriteString(source(text, inner))
		}
	default:
		sb.WriteString(source(text, part))
	}
}

// source is the text a node was parsed from.
func source(text string, node syntax.Node) string {
	return text[node.Pos().Offset():node.End().Offset()]
}

// unescape drops quoting backslashes. Inside double quotes only the
// characters the shell treats specially there are escaped.
func unescape(s string, doubleQuoted bool) string {
	if !strings.Contains(s, "\\") {
		return s
	}
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 == len(s) {
			sb.WriteByte(c)
			continue
		}
		next := s[i+1]
		switch {
		case next == '\n':
			i++
		case !doubleQuoted || strings.IndexByte("$`\"\\", next) >= 0:
			sb.WriteByte(next)
			i++
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

func quote(word string) string {
	q, err := syntax.Quote(word, syntax.LangPOSIX)
	if err != nil {
		return fmt.Sprintf("%q", word)
	}
	return q
}
