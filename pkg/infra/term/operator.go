package term

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/tagrel/pkg/domain/interfaces"
	"github.com/m-mizutani/tagrel/pkg/domain/model"
)

var (
	stepColor   = color.New(color.FgMagenta, color.Bold)
	labelColor  = color.New(color.Bold)
	valueColor  = color.New(color.FgCyan)
	promptColor = color.New(color.FgYellow)
)

type operator struct {
	in  *bufio.Reader
	out io.Writer
}

// NewOperator creates an Operator that talks to a terminal through in and out
func NewOperator(in io.Reader, out io.Writer) interfaces.Operator {
	return &operator{
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (o *operator) Step(ctx context.Context, msg string) {
	stepColor.Fprintf(o.out, "> %s\n", msg)
}

func (o *operator) Present(ctx context.Context, plan *model.ReleasePlan) {
	o.field("Branch", plan.Branch)
	o.field("Commit", plan.LogLine)
	o.field("Tag", plan.Tag)
}

func (o *operator) field(label, value string) {
	labelColor.Fprintf(o.out, "%s: ", label)
	valueColor.Fprintln(o.out, value)
}

// Confirm reads one line. "y", "yes" and an empty line are affirmative,
// case-insensitive. End of input without any answer is an error.
func (o *operator) Confirm(ctx context.Context, question string) (bool, error) {
	promptColor.Fprintf(o.out, "%s ([Y]/N) ", question)

	line, err := o.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return false, goerr.Wrap(err, "failed to read confirmation")
	}

	return IsAffirmative(line), nil
}

// IsAffirmative reports whether answer accepts a ([Y]/N) prompt
func IsAffirmative(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "", "y", "yes":
		return true
	default:
		return false
	}
}
