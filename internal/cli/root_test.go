package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/deadlyengineer/linq-with-go/internal/checks"
	"github.com/matryer/is"
)

func TestRootCmd(t *testing.T) {
	is := is.New(t)

	out := &bytes.Buffer{}

	cmd := NewRootCmd()
	cmd.SetOut(out)
	cmd.SetArgs([]string{"--quiet", "--suite", "Getter,Export"})

	is.NoErr(cmd.Execute())

	summary := out.String()
	is.True(strings.Contains(summary, "Getter"))
	is.True(strings.Contains(summary, "Export"))
	is.True(!strings.Contains(summary, "BasicCalc"))
	is.True(!strings.Contains(summary, "failed ("))
}

func TestRootCmd_UnknownSuite(t *testing.T) {
	is := is.New(t)

	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--quiet", "--suite", "NoSuchSuite"})

	err := cmd.Execute()
	is.True(err != nil)
	is.True(strings.Contains(err.Error(), "NoSuchSuite"))
}

func TestRenderReport(t *testing.T) {
	is := is.New(t)

	out := &bytes.Buffer{}

	renderReport(out, checks.Report{
		Results: []checks.Result{
			{Suite: "s", Name: "ok", Index: 0},
			{Suite: "s", Name: "bad", Index: 1, Err: errors.New("boom")},
		},
	})

	table := out.String()
	is.True(strings.Contains(table, "ok"))
	is.True(strings.Contains(table, "failed (boom)"))
}
