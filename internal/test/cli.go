package test

import (
	"bytes"
	"testing"

	"github.com/litebase/csvpager/pkg/cli/cmd"
	"github.com/spf13/cobra"
)

type TestCLI struct {
	Cmd          *cobra.Command
	errorBuffer  *bytes.Buffer
	outputBuffer *bytes.Buffer
}

// NewTestCLI builds the root command against a names fixture with n data rows.
func NewTestCLI(t testing.TB, rows int) *TestCLI {
	dir := WriteNamesCSV(t, "Popular_Baby_Names.csv", rows)
	SetupEnv(t, dir, "Popular_Baby_Names.csv")

	return NewTestCLIFromEnv()
}

// NewTestCLIFromEnv builds the root command from the current environment.
func NewTestCLIFromEnv() *TestCLI {
	c := &TestCLI{
		errorBuffer:  bytes.NewBuffer(make([]byte, 0)),
		outputBuffer: bytes.NewBuffer(make([]byte, 0)),
	}

	c.Cmd = cmd.RootCmd()
	c.Cmd.SetOut(c.outputBuffer)
	c.Cmd.SetErr(c.errorBuffer)

	return c
}

// Run executes the CLI command with the provided arguments
func (c *TestCLI) Run(args ...string) error {
	if args == nil {
		args = []string{}
	}

	c.Cmd.SetArgs(args)

	return c.Cmd.Execute()
}

func (c *TestCLI) GetOutput() string {
	return c.outputBuffer.String()
}

func (c *TestCLI) GetErrorOutput() string {
	return c.errorBuffer.String()
}

// Check if the output buffer contains the expected text
func (c *TestCLI) Sees(text string) bool {
	return bytes.Contains(c.outputBuffer.Bytes(), []byte(text))
}

// Check if the output buffer does not contain the expected text
func (c *TestCLI) DoesntSee(text string) bool {
	return !c.Sees(text)
}
