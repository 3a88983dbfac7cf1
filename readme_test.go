package invtotal

import (
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

// This file contains the logic to test the examples of the markdown
// documentation.
//
// To add a new testable example:
//
// 1.  Add the command to the markdown file, wrapped in a ```bash ... ``` block.
// 2.  Add the expected output of the command, wrapped in a ```console ... ``` block.
//
// The test parses the file, runs the commands, and compares the output with the expected output.

// Command holds a command and its expected output.
type Command struct {
	Cmd      string
	Expected string
}

// buildInvt builds the invt command into tmp and returns the path to the executable.
func buildInvt(t *testing.T, tmp string) string {
	t.Helper()

	output := filepath.Join(tmp, "invt")
	build := exec.Command("go", "build", "-o", output, "./invt/")
	if out, err := build.CombinedOutput(); err != nil {
		t.Fatalf("failed to build invt command: %v\n%s", err, out)
	}
	return output
}

var testableCommand = regexp.MustCompile("(?m)```bash\\n(invt.*?)\\n```\\n\\n```console\\n((.|\\n)*?)```")

// parseTestableCommands extracts commands and their expected outputs from a markdown file.
func parseTestableCommands(t *testing.T, file string) []Command {
	t.Helper()

	content, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("failed to read %s: %v", file, err)
	}

	var commands []Command
	for _, match := range testableCommand.FindAllStringSubmatch(string(content), -1) {
		commands = append(commands, Command{Cmd: match[1], Expected: match[2]})
	}
	return commands
}

// runTestableCommands runs the testable commands of a markdown file.
func runTestableCommands(t *testing.T, invt, file string) {
	t.Helper()

	for _, cmd := range parseTestableCommands(t, file) {
		args := strings.Fields(cmd.Cmd)
		t.Log("Running command:", invt, args)
		command := exec.Command(invt, args[1:]...)
		command.Dir = filepath.Dir(invt)
		// the examples must not depend on the user environment.
		command.Env = append(os.Environ(), "INVT_CONFIG=", "INVT_PRICES=", "INVT_LOG_LEVEL=")
		output, err := command.CombinedOutput()
		if err != nil {
			t.Fatalf("failed to run command %q: %v, output: \n%s", cmd.Cmd, err, output)
		}
		if got := string(output); cmd.Expected != got {
			t.Errorf("%s: expected output:\n%q\nbut got:\n%q", cmd.Cmd, cmd.Expected, got)
		}
	}
}

func TestReadme(t *testing.T) {
	if commands := parseTestableCommands(t, "README.md"); len(commands) == 0 {
		t.Fatal("README.md has no testable example")
	}
}
