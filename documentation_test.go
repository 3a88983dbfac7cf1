package invtotal

import (
	"path/filepath"
	"testing"
)

func TestDocumentation(t *testing.T) {
	if testing.Short() {
		t.Skip("builds the invt command")
	}
	files, err := filepath.Glob("docs/*.md")
	if err != nil {
		t.Fatal(err)
	}
	files = append(files, "README.md")

	invt := buildInvt(t, t.TempDir())
	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			runTestableCommands(t, invt, file)
		})
	}
}
