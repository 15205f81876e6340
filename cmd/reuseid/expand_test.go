package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePosition(t *testing.T) {
	tests := []struct {
		at   string
		path string
		line int
		col  int
		err  bool
	}{
		{at: "cells.go:12", path: "cells.go", line: 12, col: 1},
		{at: "cells.go:12:5", path: "cells.go", line: 12, col: 5},
		{at: "cells.go", err: true},
		{at: ":12", err: true},
		{at: "cells.go:0", err: true},
		{at: "cells.go:x", err: true},
		{at: "cells.go:1:0", err: true},
		{at: "cells.go:1:2:3", err: true},
	}

	for _, tt := range tests {
		t.Run(tt.at, func(t *testing.T) {
			path, line, col, err := parsePosition(tt.at)
			if tt.err {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.path, path)
			assert.Equal(t, tt.line, line)
			assert.Equal(t, tt.col, col)
		})
	}
}

func TestUseColor(t *testing.T) {
	on, err := useColor("on", os.Stderr)
	require.NoError(t, err)
	assert.True(t, on)

	off, err := useColor("off", os.Stderr)
	require.NoError(t, err)
	assert.False(t, off)

	_, err = useColor("always", os.Stderr)
	assert.Error(t, err)
}

const expandSource = `package cells

//reuseid:identifier
type FeedCell struct {
	UITableViewCell
}

//reuseid:identifier
type Style int
`

func runRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestExpandCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cells.go")
	require.NoError(t, os.WriteFile(path, []byte(expandSource), 0o644))

	stdout, _, err := runRoot(t, "--color", "off", "expand", "--at", path+":5", "--dialect", "swift")
	require.NoError(t, err)
	assert.Equal(t, "static let identifier = \"FeedCell\"\n", stdout)

	stdout, stderr, err := runRoot(t, "--color", "off", "expand", "--at", path+":9", "--dialect", "go")
	assert.ErrorIs(t, err, errDiagnostics)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "This macro can only be applied to class declarations. [ReuseIdentifierKit.classOnly]")

	_, _, err = runRoot(t, "--color", "off", "expand", "--at", path+":1", "--dialect", "go")
	assert.Error(t, err)
}
