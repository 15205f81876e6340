// Package gen splices synthesized members into generated Go files.
package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/sirkon/reuseid/internal/expand"
)

// Header marks files produced by reuseid.
const Header = "// Code generated by reuseid. DO NOT EDIT."

var fileTemplate = template.Must(template.New("file").Parse(`{{.Header}}

package {{.Package}}
{{range .Members}}
// {{.Owner}} {{.Name}} used to register and dequeue reusable views.
{{.Source}}
{{end}}`))

// Render builds a formatted Go file holding the members.
func Render(pkg string, members []expand.Member) ([]byte, error) {
	var buf bytes.Buffer
	err := fileTemplate.Execute(&buf, struct {
		Header  string
		Package string
		Members []expand.Member
	}{
		Header:  Header,
		Package: pkg,
		Members: members,
	})
	if err != nil {
		return nil, fmt.Errorf("execute file template: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}

	return src, nil
}

// IsGenerated reports whether the file at path was produced by reuseid.
func IsGenerated(path string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", path, err)
	}

	return strings.HasPrefix(string(data), Header), nil
}

// Write stores src as dir/name. It refuses to overwrite files reuseid did not generate.
func Write(dir, name string, src []byte) error {
	path := filepath.Join(dir, name)
	if err := checkOwned(path); err != nil {
		return err
	}

	if err := os.WriteFile(path, src, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

// Remove deletes a previously generated dir/name. Missing files are not an error.
func Remove(dir, name string) (bool, error) {
	path := filepath.Join(dir, name)
	if err := checkOwned(path); err != nil {
		return false, err
	}

	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("remove %s: %w", path, err)
	}

	return true, nil
}

func checkOwned(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	ok, err := IsGenerated(path)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s exists and was not generated by reuseid: %w", path, ErrForeignFile)
	}

	return nil
}
