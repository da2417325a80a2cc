package errdecode

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

type locatedError struct{}

func (locatedError) Error() string { return "located" }

func (locatedError) Location() (string, string, int) {
	return "Installer::Run", "installer.go", 42
}

func TestDecode_Locator(t *testing.T) {
	vars := Decode(fmt.Errorf("wrapped: %w", locatedError{}))

	if vars[KeyFunction] != "Installer::Run" || vars[KeyFile] != "installer.go" || vars[KeyLine] != 42 {
		t.Errorf("Expected location from Locator, got: %v", vars)
	}
	if vars[KeyMessage] != "wrapped: located" {
		t.Errorf("Expected full message, got: %v", vars[KeyMessage])
	}
}

func TestDecode_PkgErrorsStack(t *testing.T) {
	err := errors.Wrap(errors.New("disk full"), "write cache")

	vars := Decode(err)
	if vars[KeyType] != "*errors.fundamental" {
		t.Errorf("Expected root cause type, got: %v", vars[KeyType])
	}
	if vars[KeyMessage] != "write cache: disk full" {
		t.Errorf("Unexpected message: %v", vars[KeyMessage])
	}
	if vars[KeyFunction] != "errdecode.TestDecode_PkgErrorsStack" {
		t.Errorf("Expected the test as function, got: %v", vars[KeyFunction])
	}
	if file, _ := vars[KeyFile].(string); !strings.HasSuffix(file, "errdecode_test.go") {
		t.Errorf("Expected test file, got: %v", vars[KeyFile])
	}
	if line, _ := vars[KeyLine].(int); line == 0 {
		t.Errorf("Expected a line number, got: %v", vars[KeyLine])
	}
}

func TestDecode_PlainError(t *testing.T) {
	vars := Decode(os.ErrNotExist)

	if vars[KeyType] != "*errors.errorString" {
		t.Errorf("Unexpected type: %v", vars[KeyType])
	}
	for _, k := range []string{KeyFunction, KeyFile, KeyLine} {
		if vars[k] != "unknown" {
			t.Errorf("Expected %s to be unknown, got: %v", k, vars[k])
		}
	}
}

func TestDecode_Nil(t *testing.T) {
	if vars := Decode(nil); len(vars) != 0 {
		t.Errorf("Expected no variables for nil, got: %v", vars)
	}
}

func TestDefaultDecoder(t *testing.T) {
	vars := Default.Decode(errors.New("boom"))
	if vars[KeyMessage] != "boom" {
		t.Errorf("Unexpected message: %v", vars[KeyMessage])
	}
}
