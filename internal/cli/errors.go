package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

const (
	exitInternal     = 1
	exitInvalidInput = 2
	exitNotFound     = 3
)

func ErrorExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, fs.ErrNotExist):
		return exitNotFound
	case isInvalidInput(err):
		return exitInvalidInput
	default:
		return exitInternal
	}
}

func FormatError(err error) string {
	if err == nil {
		return ""
	}
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Sprintf("Error [not-found]: %v", err)
	case isInvalidInput(err):
		return fmt.Sprintf("Error [invalid-input]: %v", err)
	default:
		return fmt.Sprintf("Error [internal]: %v", err)
	}
}

func PrintError(err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(os.Stderr, FormatError(err))
}

func isInvalidInput(err error) bool {
	msg := strings.ToLower(err.Error())
	for _, marker := range []string{
		"unknown input format",
		"unknown output format",
		"unknown markdown dialect",
		"is not a directory",
		"invalid config file",
	} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
