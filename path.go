package rgbpca

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Prompt lines shown by PromptPath.
const (
	PromptEnterPath = "Enter the path to the original image."
	PromptRetryPath = "Incorrect path, please enter another path."
)

// CheckPath returns ErrPathNotFound if path does not exist.
func CheckPath(path string) error {
	if path == "" {
		return fmt.Errorf("%w: empty path", ErrPathNotFound)
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}
		return err
	}
	return nil
}

// PromptPath asks for an image path on w and reads lines from r until one
// names an existing file. Running out of input ends the loop with an error.
func PromptPath(r io.Reader, w io.Writer) (string, error) {
	scanner := bufio.NewScanner(r)
	fmt.Fprintln(w, PromptEnterPath)
	for scanner.Scan() {
		path := strings.TrimSpace(scanner.Text())
		err := CheckPath(path)
		if err == nil {
			return path, nil
		}
		if !errors.Is(err, ErrPathNotFound) {
			return "", err
		}
		fmt.Fprintln(w, PromptRetryPath)
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("read path: %w", err)
	}
	return "", fmt.Errorf("%w: no more input", ErrPathNotFound)
}
