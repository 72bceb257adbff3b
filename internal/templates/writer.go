package templates

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	ferrors "git.home.luguber.info/inful/tmpltime/internal/foundation/errors"
)

// WriteRenderedFile writes content to path, creating parent directories as needed.
// An existing file is only replaced when overwrite is set. Files are created 0o600.
func WriteRenderedFile(path, content string, overwrite bool) error {
	if path == "" {
		return ferrors.ValidationError("output path is required").Build()
	}

	cleanPath := filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(cleanPath), 0o750); err != nil {
		return ferrors.FileSystemError("create output directory").WithCause(err).WithContext("path", cleanPath).Build()
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if overwrite {
		flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}

	// #nosec G304 -- path is chosen by the operator on the command line.
	file, err := os.OpenFile(cleanPath, flags, 0o600)
	if err != nil {
		if errors.Is(err, os.ErrExist) || errors.Is(err, syscall.EEXIST) {
			return ferrors.FileSystemError(fmt.Sprintf("file already exists: %s", cleanPath)).Build()
		}
		return ferrors.FileSystemError("write output file").WithCause(err).WithContext("path", cleanPath).Build()
	}
	defer func() {
		_ = file.Close()
	}()

	if _, err := file.WriteString(content); err != nil {
		return ferrors.FileSystemError("write output file").WithCause(err).WithContext("path", cleanPath).Build()
	}
	return nil
}
