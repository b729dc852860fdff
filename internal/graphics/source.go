package graphics

import (
	"fmt"
	"os"
	"strings"
)

// ReadSource returns the full text of a shader source file.
// On failure the returned source is empty and the error wraps the underlying fs error.
func ReadSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("could not read shader source: %w", err)
	}
	return string(data), nil
}

// cString terminates src with a NUL byte as required by the GL bindings
func cString(src string) string {
	if strings.HasSuffix(src, "\x00") {
		return src
	}
	return src + "\x00"
}

// infoLog converts a driver info log buffer into printable text
func infoLog(buf []byte) string {
	return strings.TrimRight(string(buf), "\x00 \t\r\n")
}
