package window

import (
	"errors"
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// GLFW_NOT_INITIALIZED; the glfw package keeps its programmer-error codes unexported
const notInitialized = glfw.ErrorCode(0x00010001)

func panicking(v any) (err error) {
	defer recoverError(&err)
	panic(v)
}

func TestRecoverErrorConvertsGLFWPanic(t *testing.T) {
	err := panicking(&glfw.Error{Code: notInitialized, Desc: "The GLFW library is not initialized"})
	if err == nil {
		t.Fatal("Expected error from recovered panic")
	}
	var ge *glfw.Error
	if !errors.As(err, &ge) {
		t.Fatalf("Expected *glfw.Error, got %T", err)
	}
	if ge.Code != notInitialized {
		t.Errorf("Expected NotInitialized, got %v", ge.Code)
	}
}

func TestRecoverErrorNoPanic(t *testing.T) {
	err := func() (err error) {
		defer recoverError(&err)
		return nil
	}()
	if err != nil {
		t.Errorf("Expected nil error, got %v", err)
	}
}

func TestRecoverErrorKeepsOtherPanics(t *testing.T) {
	defer func() {
		if r := recover(); r != "boom" {
			t.Errorf("Expected original panic value, got %v", r)
		}
	}()
	_ = panicking("boom")
	t.Error("Expected panic to propagate")
}
