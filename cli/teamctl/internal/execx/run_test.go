package execx

import (
	"context"
	"testing"
	"time"
)

func TestCapture(t *testing.T) {
	out, res := Capture(context.Background(), "echo", "hello")
	if res.Code != 0 {
		t.Fatalf("code=%d err=%v", res.Code, res.Err)
	}
	if out != "hello\n" {
		t.Fatalf("out=%q", out)
	}
}

func TestRunExitCodePropagates(t *testing.T) {
	res := Run("bash", "-c", "exit 3")
	if res.Code != 3 {
		t.Fatalf("code=%d", res.Code)
	}
}

func TestRunCtxDeadline(t *testing.T) {
	ctx, cancel := WithTimeout(100 * time.Millisecond)
	defer cancel()
	res := RunCtx(ctx, "sleep", "5")
	if res.Code != 124 {
		t.Fatalf("deadline exit code = %d, want 124", res.Code)
	}
	if res.Err == nil {
		t.Fatal("expected error after deadline")
	}
}
