package batch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"scanbuf/buffer"
	"scanbuf/config"
	"scanbuf/loader"
	"testing"
)

func writeFiles(t *testing.T, contents ...string) []string {
	dir := t.TempDir()
	paths := make([]string, len(contents))
	for i, c := range contents {
		paths[i] = filepath.Join(dir, fmt.Sprintf("src%d.pl", i))
		if err := os.WriteFile(paths[i], []byte(c), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return paths
}

func TestRunner_Run(t *testing.T) {
	props := config.Default()
	props.Capacity, props.IncFactor, props.Mode = 4, 8, "a"
	props.Print = true
	props.Sentinel = '$'
	props.Workers, props.PoolSize = 3, 2
	r, err := NewRunner(props)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	contents := []string{"a = 1;", "", "while (b) { b = b - 1; }", "x"}
	paths := writeFiles(t, contents...)
	results := r.Run(context.Background(), paths)
	if len(results) != len(paths) || Failed(results) != 0 {
		t.Fatalf("unexpected results: %+v", results)
	}
	for i, res := range results {
		if res.Path != paths[i] {
			t.Fatalf("expect results in input order, got %s at %d", res.Path, i)
		}
		n := len(contents[i])
		if res.Loaded != n || res.Limit != n+1 || res.Capacity != n+1 {
			t.Errorf("%s: unexpected sizes %+v", res.Path, res)
		}
		if want := contents[i] + "$\n"; string(res.Contents) != want {
			t.Errorf("%s: expect contents %q, got %q", res.Path, want, res.Contents)
		}
	}
}

func TestRunner_Failures(t *testing.T) {
	props := config.Default()
	props.Capacity, props.IncFactor, props.Mode = 4, 0, "f"
	props.Compact = false
	r, err := NewRunner(props)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	paths := writeFiles(t, "abc", "too long for four")
	paths = append(paths, filepath.Join(t.TempDir(), "missing.pl"))
	results := r.Run(context.Background(), paths)
	if Failed(results) != 2 {
		t.Fatalf("expect 2 failures, got: %+v", results)
	}
	if results[0].Err != nil || results[0].Capacity != 4 || results[0].Limit != 3 {
		t.Errorf("unexpected result: %+v", results[0])
	}
	if !errors.Is(results[1].Err, loader.ErrLoad) || !errors.Is(results[1].Err, buffer.ErrBufferFull) {
		t.Errorf("expect load failure, got: %v", results[1].Err)
	}
	if !errors.Is(results[2].Err, os.ErrNotExist) {
		t.Errorf("expect missing file, got: %v", results[2].Err)
	}
}

func TestRunner_Cancelled(t *testing.T) {
	r, err := NewRunner(config.Default())
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results := r.Run(ctx, writeFiles(t, "abc"))
	if len(results) != 1 || !errors.Is(results[0].Err, context.Canceled) {
		t.Errorf("expect cancelled result, got: %+v", results)
	}
}

func TestNewRunner_Invalid(t *testing.T) {
	props := config.Default()
	props.Mode = "z"
	if _, err := NewRunner(props); !errors.Is(err, buffer.ErrConfig) {
		t.Errorf("expect ErrConfig, got: %v", err)
	}
}

func TestRunner_CompactedBufferNotReused(t *testing.T) {
	props := config.Default()
	props.Capacity, props.IncFactor, props.Mode = 64, 0, "f"
	props.Compact = true
	props.Workers, props.PoolSize = 1, 1
	r, err := NewRunner(props)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	contents := []string{"ab", "longer than three bytes"}
	results := r.Run(context.Background(), writeFiles(t, contents...))
	if Failed(results) != 0 {
		t.Fatalf("expect every file to fit the profile, got: %+v", results)
	}
	for i, res := range results {
		n := len(contents[i])
		if res.Loaded != n || res.Capacity != n+1 {
			t.Errorf("%s: expect %d bytes and capacity %d, got: %+v", res.Path, n, n+1, res)
		}
	}
	if r.buffers.Size() != 1 {
		t.Errorf("expect the pool to keep one buffer slot, got: %d", r.buffers.Size())
	}
}
