package recording

import (
	"strings"
	"testing"
)

// resetRegistry clears all registered renderers for test isolation.
func resetRegistry() {
	registryMu.Lock()
	defer registryMu.Unlock()
	renderers = make(map[string]Factory)
}

func TestRegisterAndNewRenderer(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	var gotW, gotH int
	Register("test", func(w, h int) Renderer {
		gotW, gotH = w, h
		return &fakeRenderer{}
	})

	rd, err := NewRenderer("test", 320, 200)
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}
	if rd == nil {
		t.Fatal("NewRenderer() returned nil")
	}
	if gotW != 320 || gotH != 200 {
		t.Errorf("factory got %dx%d, want 320x200", gotW, gotH)
	}
}

func TestNewRenderer_Unknown(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	_, err := NewRenderer("pdf", 1, 1)
	if err == nil {
		t.Fatal("NewRenderer() expected error")
	}
	if !strings.Contains(err.Error(), "forgotten import") {
		t.Errorf("error = %q, want hint about forgotten import", err)
	}
}

func TestRegister_Panics(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	t.Run("nil factory", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("Register(nil) did not panic")
			}
		}()
		Register("nil", nil)
	})

	t.Run("duplicate", func(t *testing.T) {
		Register("dup", func(int, int) Renderer { return &fakeRenderer{} })
		defer func() {
			if recover() == nil {
				t.Error("duplicate Register did not panic")
			}
		}()
		Register("dup", func(int, int) Renderer { return &fakeRenderer{} })
	})
}

func TestMustRenderer_Panics(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	defer func() {
		if recover() == nil {
			t.Error("MustRenderer did not panic for unknown name")
		}
	}()
	MustRenderer("missing", 1, 1)
}

func TestRenderersSortedAndCount(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	factory := func(int, int) Renderer { return &fakeRenderer{} }
	Register("svg", factory)
	Register("pdf", factory)
	Register("raster", factory)

	got := Renderers()
	want := []string{"pdf", "raster", "svg"}
	if len(got) != len(want) {
		t.Fatalf("Renderers() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Renderers()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if Count() != 3 {
		t.Errorf("Count() = %d, want 3", Count())
	}
	if !IsRegistered("pdf") {
		t.Error("IsRegistered(pdf) = false, want true")
	}

	Unregister("pdf")
	Unregister("pdf")
	if IsRegistered("pdf") {
		t.Error("IsRegistered(pdf) after Unregister = true, want false")
	}
	if Count() != 2 {
		t.Errorf("Count() = %d, want 2", Count())
	}
}
