package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/hue-hunt/internal/core"
)

type stubGame struct {
	id string
}

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return strings.ToUpper(g.id) }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Resize(int, int)                      {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func register(t *testing.T, id string) {
	t.Helper()
	Register(id, func() Game { return &stubGame{id: id} })
	t.Cleanup(func() {
		mu.Lock()
		defer mu.Unlock()
		delete(factories, id)
		delete(titles, id)
	})
}

func TestRegisterAndCreate(t *testing.T) {
	register(t, "test-alpha")

	if !Exists("test-alpha") {
		t.Fatal("Exists() = false after Register")
	}
	g, err := Create("test-alpha")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if g.ID() != "test-alpha" {
		t.Errorf("ID() = %q, expected test-alpha", g.ID())
	}

	if _, err := Create("test-missing"); err == nil {
		t.Error("Create() of an unknown game should fail")
	}
	if Exists("test-missing") {
		t.Error("Exists() = true for an unknown game")
	}
}

func TestListSortedWithTitles(t *testing.T) {
	register(t, "test-zulu")
	register(t, "test-bravo")

	var ids []string
	for _, info := range List() {
		if !strings.HasPrefix(info.ID, "test-") {
			continue
		}
		ids = append(ids, info.ID)
		if info.Title != strings.ToUpper(info.ID) {
			t.Errorf("title for %q = %q", info.ID, info.Title)
		}
	}

	if strings.Join(ids, ",") != "test-bravo,test-zulu" {
		t.Errorf("List() ids = %v, expected sorted order", ids)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	register(t, "test-dup")

	defer func() {
		if recover() == nil {
			t.Error("registering the same id twice should panic")
		}
	}()
	Register("test-dup", func() Game { return &stubGame{id: "test-dup"} })
}
