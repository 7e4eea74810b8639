package matrix

import (
	"testing"

	"github.com/andywolf/skillmatrix/internal/catalog"
)

func newTestResolver() *Resolver {
	skills := []catalog.Skill{
		{ID: "web/framework/react (@x)", Directory: "frontend/react"},
		{ID: "web/framework/vue (@x)", Directory: "frontend/vue"},
		{ID: "web/testing/react-testing-library (@x)", Directory: "testing/rtl"},
		{ID: "shared/tooling/react", Directory: "react"},
		{ID: "api/framework/hono (@x)", Alias: "hono-js", Directory: "backend/hono"},
	}
	aliases := map[string]string{
		"react": "web/framework/react (@x)",
		"vue":   "vue (@x)",
		"rtl":   "testing/react-testing-library (@x)",
	}
	return NewResolver(skills, aliases)
}

func TestResolver_Resolve(t *testing.T) {
	r := newTestResolver()

	tests := []struct {
		name string
		ref  string
		want string
	}{
		{"alias wins over directory path", "react", "web/framework/react (@x)"},
		{"alias to short form is chased", "vue", "web/framework/vue (@x)"},
		{"alias to suffix form is chased", "rtl", "web/testing/react-testing-library (@x)"},
		{"skill declared alias", "hono-js", "api/framework/hono (@x)"},
		{"directory path", "frontend/vue", "web/framework/vue (@x)"},
		{"short author form", "hono (@x)", "api/framework/hono (@x)"},
		{"canonical passes through", "web/framework/vue (@x)", "web/framework/vue (@x)"},
		{"unknown passes through", "svelte", "svelte"},
		{"empty passes through", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Resolve(tt.ref); got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.ref, got, tt.want)
			}
		})
	}
}

func TestResolver_ResolveIsIdempotent(t *testing.T) {
	r := newTestResolver()

	for _, ref := range []string{"react", "vue", "rtl", "backend/hono", "hono (@x)", "shared/tooling/react"} {
		once := r.Resolve(ref)
		if twice := r.Resolve(once); twice != once {
			t.Errorf("Resolve(Resolve(%q)) = %q, want %q", ref, twice, once)
		}
	}
}

func TestResolver_ResolveStackRef(t *testing.T) {
	r := newTestResolver()

	tests := []struct {
		ref  string
		want string
	}{
		{"react", "web/framework/react (@x)"},
		{"vue", "web/framework/vue (@x)"},
		{"rtl", "web/testing/react-testing-library (@x)"},
		{"vue (@x)", "web/framework/vue (@x)"},
		{"missing", "missing"},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			if got := r.ResolveStackRef(tt.ref); got != tt.want {
				t.Errorf("ResolveStackRef(%q) = %q, want %q", tt.ref, got, tt.want)
			}
		})
	}
}

func TestResolver_StackRefMatchesShortForm(t *testing.T) {
	r := newTestResolver()

	viaAlias := r.ResolveStackRef("vue")
	direct := r.shortForms["vue (@x)"]
	if viaAlias != direct {
		t.Errorf("alias hop gave %q, short form gave %q", viaAlias, direct)
	}
}

func TestResolver_Alias(t *testing.T) {
	r := newTestResolver()

	tests := []struct {
		id     string
		want   string
		wantOK bool
	}{
		{"web/framework/react (@x)", "react", true},
		{"web/framework/vue (@x)", "vue", true},
		{"api/framework/hono (@x)", "hono-js", true},
		{"shared/tooling/react", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			got, ok := r.Alias(tt.id)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Alias(%q) = (%q, %v), want (%q, %v)", tt.id, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestResolver_ResolveAllDropsRepeats(t *testing.T) {
	r := newTestResolver()

	got := r.ResolveAll([]string{"react", "web/framework/react (@x)", "vue"})
	want := []string{"web/framework/react (@x)", "web/framework/vue (@x)"}
	if len(got) != len(want) {
		t.Fatalf("ResolveAll = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ResolveAll[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if r.ResolveAll(nil) != nil {
		t.Error("ResolveAll(nil) should be nil")
	}
}
