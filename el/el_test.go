package el

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/crel-dev/crel/pkg/node"
	"github.com/crel-dev/crel/pkg/render"
)

func TestLookup(t *testing.T) {
	tag, ok := Lookup("div")
	if !ok {
		t.Fatalf("Lookup(div) not found")
	}
	if tag != Div {
		t.Fatalf("Lookup(div) should return the package descriptor")
	}
	if _, ok := Lookup("blink"); ok {
		t.Fatalf("Lookup(blink) should fail")
	}
}

func TestRegistryIsComplete(t *testing.T) {
	names := Names()
	if len(names) != len(all) {
		t.Fatalf("registry has %d names, descriptor list has %d", len(names), len(all))
	}
	if !slices.IsSorted(names) {
		t.Errorf("Names() should be sorted")
	}
	for _, tag := range all {
		if got, _ := Lookup(tag.Name()); got != tag {
			t.Errorf("Lookup(%q) returned a different descriptor", tag.Name())
		}
	}
}

func TestIsVoidElement(t *testing.T) {
	var void []string
	for _, name := range Names() {
		if IsVoidElement(name) {
			void = append(void, name)
		}
	}
	want := []string{"area", "base", "br", "col", "embed", "hr", "img", "input", "link", "meta", "param", "source", "track", "wbr"}
	if diff := cmp.Diff(want, void); diff != "" {
		t.Errorf("void elements mismatch (-want +got):\n%s", diff)
	}
	if IsVoidElement("blink") {
		t.Errorf("unknown names are not void")
	}
}

func TestEmptyRendering(t *testing.T) {
	tests := []struct {
		tag  *node.Tag
		want string
	}{
		{Br, "<br/>"},
		{Div, "<div></div>"},
		{Iframe, "<iframe></iframe>"},
		{Del, "<del></del>"},
		{Object, "<object></object>"},
		{Input, "<input/>"},
		{Col, "<col/>"},
		{Wbr, "<wbr/>"},
	}

	for _, tt := range tests {
		t.Run(tt.tag.Name(), func(t *testing.T) {
			got, err := render.Render(tt.tag.Call(nil))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormExample(t *testing.T) {
	form := Form.Call(node.Attrs{node.A("method", "post"), node.A("action", "/login?next=/a&b")},
		Label.Call(node.Attrs{node.A("for", "user")}, "User"),
		Input.Call(node.Attrs{node.A("id", "user"), node.A("name", "user"), node.Bool("required")}),
		Button.Call(node.Attrs{node.A("type", "submit")}, "Sign in"),
	)

	got, err := render.Render(form)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<form method="post" action="/login?next=/a&amp;b"><label for="user">User</label>` +
		`<input id="user" name="user" required/><button type="submit">Sign in</button></form>`
	if got != want {
		t.Errorf("got  %q\nwant %q", got, want)
	}
}
