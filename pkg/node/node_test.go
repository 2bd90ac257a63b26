package node

import (
	"errors"
	"iter"
	"slices"
	"testing"
)

func TestSafeStringEquality(t *testing.T) {
	a := Safe("<b>x</b>")
	b := Safe("<b>x</b>")
	if a != b {
		t.Fatalf("equal contents should compare equal")
	}

	set := map[SafeString]int{a: 1}
	set[b]++
	if len(set) != 1 || set[a] != 2 {
		t.Fatalf("equal SafeStrings should share a map key, got %v", set)
	}
	if a.String() != "<b>x</b>" {
		t.Errorf("String() = %q", a.String())
	}
	if Doctype != "<!doctype html>" {
		t.Errorf("Doctype = %q", Doctype)
	}
}

func TestKindOf(t *testing.T) {
	var nilTag *Tag
	var nilSeq iter.Seq[Node]

	tests := []struct {
		name string
		v    Node
		want Kind
	}{
		{"string", "x", KindText},
		{"text", Text("x"), KindText},
		{"safe", Safe("x"), KindSafe},
		{"tag", NewTag("br", true), KindTag},
		{"nil tag", nilTag, KindInvalid},
		{"element", &Element{}, KindElement},
		{"slice", []Node{"a"}, KindGroup},
		{"group", Group{"a"}, KindGroup},
		{"seq", Once(slices.Values([]Node{"a"})), KindSeq},
		{"iter seq", iter.Seq[Node](slices.Values([]Node{"a"})), KindSeq},
		{"func literal", func(yield func(Node) bool) {}, KindSeq},
		{"nil iter seq", nilSeq, KindInvalid},
		{"int", 42, KindInvalid},
		{"bool", true, KindInvalid},
		{"nil", nil, KindInvalid},
		{"string slice", []string{"a"}, KindInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.v); got != tt.want {
				t.Errorf("KindOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	if KindElement.String() != "Element" || Kind(99).String() != "Invalid" {
		t.Errorf("unexpected Kind strings")
	}
}

func TestChildren(t *testing.T) {
	el := &Element{Children: []Node{"a", "b"}}
	if got := Children(el); len(got) != 2 {
		t.Errorf("Children(element) = %v", got)
	}
	if got := Children(Group{"a"}); len(got) != 1 {
		t.Errorf("Children(group) = %v", got)
	}
	if got := Children("text"); got != nil {
		t.Errorf("Children(text) = %v, want nil", got)
	}
}

func TestSeqSinglePass(t *testing.T) {
	s := Once(slices.Values([]Node{"a", "b"}))
	if s.Consumed() {
		t.Fatalf("new sequence should not be consumed")
	}

	seq, err := s.Take()
	if err != nil {
		t.Fatalf("first Take() error: %v", err)
	}
	var got []Node
	for v := range seq {
		got = append(got, v)
	}
	if len(got) != 2 {
		t.Fatalf("drained %v", got)
	}

	if _, err := s.Take(); !errors.Is(err, ErrSeqConsumed) {
		t.Fatalf("second Take() error = %v, want ErrSeqConsumed", err)
	}
	if !s.Consumed() {
		t.Errorf("Consumed() should be true after Take")
	}
}

func TestFromChan(t *testing.T) {
	ch := make(chan Node, 3)
	ch <- "a"
	ch <- Safe("<br/>")
	close(ch)

	seq, err := FromChan(ch).Take()
	if err != nil {
		t.Fatalf("Take() error: %v", err)
	}
	var got []Node
	for v := range seq {
		got = append(got, v)
	}
	if len(got) != 2 || got[0] != "a" || got[1] != Safe("<br/>") {
		t.Fatalf("got %v", got)
	}
}

func TestAttrsSetGet(t *testing.T) {
	attrs := Attrs{A("id", "x")}
	attrs = attrs.Set("id", "y").Set("class", "c")

	if v, ok := attrs.Get("id"); !ok || v != "y" {
		t.Errorf("Get(id) = %v, %v", v, ok)
	}
	if len(attrs) != 2 || attrs[1].Key != "class" {
		t.Errorf("Set should append new keys in order, got %v", attrs)
	}
	if _, ok := attrs.Get("missing"); ok {
		t.Errorf("Get(missing) should report false")
	}
	if !SafeKey("k", nil).IsSafeKey() || A("k", nil).IsSafeKey() {
		t.Errorf("IsSafeKey mismatch")
	}
}

func TestEscaping(t *testing.T) {
	tests := []struct {
		name string
		fn   func(string) string
		in   string
		want string
	}{
		{"text script", EscapeText, "<script>", "&lt;script&gt;"},
		{"text quotes", EscapeText, `"a" 'b'`, "&quot;a&quot; &#x27;b&#x27;"},
		{"text ampersand once", EscapeText, "&amp;", "&amp;amp;"},
		{"value keeps spaces", EscapeAttrValue, "a b=c", "a b=c"},
		{"key strict", EscapeAttrKey, "a b=c", "a&nbsp;b&#x3D;c"},
		{"key backslash backtick", EscapeAttrKey, "\\`", "&#x5C;&#x60;"},
		{"key entities", EscapeAttrKey, "<&>", "&lt;&amp;&gt;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.in); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCommonSafeAttr(t *testing.T) {
	for _, name := range []string{"class", "href", "viewBox", "data-index"} {
		if !IsCommonSafeAttr(name) {
			t.Errorf("%q should be whitelisted", name)
		}
	}
	for _, name := range []string{"data-x", "Class", "on click"} {
		if IsCommonSafeAttr(name) {
			t.Errorf("%q should not be whitelisted", name)
		}
	}
}
