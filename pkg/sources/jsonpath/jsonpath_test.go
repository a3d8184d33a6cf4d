package jsonpath_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-combobox/pkg/collection"
	"github.com/goliatone/go-combobox/pkg/sources/jsonpath"
)

const payload = `{
  "data": {
    "animals": [
      {"slug": "cat", "label": "Cat", "kind": "Pets"},
      {"slug": "dog", "label": "Dog", "kind": "Pets", "archived": true},
      {"slug": "kangaroo", "label": "Kangaroo", "kind": "Wild"}
    ]
  }
}`

func TestExtract(t *testing.T) {
	mapping := jsonpath.Mapping{
		ResultsPath:   "data.animals",
		KeyField:      "slug",
		TextField:     "label",
		DisabledField: "archived",
	}
	got, err := jsonpath.Extract([]byte(payload), mapping)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	want := []collection.Node{
		collection.Item("Cat", collection.WithKey("cat")),
		collection.Item("Dog", collection.WithKey("dog"), collection.Disabled()),
		collection.Item("Kangaroo", collection.WithKey("kangaroo")),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("nodes mismatch (-want +got):\n%s", diff)
	}
}

func TestExtract_Sections(t *testing.T) {
	mapping := jsonpath.Mapping{ResultsPath: "data.animals", KeyField: "slug", TextField: "label", SectionField: "kind"}
	got, err := jsonpath.Extract([]byte(payload), mapping)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	c, err := collection.FromNodes(got)
	if err != nil {
		t.Fatalf("materialize: %v", err)
	}
	wantSections := []collection.Key{"$.0", "$.0", "$.1"}
	var sections []collection.Key
	for _, opt := range c.Options() {
		sections = append(sections, opt.Section)
	}
	if diff := cmp.Diff(wantSections, sections); diff != "" {
		t.Fatalf("sections mismatch (-want +got):\n%s", diff)
	}
}

func TestExtract_ScalarsAndDefaults(t *testing.T) {
	got, err := jsonpath.Extract([]byte(`["Cat", "Dog"]`), jsonpath.Mapping{})
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	want := []collection.Node{
		collection.Item("Cat", collection.WithKey("Cat")),
		collection.Item("Dog", collection.WithKey("Dog")),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("nodes mismatch (-want +got):\n%s", diff)
	}

	got, err = jsonpath.Extract([]byte(`[{"id": 7, "name": "Seven"}]`), jsonpath.Mapping{})
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if len(got) != 1 || got[0].Key != "7" || got[0].Text != "Seven" {
		t.Fatalf("default mapping = %+v", got)
	}
}

func TestExtract_Errors(t *testing.T) {
	if _, err := jsonpath.Extract([]byte(`{`), jsonpath.Mapping{}); !errors.Is(err, jsonpath.ErrInvalidJSON) {
		t.Fatalf("expected ErrInvalidJSON, got %v", err)
	}
	if _, err := jsonpath.Extract([]byte(`{"a": 1}`), jsonpath.Mapping{ResultsPath: "b"}); err == nil {
		t.Fatal("expected missing path error")
	}
	if _, err := jsonpath.Extract([]byte(`{"a": 1}`), jsonpath.Mapping{ResultsPath: "a"}); err == nil {
		t.Fatal("expected non-array error")
	}
	_, err := jsonpath.Extract([]byte(`[{"other": 1}]`), jsonpath.Mapping{})
	if !errors.Is(err, collection.ErrEmptyKey) {
		t.Fatalf("expected ErrEmptyKey, got %v", err)
	}
}
