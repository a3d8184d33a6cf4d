package config_test

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-combobox/pkg/aria"
	"github.com/goliatone/go-combobox/pkg/collection"
	"github.com/goliatone/go-combobox/pkg/config"
	"github.com/goliatone/go-combobox/pkg/state"
)

const petsYAML = `
controls:
  pet:
    label: Favorite animal
    description: Pick one
    filter: startsWith
    defaultInputValue: C
    policy:
      open: type
      revertOnClose: true
      wrapHighlight: false
    options:
      - text: Cat
        key: cat
      - kind: section
        text: Marsupials
        children:
          - text: Kangaroo
          - text: Wombat
            disabled: true
`

const zonesJSON = `{
  "controls": {
    "zone": {
      "label": "Timezone",
      "errorMessage": "Required",
      "source": {"type": "Timezones", "region": "Europe"}
    }
  }
}`

func TestLoadFS(t *testing.T) {
	fsys := fstest.MapFS{
		"controls/pets.yaml": {Data: []byte(petsYAML)},
		"controls/zone.json": {Data: []byte(zonesJSON)},
		"controls/README.md": {Data: []byte("ignored")},
		"data/animals.json":  {Data: []byte(`[{"id":"cat","name":"Cat"}]`)},
	}
	store, err := config.LoadFS(fsys)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff([]string{"pet", "zone"}, store.IDs()); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}

	pet, ok := store.Control("pet")
	if !ok {
		t.Fatal("pet missing")
	}
	if pet.File != "controls/pets.yaml" || pet.Filter != "startsWith" {
		t.Fatalf("pet = %+v", pet)
	}
	c, err := collection.FromNodes(pet.Options)
	if err != nil {
		t.Fatalf("materialize: %v", err)
	}
	if diff := cmp.Diff([]collection.Key{"cat", "$.1.0", "$.1.1"}, c.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}

	zone, _ := store.Control("zone")
	if zone.Source == nil || zone.Source.Type != config.SourceTimezones || zone.Source.Region != "Europe" {
		t.Fatalf("zone source = %+v", zone.Source)
	}
}

func TestLoadFS_Errors(t *testing.T) {
	cases := []struct {
		name string
		fsys fstest.MapFS
		want string
	}{
		{
			name: "empty file",
			fsys: fstest.MapFS{"a.yaml": {Data: []byte("  ")}},
			want: "is empty",
		},
		{
			name: "duplicate id",
			fsys: fstest.MapFS{
				"a.json": {Data: []byte(`{"controls":{"pet":{}}}`)},
				"b.json": {Data: []byte(`{"controls":{"pet":{}}}`)},
			},
			want: `duplicate control "pet"`,
		},
		{
			name: "unknown policy",
			fsys: fstest.MapFS{"a.json": {Data: []byte(`{"controls":{"pet":{"policy":{"open":"hover"}}}}`)}},
			want: "unknown open policy",
		},
		{
			name: "options and source",
			fsys: fstest.MapFS{"a.json": {Data: []byte(`{"controls":{"pet":{"options":[{"text":"Cat"}],"source":{"type":"timezones"}}}}`)}},
			want: "both options and source",
		},
		{
			name: "incomplete openapi source",
			fsys: fstest.MapFS{"a.json": {Data: []byte(`{"controls":{"pet":{"source":{"type":"openapi","path":"api.yaml"}}}}`)}},
			want: "needs path, schema and property",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.LoadFS(tc.fsys)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestDefinitionOptions(t *testing.T) {
	store, err := config.Parse([]byte(petsYAML), "pets.yaml")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	pet, _ := store.Control("pet")

	fns, err := pet.StateOptions(nil)
	if err != nil {
		t.Fatalf("state options: %v", err)
	}
	opts := state.NewOptions(fns...)
	if opts.OpenPolicy != state.OpenOnType || !opts.RevertOnClose || opts.WrapHighlight {
		t.Fatalf("policies = %+v", opts)
	}
	if opts.DefaultInputValue != "C" || !opts.Filter("Cat", "ca") || opts.Filter("Scat", "ca") {
		t.Fatalf("default input or filter not applied: %+v", opts)
	}

	want := aria.Composition{Label: true, Input: true, Button: true, Popover: true, ListBox: true, Description: true}
	if diff := cmp.Diff(want, pet.Slots()); diff != "" {
		t.Fatalf("composition mismatch (-want +got):\n%s", diff)
	}
	ariaOpts := aria.NewOptions(pet.AriaOptions()...)
	if ariaOpts.ID != "pet" || ariaOpts.Invalid {
		t.Fatalf("aria options = %+v", ariaOpts)
	}

	pet.Filter = "nope"
	if _, err := pet.StateOptions(nil); err == nil {
		t.Fatal("expected unknown filter error")
	}
}
