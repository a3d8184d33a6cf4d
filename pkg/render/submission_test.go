package render_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-combobox/pkg/collection"
	"github.com/goliatone/go-combobox/pkg/render"
)

func TestMergeAndSortHiddenFields(t *testing.T) {
	base := map[string]string{
		" existing ": "keep",
		"":           "ignored",
	}

	merged := render.MergeHiddenFields(base,
		render.CSRFToken("_csrf", "token123"),
		render.Hidden(" revision ", 4),
		render.Hidden("  ", "skip"),
	)

	wantMerged := map[string]string{
		"existing": "keep",
		"_csrf":    "token123",
		"revision": "4",
	}
	if diff := cmp.Diff(wantMerged, merged); diff != "" {
		t.Fatalf("merged hidden fields mismatch (-want +got):\n%s", diff)
	}

	wantSorted := []render.HiddenField{
		{Name: "_csrf", Value: "token123"},
		{Name: "existing", Value: "keep"},
		{Name: "revision", Value: "4"},
	}
	if diff := cmp.Diff(wantSorted, render.SortedHiddenFields(merged)); diff != "" {
		t.Fatalf("sorted hidden fields mismatch (-want +got):\n%s", diff)
	}
}

func TestSubmissionFields(t *testing.T) {
	cases := []struct {
		name string
		view render.View
		opts render.RenderOptions
		want []render.HiddenField
	}{
		{
			name: "no name",
			view: render.View{SelectedKey: "cat"},
			want: nil,
		},
		{
			name: "selected key",
			view: render.View{SelectedKey: collection.Key("cat"), InputValue: "Cat"},
			opts: render.RenderOptions{Name: "pet", HiddenFields: map[string]string{"_csrf": "t"}},
			want: []render.HiddenField{{Name: "_csrf", Value: "t"}, {Name: "pet", Value: "cat"}},
		},
		{
			name: "custom text",
			view: render.View{InputValue: "Axolotl"},
			opts: render.RenderOptions{Name: "pet"},
			want: []render.HiddenField{{Name: "pet", Value: "Axolotl"}},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, render.SubmissionFields(tc.view, tc.opts)); diff != "" {
				t.Fatalf("fields mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
