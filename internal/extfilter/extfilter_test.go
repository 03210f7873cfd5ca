package extfilter

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/taigrr/file-batcher/internal/types"
)

func TestResolve_BuiltInFilters(t *testing.T) {
	tests := []struct {
		filter types.FileFilter
		want   []string
	}{
		{types.FilterImages, []string{".png", ".jpg", ".jpeg", ".webp", ".bmp", ".gif", ".tiff"}},
		{types.FilterVideos, []string{".mp4", ".avi", ".mov", ".mkv", ".webm", ".flv", ".wmv"}},
		{types.FilterText, []string{".txt", ".md", ".json", ".yaml", ".yml", ".csv", ".log"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.filter), func(t *testing.T) {
			got := Resolve(tt.filter, "")
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Resolve(%q) mismatch (-want +got):\n%s", tt.filter, diff)
			}
		})
	}
}

func TestResolve_NoFiltering(t *testing.T) {
	tests := []types.FileFilter{types.FilterAll, "audio", "", "IMAGES"}

	for _, filter := range tests {
		t.Run(string(filter), func(t *testing.T) {
			if got := Resolve(filter, ""); len(got) != 0 {
				t.Errorf("Resolve(%q) = %v, want empty", filter, got)
			}
		})
	}
}

func TestResolve_ReturnsCopy(t *testing.T) {
	first := Resolve(types.FilterImages, "")
	first[0] = ".mutated"

	second := Resolve(types.FilterImages, "")
	if second[0] != ".png" {
		t.Errorf("Resolve() leaked table mutation: got %q, want %q", second[0], ".png")
	}
}

func TestResolve_CustomOverridesFilter(t *testing.T) {
	tests := []struct {
		name   string
		filter types.FileFilter
		custom string
		want   []string
	}{
		{
			name:   "normalizes dots and keeps case",
			filter: types.FilterAll,
			custom: "png, .jpg,JPEG",
			want:   []string{".png", ".jpg", ".JPEG"},
		},
		{
			name:   "overrides built-in filter",
			filter: types.FilterVideos,
			custom: ".txt",
			want:   []string{".txt"},
		},
		{
			name:   "keeps duplicates and order",
			filter: types.FilterAll,
			custom: "md,png,md",
			want:   []string{".md", ".png", ".md"},
		},
		{
			name:   "blank custom falls back to filter",
			filter: types.FilterText,
			custom: "   ",
			want:   []string{".txt", ".md", ".json", ".yaml", ".yml", ".csv", ".log"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.filter, tt.custom)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Resolve(%q, %q) mismatch (-want +got):\n%s", tt.filter, tt.custom, diff)
			}
		})
	}
}

func TestMatcher_Matches(t *testing.T) {
	matcher := New([]string{".png", ".JPG"})

	tests := []struct {
		name string
		want bool
	}{
		{"a.PNG", true},
		{"c.jpg", true},
		{"photo.Jpg", true},
		{"b.txt", false},
		{"png", false},
		{"archive.png.zip", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matcher.Matches(tt.name); got != tt.want {
				t.Errorf("Matches(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestMatcher_EmptySetMatchesAll(t *testing.T) {
	matcher := New(nil)

	for _, name := range []string{"a.png", "README", ".hidden"} {
		if !matcher.Matches(name) {
			t.Errorf("Matches(%q) = false, want true", name)
		}
	}
}

func TestMatcher_MultiDotExtension(t *testing.T) {
	matcher := New(ParseCustom("tar.gz"))

	if !matcher.Matches("backup.TAR.GZ") {
		t.Error("Matches(\"backup.TAR.GZ\") = false, want true")
	}
	if matcher.Matches("backup.gz") {
		t.Error("Matches(\"backup.gz\") = true, want false")
	}
}
