package ultimasgeek

import (
	"path/filepath"
	"slices"
	"testing"

	"github.com/franvillafanez/ultimasgeek-rss/pkg/testutil"
)

func linksPage(hrefs ...string) string {
	page := "<html><body>"
	for _, href := range hrefs {
		page += `<a href="` + href + `">link</a>`
	}
	return page + "</body></html>"
}

func TestExtractPostURLs(t *testing.T) {
	tests := []struct {
		name  string
		hrefs []string
		want  []string
	}{
		{
			name: "filters and normalizes",
			hrefs: []string{
				SiteURL + "post-a/",
				SiteURL + "category/x",
				SiteURL + "post-a/?utm=1",
				SiteURL + "contacto/",
			},
			want: []string{SiteURL + "post-a/"},
		},
		{
			name:  "keeps first appearance order",
			hrefs: []string{SiteURL + "a/", SiteURL + "b/", SiteURL + "a/", SiteURL + "c/"},
			want:  []string{SiteURL + "a/", SiteURL + "b/", SiteURL + "c/"},
		},
		{
			name:  "trims whitespace around href",
			hrefs: []string{"  " + SiteURL + "post-a/  "},
			want:  []string{SiteURL + "post-a/"},
		},
		{
			name:  "no candidates",
			hrefs: []string{"https://example.com/", "/relative/", SiteURL},
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractPostURLs(linksPage(tt.hrefs...), SiteURL)
			if err != nil {
				t.Fatalf("ExtractPostURLs() error = %v", err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("ExtractPostURLs() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtractPostURLs_HomePage(t *testing.T) {
	home := testutil.LoadFixture(t, filepath.Join("testdata", "home.html"))

	got, err := ExtractPostURLs(home, SiteURL)
	if err != nil {
		t.Fatalf("ExtractPostURLs() error = %v", err)
	}

	for _, u := range got {
		if !IsPostURL(u, SiteURL) {
			t.Errorf("returned URL %q is not a post URL", u)
		}
	}

	testutil.CompareGoldenSlice(t, filepath.Join("testdata", "home_urls.golden"), got)
}
