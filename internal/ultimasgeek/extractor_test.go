package ultimasgeek

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/franvillafanez/ultimasgeek-rss/pkg/testutil"
)

var fixedNow = time.Date(2026, 2, 1, 8, 15, 0, 0, time.UTC)

// fakeFetcher serves pages from memory; unknown URLs fail.
type fakeFetcher struct {
	pages map[string]string
	calls []string
}

func (f *fakeFetcher) FetchText(_ context.Context, url string) (string, error) {
	f.calls = append(f.calls, url)
	page, ok := f.pages[url]
	if !ok {
		return "", errors.New("HTTP 404 Not Found")
	}
	return page, nil
}

func newTestExtractor(pages map[string]string) *Extractor {
	e := NewExtractor(&fakeFetcher{pages: pages})
	e.now = func() time.Time { return fixedNow }
	return e
}

func TestParsePost_FullPage(t *testing.T) {
	page := testutil.LoadFixture(t, filepath.Join("testdata", "post.html"))
	postURL := SiteURL + "resena-dune-parte-dos/"

	post, err := newTestExtractor(nil).ParsePost(page, postURL)
	if err != nil {
		t.Fatalf("ParsePost() error = %v", err)
	}
	if post == nil {
		t.Fatal("ParsePost() returned nil post")
	}

	if post.Title != "Reseña: Dune Parte Dos" {
		t.Errorf("Title = %q", post.Title)
	}
	if post.Link != postURL || post.GUID != postURL {
		t.Errorf("Link = %q, GUID = %q, want both %q", post.Link, post.GUID, postURL)
	}
	if want := "Villeneuve cierra la adaptación del libro de Herbert con una secuela enorme."; post.Description != want {
		t.Errorf("Description = %q, want %q", post.Description, want)
	}
	if want := "https://ultimasgeek.com/wp-content/uploads/2026/01/dune.webp"; post.ImageURL != want {
		t.Errorf("ImageURL = %q, want %q", post.ImageURL, want)
	}
	if want := time.Date(2026, 1, 27, 15, 0, 0, 0, time.UTC); !post.Published.Equal(want) {
		t.Errorf("Published = %v, want %v", post.Published, want)
	}
}

func TestParsePost_Title(t *testing.T) {
	tests := []struct {
		name string
		page string
		want string
	}{
		{
			name: "og:title wins",
			page: `<html><head><title>Doc</title><meta property="og:title" content="OG"></head><body><h1>Heading</h1></body></html>`,
			want: "OG",
		},
		{
			name: "blank og:title falls back to h1",
			page: `<html><head><title>Doc</title><meta property="og:title" content="   "></head><body><h1> Heading <em>one</em> </h1></body></html>`,
			want: "Heading one",
		},
		{
			name: "document title last",
			page: `<html><head><title>  Doc title </title></head><body><p>x</p></body></html>`,
			want: "Doc title",
		},
		{
			name: "only first h1 is considered",
			page: `<html><head><title>Doc</title></head><body><h1> </h1><h1>Second</h1></body></html>`,
			want: "Doc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			post, err := newTestExtractor(nil).ParsePost(tt.page, SiteURL+"x/")
			if err != nil {
				t.Fatalf("ParsePost() error = %v", err)
			}
			if post == nil {
				t.Fatal("ParsePost() returned nil post")
			}
			if post.Title != tt.want {
				t.Errorf("Title = %q, want %q", post.Title, tt.want)
			}
		})
	}
}

func TestParsePost_NoTitle(t *testing.T) {
	page := `<html><head><meta property="og:description" content="d"></head><body><p>text</p></body></html>`

	post, err := newTestExtractor(nil).ParsePost(page, SiteURL+"x/")
	if err != nil {
		t.Fatalf("ParsePost() error = %v", err)
	}
	if post != nil {
		t.Errorf("ParsePost() = %+v, want nil", post)
	}
}

func TestParsePost_TitleOnly(t *testing.T) {
	post, err := newTestExtractor(nil).ParsePost(`<html><head><title>X</title></head><body></body></html>`, SiteURL+"x/")
	if err != nil {
		t.Fatalf("ParsePost() error = %v", err)
	}
	if post == nil {
		t.Fatal("ParsePost() returned nil post")
	}

	if post.Title != "X" {
		t.Errorf("Title = %q, want X", post.Title)
	}
	if post.Description != "" {
		t.Errorf("Description = %q, want empty", post.Description)
	}
	if post.ImageURL != "" {
		t.Errorf("ImageURL = %q, want empty", post.ImageURL)
	}
	if !post.Published.Equal(fixedNow) {
		t.Errorf("Published = %v, want run time %v", post.Published, fixedNow)
	}
}

func TestParsePost_Description(t *testing.T) {
	tests := []struct {
		name string
		head string
		body string
		want string
	}{
		{
			name: "og:description",
			head: `<meta property="og:description" content="og"><meta name="description" content="meta">`,
			body: `<p>para</p>`,
			want: "og",
		},
		{
			name: "meta description",
			head: `<meta name="description" content=" meta ">`,
			body: `<p>para</p>`,
			want: "meta",
		},
		{
			name: "first paragraph",
			body: `<p> Hola <strong>mundo</strong> </p><p>segundo</p>`,
			want: "Hola mundo",
		},
		{
			name: "none",
			body: `<div>nothing</div>`,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := "<html><head><title>T</title>" + tt.head + "</head><body>" + tt.body + "</body></html>"
			post, err := newTestExtractor(nil).ParsePost(page, SiteURL+"x/")
			if err != nil {
				t.Fatalf("ParsePost() error = %v", err)
			}
			if post.Description != tt.want {
				t.Errorf("Description = %q, want %q", post.Description, tt.want)
			}
		})
	}
}

func TestParsePost_DateWithNonBreakingSpace(t *testing.T) {
	page := `<html><head><title>T</title></head><body><span class="date">27&nbsp;enero,&nbsp;2026</span></body></html>`

	post, err := newTestExtractor(nil).ParsePost(page, SiteURL+"x/")
	if err != nil {
		t.Fatalf("ParsePost() error = %v", err)
	}
	if want := time.Date(2026, 1, 27, 15, 0, 0, 0, time.UTC); !post.Published.Equal(want) {
		t.Errorf("Published = %v, want %v", post.Published, want)
	}
}

func TestParsePost_DateFromScriptIgnored(t *testing.T) {
	page := `<html><head><title>T</title><script>var d = "27 enero, 2026";</script></head><body><p>sin fecha</p></body></html>`

	post, err := newTestExtractor(nil).ParsePost(page, SiteURL+"x/")
	if err != nil {
		t.Fatalf("ParsePost() error = %v", err)
	}
	if !post.Published.Equal(fixedNow) {
		t.Errorf("Published = %v, want run time %v", post.Published, fixedNow)
	}
}

func TestTruncateDescription(t *testing.T) {
	long := strings.Repeat("ñ", 400)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "short", in: "  hola  ", want: "hola"},
		{name: "exactly max", in: strings.Repeat("a", 300), want: strings.Repeat("a", 300)},
		{name: "long multibyte", in: long, want: strings.Repeat("ñ", 300) + "…"},
		{name: "cut on whitespace", in: strings.Repeat("a", 299) + strings.Repeat(" b", 10), want: strings.Repeat("a", 299) + "…"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncateDescription(tt.in, MaxDescriptionLength); got != tt.want {
				t.Errorf("truncateDescription() = %q (%d runes), want %q", got, len([]rune(got)), tt.want)
			}
		})
	}
}

func TestExtractPost(t *testing.T) {
	postURL := SiteURL + "post-a/"
	e := newTestExtractor(map[string]string{
		postURL: `<html><head><title>A</title></head><body></body></html>`,
	})

	if post := e.ExtractPost(context.Background(), postURL); post == nil || post.Title != "A" {
		t.Errorf("ExtractPost() = %+v, want post titled A", post)
	}

	if post := e.ExtractPost(context.Background(), SiteURL+"missing/"); post != nil {
		t.Errorf("ExtractPost() on fetch failure = %+v, want nil", post)
	}
}
