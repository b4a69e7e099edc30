package feed

import "testing"

func TestStripInvalidXMLChars(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "Últimas Geek", want: "Últimas Geek"},
		{name: "keeps tab and newlines", in: "a\tb\nc\rd", want: "a\tb\nc\rd"},
		{name: "drops C0 controls", in: "a\x00b\x01c\x1fd", want: "abcd"},
		{name: "drops vertical tab and form feed", in: "a\vb\fc", want: "abc"},
		{name: "drops noncharacters", in: "a\uFFFEb\uFFFFc", want: "abc"},
		{name: "keeps astral plane", in: "geek 🤓", want: "geek 🤓"},
		{name: "invalid utf-8 becomes replacement", in: "a\xffb", want: "a\uFFFDb"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripInvalidXMLChars(tt.in); got != tt.want {
				t.Errorf("StripInvalidXMLChars(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
