package feeds

import "testing"

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text", "hello world", "hello world"},
		{"simple tags", "<p>hello</p>", "hello"},
		{"adjacent blocks keep separation", "<p>one</p><p>two</p>", "one two"},
		{"inline markup", "read <b>this</b> now", "read this now"},
		{"entities decoded", "fish &amp; chips", "fish & chips"},
		{"whitespace collapsed", "  a \n\t b  ", "a b"},
		{"script dropped", "<p>text</p><script>alert(1)</script>", "text"},
		{"empty element", "<p></p>", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripHTML(tt.in); got != tt.want {
				t.Errorf("StripHTML(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
