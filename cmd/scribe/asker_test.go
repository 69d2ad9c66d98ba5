package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestStdinAsker(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "answer is trimmed", input: "  ABC-42  \n", want: "ABC-42"},
		{name: "empty line means skip", input: "\n", want: ""},
		{name: "eof without newline", input: "yes", want: "yes"},
		{name: "eof means skip", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			asker := newStdinAsker(strings.NewReader(tt.input), &out)

			got, err := asker.Ask("Which ticket?")
			if err != nil {
				t.Fatalf("Ask() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Ask() = %q, want %q", got, tt.want)
			}
			if !strings.Contains(out.String(), "Which ticket?") {
				t.Errorf("question not written to prompt writer: %q", out.String())
			}
		})
	}
}

func TestStdinAskerSequentialQuestions(t *testing.T) {
	var out bytes.Buffer
	asker := newStdinAsker(strings.NewReader("first\nsecond\n"), &out)

	for i, want := range []string{"first", "second"} {
		got, err := asker.Ask("Q?")
		if err != nil {
			t.Fatalf("Ask() #%d error: %v", i+1, err)
		}
		if got != want {
			t.Errorf("Ask() #%d = %q, want %q", i+1, got, want)
		}
	}
}
