// SPDX-License-Identifier: MPL-2.0

package tokenfmt

import (
	"bytes"
	"encoding/json"
	"errors"
	"slices"
	"testing"

	"mvdan.cc/sh/v3/syntax"
)

var genSomething = []string{"gen-something", "--something-to-gen", "2", "--tuple", "1->2", "--variables", "1->2,3->4"}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"plain", FormatPlain, false},
		{"SHELL", FormatShell, false},
		{" json ", FormatJSON, false},
		{"lines", FormatLines, false},
		{"", FormatPlain, false},
		{"yaml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidFormat) {
					t.Fatalf("ParseFormat(%q) error = %v, want ErrInvalidFormat", tt.in, err)
				}
				var fmtErr *InvalidFormatError
				if !errors.As(err, &fmtErr) {
					t.Fatalf("error type = %T, want *InvalidFormatError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFormat(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		tokens []string
		format Format
		want   string
	}{
		{"plain", genSomething, FormatPlain, "gen-something --something-to-gen 2 --tuple 1->2 --variables 1->2,3->4"},
		{"lines", []string{"mock", "--with", "with"}, FormatLines, "mock\n--with\nwith"},
		{"json", []string{"mock", "--with", "a b"}, FormatJSON, `["mock","--with","a b"]`},
		{"json empty", nil, FormatJSON, `[]`},
		{"json arrows not escaped", []string{"--tuple", "1->2"}, FormatJSON, `["--tuple","1->2"]`},
		{"shell plain words unquoted", []string{"mock", "--path", "foo/bar/file.text"}, FormatShell, "mock --path foo/bar/file.text"},
		{"shell spaces quoted", []string{"run", "--name", "two words"}, FormatShell, "run --name 'two words'"},
		{"shell empty token quoted", []string{"list", "--items", ""}, FormatShell, "list --items ''"},
		{"shell redirection quoted", []string{"gen", "--tuple", "1->2"}, FormatShell, "gen --tuple '1->2'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Render(tt.tokens, tt.format)
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRender_ShellRoundTrip(t *testing.T) {
	t.Parallel()

	tokens := []string{"run", "--msg", "it's $HOME", "--empty", "", "--tuple", "1->2"}
	line, err := Render(tokens, FormatShell)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	file, err := syntax.NewParser().Parse(bytes.NewBufferString(line), "")
	if err != nil {
		t.Fatalf("parse %q: %v", line, err)
	}
	call, ok := file.Stmts[0].Cmd.(*syntax.CallExpr)
	if !ok {
		t.Fatalf("statement is %T, want *syntax.CallExpr", file.Stmts[0].Cmd)
	}
	if len(call.Args) != len(tokens) {
		t.Errorf("shell sees %d words, want %d", len(call.Args), len(tokens))
	}
	if len(file.Stmts[0].Redirs) != 0 {
		t.Errorf("shell line %q parsed with redirections", line)
	}
}

func TestWrite(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Write(&buf, genSomething, FormatJSON); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	var got []string
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if !slices.Equal(got, genSomething) {
		t.Errorf("decoded = %q, want %q", got, genSomething)
	}
	if buf.Bytes()[buf.Len()-1] != '\n' {
		t.Error("output is not newline terminated")
	}
}

func TestWrite_InvalidFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := Write(&buf, genSomething, Format("xml"))
	if !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("Write() error = %v, want ErrInvalidFormat", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Write() wrote %q on error", buf.String())
	}
}

func TestFormatNames(t *testing.T) {
	t.Parallel()

	want := []string{"plain", "shell", "json", "lines"}
	if got := FormatNames(); !slices.Equal(got, want) {
		t.Errorf("FormatNames() = %q, want %q", got, want)
	}
}
