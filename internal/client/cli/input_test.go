package cli

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPrompter(input string) (*Prompter, *bytes.Buffer) {
	var out bytes.Buffer
	return NewPrompter(strings.NewReader(input), &out), &out
}

func TestPrompter_Line(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "trims", input: "  hello world \n", want: "hello world"},
		{name: "last line without newline", input: "lastline", want: "lastline"},
		{name: "first line only", input: "one\ntwo\n", want: "one"},
		{name: "empty input", input: "", wantErr: io.EOF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, out := newTestPrompter(tt.input)
			got, err := p.Line("Enter name")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "Enter name\n> ", out.String())
		})
	}
}

func TestPrompter_Text(t *testing.T) {
	p, out := newTestPrompter("first\nsecond\n\nignored\n")
	got, err := p.Text("Enter description")
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond", got)
	assert.True(t, strings.HasPrefix(out.String(), "Enter description\n"))

	p, _ = newTestPrompter("tail without newline")
	got, err = p.Text("Enter description")
	require.NoError(t, err)
	assert.Equal(t, "tail without newline", got)

	p, _ = newTestPrompter("")
	got, err = p.Text("Enter description")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPrompter_Password(t *testing.T) {
	p, out := newTestPrompter("")
	p.secret = func() ([]byte, error) { return []byte("s3cret"), nil }

	pw, err := p.Password("Enter password")
	require.NoError(t, err)
	assert.Equal(t, "s3cret", pw)
	assert.Equal(t, "Enter password: \n", out.String())

	p.secret = func() ([]byte, error) { return nil, errors.New("not a terminal") }
	_, err = p.Password("Enter password")
	assert.ErrorContains(t, err, "not a terminal")
}
