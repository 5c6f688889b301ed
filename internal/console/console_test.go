package console

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/heartsforbots/internal/hearts"
)

func TestRequestTextReturnsLine(t *testing.T) {
	var out bytes.Buffer
	p := New("Pat", strings.NewReader("PLAY QS\n"), &out)

	resp, err := p.RequestText(context.Background(), hearts.Prompt{Kind: hearts.PromptPlay, Text: "What is your play?"})
	require.NoError(t, err)
	assert.Equal(t, "PLAY QS", resp)
	assert.Contains(t, out.String(), "What is your play?")
}

func TestRequestIntRepromptsLocally(t *testing.T) {
	var out bytes.Buffer
	p := New("Pat", strings.NewReader("banana\n9\n3\n"), &out)

	n, err := p.RequestInt(context.Background(), hearts.Prompt{Kind: hearts.PromptPassCount, Text: "How many?"}, 1, 4)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Contains(t, out.String(), "not a number")
	assert.Contains(t, out.String(), "out of range")
}

func TestRequestTextEOF(t *testing.T) {
	var out bytes.Buffer
	p := New("Pat", strings.NewReader(""), &out)

	_, err := p.RequestText(context.Background(), hearts.Prompt{Text: "anything?"})
	assert.ErrorIs(t, err, io.EOF)
}

func TestRequestTextHonoursContext(t *testing.T) {
	var out bytes.Buffer
	blocked, _ := io.Pipe()
	p := New("Pat", blocked, &out)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := p.RequestText(ctx, hearts.Prompt{Text: "anything?"})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNotifyAndReportError(t *testing.T) {
	var out bytes.Buffer
	p := New("Pat", strings.NewReader(""), &out)

	p.Notify("Maud plays the Queen of Spades.")
	p.ReportError("you do not have the Ace of Hearts")
	assert.Contains(t, out.String(), "Queen of Spades")
	assert.Contains(t, out.String(), "Ace of Hearts")
}
