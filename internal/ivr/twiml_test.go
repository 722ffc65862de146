package ivr

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderSay(t *testing.T) {
	resp := &Response{}
	resp.Say("Hello caller")

	body, err := resp.Render()
	require.NoError(t, err)

	text := string(body)
	assert.True(t, strings.HasPrefix(text, xml.Header))
	assert.Contains(t, text, `<Response><Say language="en-IN">Hello caller</Say></Response>`)
}

func TestRenderGather(t *testing.T) {
	resp := &Response{}
	resp.Gather("/api/voice/question", 15, "Rate this statement.", "Press 1 to 5.")
	resp.Redirect("/api/voice/question")

	body, err := resp.Render()
	require.NoError(t, err)

	text := string(body)
	assert.Contains(t, text, `<Gather numDigits="1" action="/api/voice/question" method="POST" timeout="15">`)
	assert.Contains(t, text, `<Say language="en-IN">Rate this statement.</Say>`)
	assert.Contains(t, text, `<Say language="en-IN">Press 1 to 5.</Say>`)
	assert.Contains(t, text, `<Redirect method="POST">/api/voice/question</Redirect>`)

	// The fallback redirect comes after the gather, so silent callers loop.
	assert.Less(t, strings.Index(text, "<Gather"), strings.Index(text, "<Redirect"))
}

func TestRenderEscapesText(t *testing.T) {
	resp := &Response{}
	resp.Say(`You prefer "hands-on" work & tools.`)

	body, err := resp.Render()
	require.NoError(t, err)
	assert.Contains(t, string(body), "You prefer &#34;hands-on&#34; work &amp; tools.")
}

func TestRenderVerbOrder(t *testing.T) {
	resp := &Response{}
	resp.Say("first")
	resp.Say("second")
	resp.Redirect("/next")

	body, err := resp.Render()
	require.NoError(t, err)

	text := string(body)
	assert.Less(t, strings.Index(text, "first"), strings.Index(text, "second"))
	assert.Less(t, strings.Index(text, "second"), strings.Index(text, "/next"))
}
