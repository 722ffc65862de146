// Package ivr implements the voice quiz: TwiML rendering and the per-turn
// state machine that drives a call through the two quiz phases.
package ivr

import "encoding/xml"

// LangEnIN is the spoken language for all prompts.
const LangEnIN = "en-IN"

// Say speaks text to the caller.
type Say struct {
	XMLName  xml.Name `xml:"Say"`
	Language string   `xml:"language,attr,omitempty"`
	Text     string   `xml:",chardata"`
}

// Redirect posts the call to another webhook.
type Redirect struct {
	XMLName xml.Name `xml:"Redirect"`
	Method  string   `xml:"method,attr,omitempty"`
	URL     string   `xml:",chardata"`
}

// Gather collects keypad digits while speaking its nested prompts, then
// posts them to Action. If the caller stays silent past Timeout, the verbs
// after the Gather run instead.
type Gather struct {
	XMLName   xml.Name `xml:"Gather"`
	NumDigits int      `xml:"numDigits,attr"`
	Action    string   `xml:"action,attr"`
	Method    string   `xml:"method,attr"`
	Timeout   int      `xml:"timeout,attr"`
	Prompts   []Say
}

// Response is an ordered list of spoken-prompt instructions for one turn.
type Response struct {
	XMLName xml.Name `xml:"Response"`
	Verbs   []interface{}
}

// Say appends a spoken announcement.
func (r *Response) Say(text string) {
	r.Verbs = append(r.Verbs, Say{Language: LangEnIN, Text: text})
}

// Gather appends a one-digit gather posting back to action.
func (r *Response) Gather(action string, timeout int, prompts ...string) {
	g := Gather{
		NumDigits: 1,
		Action:    action,
		Method:    "POST",
		Timeout:   timeout,
	}
	for _, p := range prompts {
		g.Prompts = append(g.Prompts, Say{Language: LangEnIN, Text: p})
	}
	r.Verbs = append(r.Verbs, g)
}

// Redirect appends a redirect to url.
func (r *Response) Redirect(url string) {
	r.Verbs = append(r.Verbs, Redirect{Method: "POST", URL: url})
}

// Render serializes the response as a TwiML document.
func (r *Response) Render() ([]byte, error) {
	body, err := xml.Marshal(r)
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}
