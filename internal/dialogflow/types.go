// Package dialogflow holds the fulfillment webhook wire types used by
// the conversational platform.
package dialogflow

import "strconv"

// Intent identifies the classified intent of a query
type Intent struct {
	Name        string `json:"name,omitempty"`
	DisplayName string `json:"displayName"`
}

// QueryResult carries the classification outcome for one user query
type QueryResult struct {
	QueryText    string         `json:"queryText,omitempty"`
	Parameters   map[string]any `json:"parameters,omitempty"`
	Intent       Intent         `json:"intent"`
	LanguageCode string         `json:"languageCode,omitempty"`
}

// WebhookRequest is the inbound fulfillment request envelope
type WebhookRequest struct {
	ResponseID  string      `json:"responseId,omitempty"`
	Session     string      `json:"session,omitempty"`
	QueryResult QueryResult `json:"queryResult"`
}

// TextBlock wraps the text lines of one fulfillment message
type TextBlock struct {
	Text []string `json:"text"`
}

// Message is a single fulfillment message envelope
type Message struct {
	Text *TextBlock `json:"text"`
}

// WebhookResponse is the outbound fulfillment payload. The contract is
// always HTTP 200 with this body, whatever happened internally.
type WebhookResponse struct {
	FulfillmentText     string    `json:"fulfillmentText"`
	FulfillmentMessages []Message `json:"fulfillmentMessages"`
}

// NewTextResponse wraps rendered text blocks into a response, one
// message envelope per block, with the first block as fulfillmentText.
func NewTextResponse(blocks ...string) WebhookResponse {
	resp := WebhookResponse{}
	if len(blocks) > 0 {
		resp.FulfillmentText = blocks[0]
	}
	for _, b := range blocks {
		resp.FulfillmentMessages = append(resp.FulfillmentMessages, Message{
			Text: &TextBlock{Text: []string{b}},
		})
	}
	return resp
}

// StringParameters flattens the loosely typed parameter map into
// strings. Dialogflow sends strings for the entities this service
// uses, but numbers slip through for some entity types.
func (q QueryResult) StringParameters() map[string]string {
	params := make(map[string]string, len(q.Parameters))
	for k, v := range q.Parameters {
		switch t := v.(type) {
		case string:
			params[k] = t
		case float64:
			params[k] = strconv.FormatFloat(t, 'f', -1, 64)
		case bool:
			params[k] = strconv.FormatBool(t)
		}
	}
	return params
}
