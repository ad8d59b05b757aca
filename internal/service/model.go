package service

import "encoding/json"

type NotificationRequest struct {
	Token string
	Title string
	Body  string
}

// RelayResult is the gateway's answer: Success reports a 2xx status and Body
// holds the decoded upstream JSON either way.
type RelayResult struct {
	Success    bool
	StatusCode int
	Body       json.RawMessage
}
