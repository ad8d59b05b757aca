package client

// UpstreamPayload is the body of an FCM legacy HTTP send request.
type UpstreamPayload struct {
	To           string       `json:"to"`
	Notification Notification `json:"notification"`
}

type Notification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// GatewayResponse carries whatever the gateway answered, undecoded.
type GatewayResponse struct {
	StatusCode int
	Body       []byte
}

func (r GatewayResponse) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}
