package models

// Stream is the reshaped status of one MediaMTX path.
type Stream struct {
	Name          string   `json:"name"`
	Type          string   `json:"type"`
	Tracks        []string `json:"tracks"`
	Ready         bool     `json:"ready"`
	ReadyTime     *string  `json:"readyTime"`
	BytesReceived int64    `json:"bytesReceived"`
	BytesSent     int64    `json:"bytesSent"`
	Readers       int      `json:"readers"`
}

type StreamList struct {
	ItemCount int      `json:"itemCount"`
	Streams   []Stream `json:"streams"`
}
