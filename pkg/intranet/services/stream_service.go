package services

import (
	"context"

	problem "github.com/developer-overheid-nl/don-intranet/pkg/intranet/helpers/problem"
	"github.com/developer-overheid-nl/don-intranet/pkg/intranet/helpers/httpclient"
	"github.com/developer-overheid-nl/don-intranet/pkg/intranet/models"
)

// StreamService reshapes the MediaMTX path status into the intranet's view.
// Stateless passthrough, no retries: upstream failure is the caller's news.
type StreamService struct {
	client *httpclient.MediaMTXClient
}

func NewStreamService(client *httpclient.MediaMTXClient) *StreamService {
	return &StreamService{client: client}
}

func (s *StreamService) ListStreams(ctx context.Context) (*models.StreamList, error) {
	list, err := s.client.PathsList(ctx)
	if err != nil {
		return nil, problem.NewBadGateway("streams", "cannot reach media server: "+err.Error())
	}

	streams := make([]models.Stream, 0, len(list.Items))
	for _, item := range list.Items {
		stream := models.Stream{
			Name:          item.Name,
			Type:          "unknown",
			Tracks:        item.Tracks,
			Ready:         item.Ready,
			ReadyTime:     item.ReadyTime,
			BytesReceived: item.BytesReceived,
			BytesSent:     item.BytesSent,
			Readers:       len(item.Readers),
		}
		if item.Source != nil && item.Source.Type != "" {
			stream.Type = item.Source.Type
		}
		if stream.Tracks == nil {
			stream.Tracks = []string{}
		}
		streams = append(streams, stream)
	}

	return &models.StreamList{ItemCount: list.ItemCount, Streams: streams}, nil
}
