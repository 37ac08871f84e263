package esdbs

import (
	"context"
	"io"

	"github.com/EventStore/EventStore-Client-Go/esdb"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"

	"github.com/weegigs/wee-void/void"
)

// StreamName is the stream every save is appended to.
type StreamName string

const DefaultStream = StreamName("void")

// Store appends a void:saved event for each save and loads the most recent
// one. The stream doubles as a history of saved counts.
type Store struct {
	db     *esdb.Client
	stream string
}

func NewStore(client *esdb.Client, stream StreamName) *Store {
	if stream == "" {
		stream = DefaultStream
	}

	return &Store{db: client, stream: string(stream)}
}

func (s *Store) Save(ctx context.Context, value uint64) error {
	saved := void.Saved{Count: value}
	data, err := json.Marshal(saved)
	if err != nil {
		return errors.Wrap(err, "failed to marshal event")
	}

	event := esdb.EventData{
		ContentType: esdb.JsonContentType,
		EventType:   void.NameOf(saved),
		Data:        data,
	}

	options := esdb.AppendToStreamOptions{
		ExpectedRevision: esdb.Any{},
	}

	if _, err := s.db.AppendToStream(ctx, s.stream, options, event); err != nil {
		return errors.Wrap(err, "failed to append to stream")
	}

	return nil
}

func (s *Store) Load(ctx context.Context) (uint64, bool, error) {
	stream, err := s.db.ReadStream(
		ctx, s.stream, esdb.ReadStreamOptions{
			Direction: esdb.Backwards,
			From:      esdb.End{},
		}, 1,
	)
	if err != nil {
		if errors.Is(err, esdb.ErrStreamNotFound) {
			return 0, false, nil
		}

		return 0, false, errors.Wrap(err, "failed to read stream")
	}
	defer stream.Close()

	event, err := stream.Recv()
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, esdb.ErrStreamNotFound) {
			return 0, false, nil
		}

		return 0, false, errors.Wrap(err, "failed to read event")
	}

	recorded := event.OriginalEvent()
	if recorded.EventType != void.NameOf(void.Saved{}) {
		return 0, false, errors.Errorf("unexpected event %s in stream %s", recorded.EventType, s.stream)
	}

	var saved void.Saved
	if err := json.Unmarshal(recorded.Data, &saved); err != nil {
		return 0, false, void.InvalidInput(void.PersistedInput, string(recorded.Data), err.Error())
	}

	return saved.Count, true, nil
}
