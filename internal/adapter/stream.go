package adapter

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

const (
	eventPut         = "put"
	eventPatch       = "patch"
	eventKeepAlive   = "keep-alive"
	eventCancel      = "cancel"
	eventAuthRevoked = "auth_revoked"

	maxEventSize = 8 << 20
)

// streamEvent is one server-sent event as delivered by the database.
type streamEvent struct {
	name string
	data []byte
}

// streamPayload is the body of put and patch events.
type streamPayload struct {
	Path string          `json:"path"`
	Data json.RawMessage `json:"data"`
}

// Subscribe implements [RemoteSource]. It keeps an event stream open on
// GET /<path>.json and calls onChange with the data of every put and patch
// event. A stream that ends for any reason is reopened after the retry delay
// until unsubscribe is called or ctx is done.
func (f *firebaseRemoteSource) Subscribe(ctx context.Context, path string, onChange func(data json.RawMessage)) (func(), error) {
	if onChange == nil {
		return nil, errors.New("subscribe: nil change handler")
	}

	streamCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)
		f.runStream(streamCtx, path, onChange)
	}()

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			cancel()
			<-done
		})
	}

	return unsubscribe, nil
}

func (f *firebaseRemoteSource) runStream(ctx context.Context, path string, onChange func(json.RawMessage)) {
	log := f.logger.With().Str("func", "firebaseRemoteSource.runStream").Str("path", path).Logger()

	for {
		err := f.stream(ctx, path, onChange)
		if ctx.Err() != nil {
			log.Debug().Msg("stream closed")
			return
		}

		log.Warn().Err(err).Dur("retry_in", f.retryDelay).Msg("stream ended, reconnecting")

		timer := time.NewTimer(f.retryDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			log.Debug().Msg("stream closed")
			return
		case <-timer.C:
		}
	}
}

// stream runs one connection until it ends. It always returns a non-nil
// error describing why.
func (f *firebaseRemoteSource) stream(ctx context.Context, path string, onChange func(json.RawMessage)) error {
	resp, err := f.streamClient.R().
		SetContext(ctx).
		SetHeader("Accept", "text/event-stream").
		SetQueryParams(f.queryParams()).
		SetDoNotParseResponse(true).
		Get(resourcePath(path))
	if err != nil {
		return fmt.Errorf("open stream: %w", err)
	}

	body := resp.RawBody()
	defer body.Close()

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		msg, _ := io.ReadAll(io.LimitReader(body, 4096))
		return fmt.Errorf("open stream: %w", mapHTTPStatus(resp.StatusCode(), string(msg)))
	}

	f.logger.Debug().Str("path", path).Msg("stream opened")

	err = readEvents(body, func(ev streamEvent) error {
		switch ev.name {
		case eventPut, eventPatch:
			var payload streamPayload
			if err := json.Unmarshal(ev.data, &payload); err != nil {
				return fmt.Errorf("decode %s event: %w", ev.name, err)
			}
			if len(payload.Data) == 0 {
				payload.Data = jsonNull
			}
			onChange(payload.Data)
		case eventKeepAlive:
		case eventCancel:
			return fmt.Errorf("%w: %s", ErrStreamCancelled, strings.TrimSpace(string(ev.data)))
		case eventAuthRevoked:
			return ErrAuthRevoked
		default:
			f.logger.Debug().Str("event", ev.name).Msg("unknown stream event skipped")
		}
		return nil
	})
	if err != nil {
		return err
	}

	return io.ErrUnexpectedEOF
}

// readEvents parses a text/event-stream body and calls handle for every
// complete event. It returns nil when r reaches EOF and the handler error
// otherwise.
func readEvents(r io.Reader, handle func(streamEvent) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxEventSize)

	var (
		name string
		data bytes.Buffer
	)

	dispatch := func() error {
		defer func() {
			name = ""
			data.Reset()
		}()
		if name == "" && data.Len() == 0 {
			return nil
		}
		return handle(streamEvent{name: name, data: bytes.Clone(data.Bytes())})
	}

	for scanner.Scan() {
		line := scanner.Text()

		if line == "" {
			if err := dispatch(); err != nil {
				return err
			}
			continue
		}
		if strings.HasPrefix(line, ":") {
			continue
		}

		field, value, _ := strings.Cut(line, ":")
		value = strings.TrimPrefix(value, " ")

		switch field {
		case "event":
			name = value
		case "data":
			if data.Len() > 0 {
				data.WriteByte('\n')
			}
			data.WriteString(value)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read stream: %w", err)
	}

	return dispatch()
}
