package portaudio

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/gordonklaus/portaudio"
	"github.com/koscakluka/simon/core/audio"
)

// DefaultBufferSize is the number of frames written to the stream at once.
const DefaultBufferSize = 512

// Client plays tones through a blocking PortAudio output stream. A writer
// goroutine keeps the stream fed while a tone is sounding.
type Client struct {
	bufferSize int
	stream     *portaudio.Stream
	out        []int16
	chunk      []byte

	generator *audio.ToneGenerator

	mu         sync.Mutex // guards stream writes and generator
	toneMu     sync.Mutex // guards writer lifecycle
	stopWriter chan struct{}
	writerDone chan struct{}
}

func NewClient(bufferSize int) (*Client, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize PortAudio: %w", err)
	}

	out := make([]int16, bufferSize)
	stream, err := portaudio.OpenDefaultStream(0, 1, audio.DefaultSampleRate, bufferSize, out)
	if err != nil {
		portaudio.Terminate()
		return nil, fmt.Errorf("failed to open PortAudio stream: %w", err)
	}

	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return nil, fmt.Errorf("failed to start PortAudio stream: %w", err)
	}

	return &Client{
		bufferSize: bufferSize,
		stream:     stream,
		out:        out,
		chunk:      make([]byte, bufferSize*2),
		generator:  audio.NewToneGenerator(audio.GetDefaultEncodingInfo()),
	}, nil
}

func (c *Client) PlayTone(_ context.Context, hz int) error {
	c.mu.Lock()
	c.generator.SetFrequency(hz)
	c.mu.Unlock()

	c.toneMu.Lock()
	defer c.toneMu.Unlock()
	if c.stopWriter != nil {
		return nil
	}

	c.stopWriter = make(chan struct{})
	c.writerDone = make(chan struct{})
	go c.writeTone(c.stopWriter, c.writerDone)
	return nil
}

func (c *Client) StopTone() error {
	c.toneMu.Lock()
	defer c.toneMu.Unlock()
	if c.stopWriter == nil {
		return nil
	}

	close(c.stopWriter)
	<-c.writerDone
	c.stopWriter, c.writerDone = nil, nil

	c.mu.Lock()
	c.generator.SetFrequency(0)
	c.mu.Unlock()
	return nil
}

func (c *Client) writeTone(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	for {
		select {
		case <-stop:
			return
		default:
		}

		c.mu.Lock()
		c.generator.Fill(c.chunk)
		err := c.writeChunk(c.chunk)
		c.mu.Unlock()
		if err != nil {
			logger.Warn("failed to write tone to PortAudio stream", "error", err)
			return
		}
	}
}

// PlayEffect writes the whole effect melody and returns once it has been
// handed to the stream.
func (c *Client) PlayEffect(ctx context.Context, effect audio.Effect) error {
	melody, err := audio.MelodyFor(effect)
	if err != nil {
		return err
	}
	if err := c.StopTone(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	pcm := audio.RenderMelody(melody, c.EncodingInfo())
	chunkSize := c.bufferSize * 2
	for start := 0; start < len(pcm); start += chunkSize {
		if err := ctx.Err(); err != nil {
			return err
		}

		end := min(start+chunkSize, len(pcm))
		clear(c.chunk)
		copy(c.chunk, pcm[start:end])
		if err := c.writeChunk(c.chunk); err != nil {
			return fmt.Errorf("failed to play effect %q: %w", effect, err)
		}
	}
	return nil
}

// writeChunk must be called with mu held.
func (c *Client) writeChunk(chunk []byte) error {
	if err := binary.Read(bytes.NewReader(chunk), binary.LittleEndian, c.out); err != nil {
		return err
	}
	return c.stream.Write()
}

func (c *Client) Close() {
	_ = c.StopTone()
	c.stream.Stop()
	c.stream.Close()
	portaudio.Terminate()
}

func (c *Client) EncodingInfo() audio.EncodingInfo {
	return audio.EncodingInfo{
		SampleRate: audio.DefaultSampleRate,
		Format:     audio.EncodingLinear16,
	}
}
