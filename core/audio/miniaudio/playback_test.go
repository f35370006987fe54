package miniaudio

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/koscakluka/simon/core/audio"
)

func newTestPlaybackClient() *playbackClient {
	encodingInfo := audio.GetDefaultEncodingInfo()
	return &playbackClient{
		encodingInfo: encodingInfo,
		generator:    audio.NewToneGenerator(encodingInfo),
	}
}

func TestProcessAudioDrainsQueuedAudioFirst(t *testing.T) {
	c := newTestPlaybackClient()
	c.leftoverAudio = []byte{1, 2, 3, 4, 5, 6}
	out := make([]byte, 4)

	c.processAudio(2)(out, nil, 2)

	if out[0] != 1 || out[3] != 4 {
		t.Fatalf("expected queued audio to be copied first, got %v", out)
	}
	if len(c.leftoverAudio) != 2 {
		t.Fatalf("expected 2 queued bytes to remain, got %d", len(c.leftoverAudio))
	}
}

func TestProcessAudioFillsRemainderWithTone(t *testing.T) {
	c := newTestPlaybackClient()
	c.generator.SetFrequency(440)
	out := make([]byte, 64)

	c.processAudio(2)(out, nil, 32)

	silent := true
	for _, b := range out {
		if b != 0 {
			silent = false
		}
	}
	if silent {
		t.Fatalf("expected generator tone to fill the output")
	}
}

func TestMarkReleasedOnceQueuedAudioIsConsumed(t *testing.T) {
	c := newTestPlaybackClient()
	c.leftoverAudio = make([]byte, 8)
	done := c.Mark()

	c.processAudio(2)(make([]byte, 4), nil, 2)
	select {
	case <-done:
		t.Fatalf("expected mark to still be pending after partial playback")
	default:
	}

	c.processAudio(2)(make([]byte, 4), nil, 2)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("expected mark to be released after its audio played")
	}
}

func TestMarkWithEmptyQueueIsImmediate(t *testing.T) {
	c := newTestPlaybackClient()

	if err := c.AwaitMark(context.Background()); err != nil {
		t.Fatalf("expected immediate mark, got %v", err)
	}
}

func TestAwaitMarkHonoursContext(t *testing.T) {
	c := newTestPlaybackClient()
	c.leftoverAudio = make([]byte, 8)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := c.AwaitMark(ctx); err == nil {
		t.Fatalf("expected cancelled context error")
	}
}

func TestClearBufferReleasesMarks(t *testing.T) {
	c := newTestPlaybackClient()
	c.leftoverAudio = make([]byte, 8)
	done := c.Mark()

	c.ClearBuffer()

	select {
	case <-done:
	default:
		t.Fatalf("expected clearing the buffer to release pending marks")
	}
}

func TestDeviceCallsWithoutDeviceFail(t *testing.T) {
	c := newTestPlaybackClient()

	var wg sync.WaitGroup
	errs := make(chan error, 4*10)
	for range 10 {
		wg.Add(4)
		go func() { defer wg.Done(); errs <- c.SetTone(440) }()
		go func() { defer wg.Done(); errs <- c.SendAudio(make([]byte, 4)) }()
		go func() { defer wg.Done(); errs <- c.Stop() }()
		go func() { defer wg.Done(); errs <- c.Uninit() }()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err == nil {
			t.Fatalf("expected every call on an uninitialized device to fail")
		}
	}
	if c.generator.Frequency() != 0 {
		t.Fatalf("expected tone to stay unchanged, got %d", c.generator.Frequency())
	}
}

func TestCloseWithoutDevice(t *testing.T) {
	c := &Client{}
	c.leftoverAudio = make([]byte, 8)
	done := c.Mark()

	c.Close()

	select {
	case <-done:
	default:
		t.Fatalf("expected close to release pending marks")
	}
}
