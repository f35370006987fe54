package miniaudio

import (
	"context"
	"fmt"

	"github.com/gen2brain/malgo"
	"github.com/koscakluka/simon/core/audio"
)

type Client struct {
	// audioContext is only saved to be able to uninitialize it, it is an
	// ownership thing
	audioContext *malgo.AllocatedContext
	playbackClient
}

func NewClient() (*Client, error) {
	audioCtx, err := malgo.InitContext(
		nil,
		malgo.ContextConfig{},
		func(message string) { logger.Debug("malgo", "message", message) },
	)
	if err != nil {
		return nil, fmt.Errorf("malgo InitContext failed: %w", err)
	}

	client := Client{
		audioContext: audioCtx,
	}

	if err := client.playbackClient.Init(audioCtx, audio.GetDefaultEncodingInfo()); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to initialize playback client: %w", err)
	}

	if err := client.playbackClient.Start(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to start playback device: %w", err)
	}

	return &client, nil
}

// PlayTone starts a continuous tone that keeps sounding until StopTone.
func (c *Client) PlayTone(_ context.Context, hz int) error {
	return c.playbackClient.SetTone(hz)
}

func (c *Client) StopTone() error {
	return c.playbackClient.SetTone(0)
}

// PlayEffect queues the effect melody and blocks until the device has
// consumed all of it or ctx is done.
func (c *Client) PlayEffect(ctx context.Context, effect audio.Effect) error {
	melody, err := audio.MelodyFor(effect)
	if err != nil {
		return err
	}

	if err := c.playbackClient.SetTone(0); err != nil {
		return err
	}
	if err := c.playbackClient.SendAudio(audio.RenderMelody(melody, c.EncodingInfo())); err != nil {
		return fmt.Errorf("failed to queue effect %q: %w", effect, err)
	}

	return c.playbackClient.AwaitMark(ctx)
}

// Close stops playback, releasing any PlayEffect still waiting, and frees the
// device.
func (c *Client) Close() {
	_ = c.playbackClient.Stop()
	_ = c.playbackClient.Uninit()
	c.playbackClient.ClearBuffer()
	if c.audioContext != nil {
		_ = c.audioContext.Uninit()
		c.audioContext.Free()
		c.audioContext = nil
	}
}

func (c *Client) EncodingInfo() audio.EncodingInfo {
	return c.playbackClient.EncodingInfo()
}
