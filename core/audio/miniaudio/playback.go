package miniaudio

import (
	"context"
	"fmt"
	"sync"

	"github.com/gen2brain/malgo"
	"github.com/koscakluka/simon/core/audio"
)

type playbackClient struct {
	audioContext *malgo.AllocatedContext
	device       *malgo.Device
	config       malgo.DeviceConfig
	encodingInfo audio.EncodingInfo

	// generator fills the output whenever no queued audio is left
	generator     *audio.ToneGenerator
	leftoverAudio []byte
	marks         []playbackMark

	mu      sync.Mutex
	audioMu sync.Mutex
}

func (c *playbackClient) Init(audioContext *malgo.AllocatedContext, encodingInfo audio.EncodingInfo) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	sampleRate := uint32(encodingInfo.SampleRate)
	channels := 1
	format := malgo.FormatS16
	bytesPerFrame := malgo.SampleSizeInBytes(format) * channels

	c.config = malgo.DefaultDeviceConfig(malgo.Playback)
	c.config.SampleRate = sampleRate
	c.config.Playback.Format = format
	c.config.Playback.Channels = uint32(channels)
	c.config.Alsa.NoMMap = 1
	c.config.PeriodSizeInFrames = sampleRate / 50 // ~20ms so tone changes are heard promptly
	c.config.Periods = 4

	c.audioContext = audioContext
	c.encodingInfo = encodingInfo
	c.generator = audio.NewToneGenerator(encodingInfo)

	var err error
	if c.device, err = malgo.InitDevice(
		c.audioContext.Context,
		c.config,
		malgo.DeviceCallbacks{Data: c.processAudio(bytesPerFrame)},
	); err != nil {
		return err
	}

	return nil
}

func (c *playbackClient) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.device == nil {
		return fmt.Errorf("device not initialized")
	}

	if err := c.device.Start(); err != nil {
		return fmt.Errorf("failed to start playback device: %w", err)
	}

	return nil
}

func (c *playbackClient) Stop() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.device == nil {
		return fmt.Errorf("device not initialized")
	}

	if err := c.device.Stop(); err != nil {
		return fmt.Errorf("failed to stop playback device: %w", err)
	}

	c.ClearBuffer()
	return nil
}

func (c *playbackClient) SetTone(hz int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.device == nil {
		return fmt.Errorf("device not initialized")
	}

	c.audioMu.Lock()
	defer c.audioMu.Unlock()
	c.generator.SetFrequency(hz)
	return nil
}

func (c *playbackClient) SendAudio(audio []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.device == nil {
		return fmt.Errorf("device not initialized")
	} else if !c.device.IsStarted() {
		return fmt.Errorf("device not started")
	}

	c.audioMu.Lock()
	defer c.audioMu.Unlock()
	c.leftoverAudio = append(c.leftoverAudio, audio...)
	return nil
}

func (c *playbackClient) ClearBuffer() {
	c.audioMu.Lock()
	defer c.audioMu.Unlock()
	c.leftoverAudio = nil
	marks := c.marks
	c.marks = nil

	// Nothing will ever play past a cleared mark, release its waiter.
	for _, mark := range marks {
		close(mark.done)
	}
}

// AwaitMark blocks until everything queued before the call has been handed to
// the device.
func (c *playbackClient) AwaitMark(ctx context.Context) error {
	done := c.Mark()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *playbackClient) Mark() <-chan struct{} {
	c.audioMu.Lock()
	defer c.audioMu.Unlock()
	mark := playbackMark{
		position: len(c.leftoverAudio),
		done:     make(chan struct{}),
	}
	if mark.position == 0 {
		close(mark.done)
		return mark.done
	}
	c.marks = append(c.marks, mark)
	return mark.done
}

func (c *playbackClient) Uninit() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.device == nil {
		return fmt.Errorf("device not initialized")
	}

	c.device.Uninit()
	c.device = nil
	c.ClearBuffer()

	return nil
}

func (c *playbackClient) EncodingInfo() audio.EncodingInfo {
	if c.encodingInfo.IsZero() {
		return audio.GetDefaultEncodingInfo()
	}
	return c.encodingInfo
}

type playbackMark struct {
	position int
	done     chan struct{}
}

func (c *playbackClient) processAudio(bytesPerFrame int) malgo.DataProc {
	return func(pOutput, _ []byte, frameCount uint32) {
		need := int(frameCount) * bytesPerFrame
		if need > len(pOutput) {
			need = len(pOutput)
		}

		c.audioMu.Lock()
		defer c.audioMu.Unlock()

		queued := copy(pOutput[:need], c.leftoverAudio)
		c.leftoverAudio = c.leftoverAudio[queued:]
		c.processMarks(queued)

		if queued < need {
			c.generator.Fill(pOutput[queued:need])
		}
	}
}

// processMarks must be called with audioMu held.
func (c *playbackClient) processMarks(consumed int) {
	passedMarks := 0
	for i := range c.marks {
		c.marks[i].position -= consumed
		if c.marks[i].position <= 0 {
			passedMarks++
		}
	}
	for _, mark := range c.marks[:passedMarks] {
		close(mark.done)
	}
	c.marks = c.marks[passedMarks:]
}
