package vulkan

import (
	"errors"
	"math"
	"testing"

	vk "github.com/goki/vulkan"

	"github.com/spaghettifunk/pong/engine/core"
	"github.com/spaghettifunk/pong/engine/renderer/metadata"
)

func TestChooseSurfaceFormat(t *testing.T) {
	preferred := vk.SurfaceFormat{Format: vk.FormatB8g8r8a8Srgb, ColorSpace: vk.ColorSpaceSrgbNonlinear}
	unorm := vk.SurfaceFormat{Format: vk.FormatB8g8r8a8Unorm, ColorSpace: vk.ColorSpaceSrgbNonlinear}
	rgba := vk.SurfaceFormat{Format: vk.FormatR8g8b8a8Unorm, ColorSpace: vk.ColorSpaceSrgbNonlinear}

	tests := []struct {
		name    string
		formats []vk.SurfaceFormat
		want    vk.SurfaceFormat
	}{
		{name: "preferred only", formats: []vk.SurfaceFormat{preferred}, want: preferred},
		{name: "preferred last", formats: []vk.SurfaceFormat{unorm, rgba, preferred}, want: preferred},
		{name: "fallback to first", formats: []vk.SurfaceFormat{rgba, unorm}, want: rgba},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ChooseSurfaceFormat(tt.formats); got != tt.want {
				t.Fatalf("ChooseSurfaceFormat() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestChoosePresentMode(t *testing.T) {
	tests := []struct {
		name  string
		modes []vk.PresentMode
		want  vk.PresentMode
	}{
		{name: "mailbox available", modes: []vk.PresentMode{vk.PresentModeFifo, vk.PresentModeMailbox}, want: vk.PresentModeMailbox},
		{name: "fifo only", modes: []vk.PresentMode{vk.PresentModeFifo}, want: vk.PresentModeFifo},
		{name: "immediate and fifo", modes: []vk.PresentMode{vk.PresentModeImmediate, vk.PresentModeFifo}, want: vk.PresentModeFifo},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ChoosePresentMode(tt.modes); got != tt.want {
				t.Fatalf("ChoosePresentMode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestChooseExtent(t *testing.T) {
	limits := vk.SurfaceCapabilities{
		MinImageExtent: vk.Extent2D{Width: 100, Height: 100},
		MaxImageExtent: vk.Extent2D{Width: 1920, Height: 1080},
	}

	tests := []struct {
		name          string
		current       vk.Extent2D
		width, height uint32
		want          vk.Extent2D
	}{
		{name: "surface decides", current: vk.Extent2D{Width: 800, Height: 600}, width: 400, height: 300, want: vk.Extent2D{Width: 800, Height: 600}},
		{name: "window size", current: vk.Extent2D{Width: math.MaxUint32, Height: math.MaxUint32}, width: 400, height: 300, want: vk.Extent2D{Width: 400, Height: 300}},
		{name: "clamped low", current: vk.Extent2D{Width: math.MaxUint32, Height: math.MaxUint32}, width: 10, height: 20, want: vk.Extent2D{Width: 100, Height: 100}},
		{name: "clamped high", current: vk.Extent2D{Width: math.MaxUint32, Height: math.MaxUint32}, width: 4000, height: 3000, want: vk.Extent2D{Width: 1920, Height: 1080}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			caps := limits
			caps.CurrentExtent = tt.current
			if got := ChooseExtent(caps, tt.width, tt.height); got != tt.want {
				t.Fatalf("ChooseExtent() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestChooseImageCount(t *testing.T) {
	tests := []struct {
		min, max uint32
		want     uint32
	}{
		{min: 2, max: 0, want: 3},
		{min: 2, max: 8, want: 3},
		{min: 3, max: 3, want: 3},
		{min: 1, max: 2, want: 2},
	}
	for _, tt := range tests {
		caps := vk.SurfaceCapabilities{MinImageCount: tt.min, MaxImageCount: tt.max}
		if got := ChooseImageCount(caps); got != tt.want {
			t.Errorf("ChooseImageCount(min=%d, max=%d) = %d, want %d", tt.min, tt.max, got, tt.want)
		}
	}
}

func TestAcquireAndPresentStatus(t *testing.T) {
	tests := []struct {
		result      vk.Result
		acquire     metadata.FrameStatus
		present     metadata.FrameStatus
		expectError bool
	}{
		{result: vk.Success, acquire: metadata.FRAME_STATUS_OK, present: metadata.FRAME_STATUS_OK},
		{result: vk.Suboptimal, acquire: metadata.FRAME_STATUS_OK, present: metadata.FRAME_STATUS_SUBOPTIMAL},
		{result: vk.ErrorOutOfDate, acquire: metadata.FRAME_STATUS_OUT_OF_DATE, present: metadata.FRAME_STATUS_OUT_OF_DATE},
		{result: vk.ErrorDeviceLost, expectError: true},
		{result: vk.ErrorSurfaceLost, expectError: true},
	}
	for _, tt := range tests {
		t.Run(VulkanResultString(tt.result), func(t *testing.T) {
			acquire, err := acquireStatus(tt.result)
			if tt.expectError {
				if !errors.Is(err, core.ErrAcquireFailed) {
					t.Fatalf("acquireStatus error = %v, want ErrAcquireFailed", err)
				}
			} else if err != nil || acquire != tt.acquire {
				t.Fatalf("acquireStatus = %v, %v, want %v", acquire, err, tt.acquire)
			}

			present, err := presentStatus(tt.result)
			if tt.expectError {
				if !errors.Is(err, core.ErrPresentFailed) {
					t.Fatalf("presentStatus error = %v, want ErrPresentFailed", err)
				}
			} else if err != nil || present != tt.present {
				t.Fatalf("presentStatus = %v, %v, want %v", present, err, tt.present)
			}
		})
	}
}
