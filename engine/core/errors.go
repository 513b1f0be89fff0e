package core

import (
	"errors"
)

var (
	ErrNoSuitableDevice       = errors.New("no physical device meets the requirements")
	ErrValidationLayerMissing = errors.New("required validation layer is missing")
	ErrFenceTimeout           = errors.New("timed out waiting on in-flight fence")
	ErrAcquireFailed          = errors.New("failed to acquire swapchain image")
	ErrPresentFailed          = errors.New("failed to present swapchain image")
	ErrSubmitFailed           = errors.New("failed to submit command buffer")
	ErrTransformCountMismatch = errors.New("transform count does not match model count")
	ErrInvalidMesh            = errors.New("invalid mesh")
	ErrInvalidShader          = errors.New("invalid shader binary")
	ErrInvalidConfig          = errors.New("invalid configuration")
	ErrRendererDestroyed      = errors.New("renderer already destroyed")
)
