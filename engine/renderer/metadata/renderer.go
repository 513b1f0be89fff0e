package metadata

// FrameStatus reports the health of the swapchain after acquire or present.
type FrameStatus uint8

const (
	FRAME_STATUS_OK FrameStatus = iota
	// The swapchain still works but no longer matches the surface.
	FRAME_STATUS_SUBOPTIMAL
	// The swapchain can no longer be used and must be rebuilt.
	FRAME_STATUS_OUT_OF_DATE
)

func (s FrameStatus) String() string {
	switch s {
	case FRAME_STATUS_OK:
		return "ok"
	case FRAME_STATUS_SUBOPTIMAL:
		return "suboptimal"
	case FRAME_STATUS_OUT_OF_DATE:
		return "out-of-date"
	}
	return "unknown"
}

// FrameState is the position of the renderer inside the frame protocol.
type FrameState uint8

const (
	FRAME_STATE_IDLE FrameState = iota
	FRAME_STATE_ACQUIRING
	FRAME_STATE_RENDERING
	FRAME_STATE_PRESENTING
	FRAME_STATE_RESIZING
)

func (s FrameState) String() string {
	switch s {
	case FRAME_STATE_IDLE:
		return "idle"
	case FRAME_STATE_ACQUIRING:
		return "acquiring"
	case FRAME_STATE_RENDERING:
		return "rendering"
	case FRAME_STATE_PRESENTING:
		return "presenting"
	case FRAME_STATE_RESIZING:
		return "resizing"
	}
	return "unknown"
}

type RendererBackendConfig struct {
	/** @brief The name of the application */
	ApplicationName string
	/** @brief Initial framebuffer size. */
	Width, Height uint32
	/** @brief Number of frames the CPU may record ahead of the GPU. */
	FramesInFlight uint32
	/** @brief Enables VK_LAYER_KHRONOS_validation and the debug report callback. */
	EnableValidation bool
	/** @brief SPIR-V words of the vertex and fragment stages. */
	VertexShader   []uint32
	FragmentShader []uint32
}
