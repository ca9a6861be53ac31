package hal

import "go.uber.org/zap"

type hostHAL struct {
	logger *zap.Logger // handed to the app as is
	log    *zap.Logger // named, for the host runners
	fb     *hostFramebuffer
	kbd    *hostKeyboard
	t      *hostTime
}

// New returns a host HAL with a width x height framebuffer.
func New(logger *zap.Logger, width, height int) HAL {
	return newHost(logger, width, height)
}

func newHost(logger *zap.Logger, width, height int) *hostHAL {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &hostHAL{
		logger: logger,
		log:    logger.Named("hal"),
		fb:     newHostFramebuffer(width, height),
		kbd:    newHostKeyboard(),
		t:      newHostTime(),
	}
}

func (h *hostHAL) Logger() *zap.Logger { return h.logger }
func (h *hostHAL) Display() Display    { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input        { return hostInput{kbd: h.kbd} }
func (h *hostHAL) Time() Time          { return h.t }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd *hostKeyboard
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }
