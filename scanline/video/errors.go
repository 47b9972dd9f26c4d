package video

// Error is a configuration error code. The engine records the code of the
// last configuration call, successful or not, and every failing call also
// returns it as an error value comparable with errors.Is.
type Error int

const (
	OK Error = iota
	ErrOutOfMemory
	ErrIdxLayer
	ErrIdxSprite
	ErrIdxAnimation
	ErrIdxPicture
	ErrRefTileset
	ErrRefTilemap
	ErrRefSpriteset
	ErrRefPalette
	ErrRefSequence
	ErrRefSequencePack
	ErrRefBitmap
	ErrNullPointer
	ErrFileNotFound
	ErrWrongFormat
	ErrWrongSize
	ErrUnsupported
	ErrRefList
)

var errorNames = [...]string{
	OK:                 "No error",
	ErrOutOfMemory:     "Not enough memory",
	ErrIdxLayer:        "Layer index out of range",
	ErrIdxSprite:       "Sprite index out of range",
	ErrIdxAnimation:    "Animation index out of range",
	ErrIdxPicture:      "Picture or tile index out of range",
	ErrRefTileset:      "Invalid Tileset reference",
	ErrRefTilemap:      "Invalid Tilemap reference",
	ErrRefSpriteset:    "Invalid Spriteset reference",
	ErrRefPalette:      "Invalid Palette reference",
	ErrRefSequence:     "Invalid Sequence reference",
	ErrRefSequencePack: "Invalid SequencePack reference",
	ErrRefBitmap:       "Invalid Bitmap reference",
	ErrNullPointer:     "Null pointer as required argument",
	ErrFileNotFound:    "Resource file not found",
	ErrWrongFormat:     "Resource file has invalid format",
	ErrWrongSize:       "A width or height parameter is invalid",
	ErrUnsupported:     "Unsupported function",
	ErrRefList:         "Invalid ObjectList reference",
}

func (e Error) Error() string {
	if e < 0 || int(e) >= len(errorNames) {
		return "Unknown error"
	}
	return errorNames[e]
}

// LastError returns the code recorded by the most recent configuration call.
func (e *Engine) LastError() Error {
	return e.lastErr
}

// LastErrorString describes the code recorded by the most recent
// configuration call.
func (e *Engine) LastErrorString() string {
	return e.lastErr.Error()
}

// succeed records a successful configuration call.
func (e *Engine) succeed() error {
	e.lastErr = OK
	return nil
}

// fail records err as the last error and logs it at debug level.
func (e *Engine) fail(err Error, op string, attrs ...any) error {
	e.lastErr = err
	e.logger.Debug("Configuration error", append([]any{"op", op, "error", err.Error()}, attrs...)...)
	return err
}
