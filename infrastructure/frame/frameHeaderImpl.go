package frame

type iFrameHeaderImpl struct {
	header map[string]interface{}
}

func newHeader(header map[string]interface{}) IFrameHeader {
	return &iFrameHeaderImpl{header: header}
}

func (frameHeader iFrameHeaderImpl) KeyExists(key string) bool {
	_, ok := frameHeader.header[key]
	return ok
}

func (frameHeader iFrameHeaderImpl) Value(key string) interface{} {
	return frameHeader.header[key]
}

func (frameHeader iFrameHeaderImpl) Copy() IFrameHeader {
	return &iFrameHeaderImpl{header: deepCopy(frameHeader.header)}
}

func (frameHeader *iFrameHeaderImpl) CopyFrom(header IFrameHeader) {
	other := header.(*iFrameHeaderImpl)
	for key, value := range other.header {
		frameHeader.header[key] = value
	}
}

func (frameHeader *iFrameHeaderImpl) CopyIfAbsent(header IFrameHeader) {
	other := header.(*iFrameHeaderImpl)
	for key, value := range other.header {
		if _, ok := frameHeader.header[key]; !ok {
			frameHeader.header[key] = value
		}
	}
}

func deepCopy(header map[string]interface{}) map[string]interface{} {
	copied := make(map[string]interface{}, len(header))
	for key, value := range header {
		copied[key] = value
	}
	return copied
}
