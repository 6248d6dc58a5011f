package frame

type iFrameImpl struct {
	header IFrameHeader
	body   IFrameBody
}

func newFrame(header IFrameHeader, body IFrameBody) IFrame {
	return &iFrameImpl{header: header, body: body}
}

func (frame iFrameImpl) Header() IFrameHeader {
	return frame.header
}

func (frame iFrameImpl) Body() IFrameBody {
	return frame.body
}

func (frame iFrameImpl) Copy() IFrame {
	return &iFrameImpl{header: frame.header.Copy(), body: frame.body.Copy()}
}

func (frame *iFrameImpl) CopyFrom(iFrame IFrame) {
	frame.header = iFrame.Header().Copy()
	frame.body = iFrame.Body().Copy()
}
