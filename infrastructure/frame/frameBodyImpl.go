package frame

type iFrameBodyImpl struct {
	content interface{}
}

func NewBody() IFrameBody {
	return &iFrameBodyImpl{}
}

func NewBodyFrom(body IFrameBody) IFrameBody {
	return &iFrameBodyImpl{content: body.Content()}
}

func (frameBody *iFrameBodyImpl) SetContent(content interface{}) {
	frameBody.content = content
}

func (frameBody iFrameBodyImpl) Content() interface{} {
	return frameBody.content
}

func (frameBody iFrameBodyImpl) Copy() IFrameBody {
	return &iFrameBodyImpl{content: frameBody.content}
}

func (frameBody *iFrameBodyImpl) CopyFrom(body IFrameBody) {
	frameBody.content = body.Content()
}
