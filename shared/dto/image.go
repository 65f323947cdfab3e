package dto

import "mime/multipart"

const ImageMaxSizeMB = 2

// ImageUpload is either a multipart "image" part or a JSON body {"image": "data:image/png;base64,..."}.
type ImageUpload struct {
	Image     *multipart.FileHeader `form:"image" json:"-"     validate:"required_without=ImageData,omitempty,mimetypes=image/png image/jpg image/jpeg image/webp,maxfilesize=2"`
	ImageFile multipart.File        `json:"-"`
	ImageData string                `json:"image"             validate:"required_without=Image,omitempty,mimetypes=image/png image/jpg image/jpeg image/webp,maxfilesize=2"`
}

func (i *ImageUpload) IsMultipart() bool {
	return i.Image != nil && i.ImageFile != nil
}
