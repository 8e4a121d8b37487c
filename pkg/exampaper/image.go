package exampaper

import (
	"bytes"
	"fmt"
	"image"

	// Registered decoders for the supported upload formats.
	_ "image/jpeg"
	_ "image/png"

	"github.com/exampaper/go-exampaper/pkg/exampaper/ooxml"
)

// defaultImageWidthEMU is the fixed display width for embedded images:
// 4 inches, matching the authoring tool's layout.
const defaultImageWidthEMU = 4 * ooxml.EMUsPerInch

// mediaPart is a binary image payload destined for word/media/ in the
// output package.
type mediaPart struct {
	Name        string
	ContentType string
	Extension   string
	Data        []byte
}

// inspectImage reads the image header and returns the media part metadata
// plus the display extents scaled to widthEMU with the aspect ratio
// preserved. The bytes themselves are embedded as-is, never re-encoded.
func inspectImage(data []byte, index int, widthEMU int64) (mediaPart, int64, int64, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return mediaPart{}, 0, 0, err
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return mediaPart{}, 0, 0, fmt.Errorf("image has degenerate dimensions %dx%d", cfg.Width, cfg.Height)
	}

	ext := "png"
	contentType := "image/png"
	if format == "jpeg" {
		ext = "jpeg"
		contentType = "image/jpeg"
	}

	part := mediaPart{
		Name:        mediaPartName(index, ext),
		ContentType: contentType,
		Extension:   ext,
		Data:        data,
	}

	heightEMU := widthEMU * int64(cfg.Height) / int64(cfg.Width)
	return part, widthEMU, heightEMU, nil
}

func mediaPartName(index int, ext string) string {
	return fmt.Sprintf("word/media/question_image%d.%s", index, ext)
}

func mediaNameTaken(tpl *Template, media []mediaPart, name string) bool {
	if tpl.HasPart(name) {
		return true
	}
	for _, m := range media {
		if m.Name == name {
			return true
		}
	}
	return false
}
