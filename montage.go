package rgbpca

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/wbrown/rgbpca/imageutil"
)

const (
	montageFontSize = 12.0
	montageCaption  = 20 // caption band height in pixels
	montageGap      = 4
)

// BuildMontage lays out the original image and the three reconstructions
// side by side, each scaled to at most tileWidth pixels wide and captioned
// with the suppressed axis and its eigenvalue. tileWidth <= 0 keeps the
// original size.
func BuildMontage(original *imageutil.RGBAImage, res *Result, tileWidth int) (*imageutil.RGBAImage, error) {
	ttf, err := freetype.ParseFont(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse caption font: %w", err)
	}

	tiles := []*imageutil.RGBAImage{original}
	captions := []string{"original"}
	for k, out := range res.Outputs {
		tiles = append(tiles, ToImage(out))
		captions = append(captions, fmt.Sprintf("without axis %d (%.1f)", k, res.Eigen.Values[k]))
	}

	width, height := montageGap, 0
	for i, t := range tiles {
		tiles[i] = imageutil.FitWidth(t, tileWidth, imageutil.InterpolationArea)
		width += tiles[i].Width() + montageGap
		if h := tiles[i].Height(); h > height {
			height = h
		}
	}
	height += montageCaption + 2*montageGap

	sheet := imageutil.NewRGBAImage(width, height)
	draw.Draw(sheet.RGBA, sheet.Bounds(), image.White, image.Point{}, draw.Src)

	x := montageGap
	for i, t := range tiles {
		top := montageGap + montageCaption
		draw.Draw(sheet.RGBA, image.Rect(x, top, x+t.Width(), top+t.Height()),
			t.RGBA, image.Point{}, draw.Src)

		if err := drawCaption(sheet, ttf, captions[i], x, montageGap+montageFontSize); err != nil {
			return nil, err
		}
		x += t.Width() + montageGap
	}
	return sheet, nil
}

// drawCaption renders text with its baseline at (x, baseline).
func drawCaption(dst *imageutil.RGBAImage, ttf *truetype.Font, text string, x int, baseline float64) error {
	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(ttf)
	ctx.SetFontSize(montageFontSize)
	ctx.SetClip(dst.Bounds())
	ctx.SetDst(dst.RGBA)
	ctx.SetSrc(image.NewUniform(color.Black))
	ctx.SetHinting(font.HintingFull)

	if _, err := ctx.DrawString(text, freetype.Pt(x, int(baseline))); err != nil {
		return fmt.Errorf("draw caption %q: %w", text, err)
	}
	return nil
}

// SaveMontage builds the montage and writes it to path.
func SaveMontage(path string, original *imageutil.RGBAImage, res *Result, tileWidth int) error {
	sheet, err := BuildMontage(original, res, tileWidth)
	if err != nil {
		return err
	}
	if err := imageutil.SaveImage(sheet, path); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}
