package helper

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"math"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"golang.org/x/image/draw"
)

const (
	maxUploadSize = int64(5 * 1024 * 1024)
	maxDim        = 1600
	thumbDim      = 320
	webpQuality   = 80
)

/* =======================================================================
   Image upload: multipart → decode → downscale → webp → OSS

   Returns the public URL only; callers (room images, building images,
   payment/transaction/refund proofs) persist the string.
======================================================================= */

func UploadImage(folder string, fh *multipart.FileHeader) (string, error) {
	if fh.Size > maxUploadSize {
		return "", fmt.Errorf("file too large (max %d MB)", maxUploadSize/(1024*1024))
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(src); err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}

	img, err := decodeImage(buf.Bytes(), fh.Filename)
	if err != nil {
		return "", err
	}
	img = downscaleIfNeeded(img, maxDim, maxDim)

	out := new(bytes.Buffer)
	if err := webp.Encode(out, img, &webp.Options{Lossless: false, Quality: webpQuality}); err != nil {
		return "", fmt.Errorf("webp encode: %w", err)
	}

	key := fmt.Sprintf("%s/%s.webp", strings.Trim(folder, "/"), uuid.NewString())
	b, err := bucket()
	if err != nil {
		return "", err
	}
	if err := b.PutObject(key, bytes.NewReader(out.Bytes()), oss.ContentType("image/webp")); err != nil {
		return "", fmt.Errorf("oss put: %w", err)
	}
	return publicURL(key), nil
}

// UploadImages uploads every file under the given multipart form field.
func UploadImages(form *multipart.Form, field, folder string) ([]string, error) {
	files := form.File[field]
	urls := make([]string, 0, len(files))
	for _, fh := range files {
		u, err := UploadImage(folder, fh)
		if err != nil {
			return nil, err
		}
		urls = append(urls, u)
	}
	return urls, nil
}

// UploadThumbnail stores a small square crop next to the original.
func UploadThumbnail(folder string, fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(src); err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	img, err := decodeImage(buf.Bytes(), fh.Filename)
	if err != nil {
		return "", err
	}

	thumb := imaging.Fill(img, thumbDim, thumbDim, imaging.Center, imaging.Lanczos)
	out := new(bytes.Buffer)
	if err := webp.Encode(out, thumb, &webp.Options{Lossless: false, Quality: webpQuality}); err != nil {
		return "", fmt.Errorf("webp encode: %w", err)
	}

	key := fmt.Sprintf("%s/thumb/%s.webp", strings.Trim(folder, "/"), uuid.NewString())
	b, err := bucket()
	if err != nil {
		return "", err
	}
	if err := b.PutObject(key, bytes.NewReader(out.Bytes()), oss.ContentType("image/webp")); err != nil {
		return "", fmt.Errorf("oss put: %w", err)
	}
	return publicURL(key), nil
}

/* =======================================================================
   Decode (jpeg/png/webp) with MIME sniff, extension fallback
======================================================================= */

func decodeImage(all []byte, filename string) (image.Image, error) {
	if len(all) == 0 {
		return nil, fmt.Errorf("empty file")
	}
	head := all
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)

	switch {
	case strings.Contains(ct, "jpeg"):
		return jpeg.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "png"):
		return png.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "webp"):
		return webp.Decode(bytes.NewReader(all))
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return jpeg.Decode(bytes.NewReader(all))
	case ".png":
		return png.Decode(bytes.NewReader(all))
	case ".webp":
		return webp.Decode(bytes.NewReader(all))
	}
	return nil, fmt.Errorf("unsupported image format: %s", ct)
}

func downscaleIfNeeded(src image.Image, maxW, maxH int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxW && h <= maxH {
		return src
	}
	scale := math.Min(float64(maxW)/float64(w), float64(maxH)/float64(h))
	nw := int(math.Round(float64(w) * scale))
	nh := int(math.Round(float64(h) * scale))
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
