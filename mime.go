package sniffkit

import (
	"mime"
	"path/filepath"
	"strings"

	"github.com/gobeaver/sniffkit/sniff"
)

// Common MIME types
const (
	MIMETypeTextPlain       = "text/plain"
	MIMETypeTextHTML        = "text/html"
	MIMETypeTextCSS         = "text/css"
	MIMETypeTextJavaScript  = "text/javascript"
	MIMETypeApplicationJSON = "application/json"
	MIMETypeApplicationXML  = "application/xml"
	MIMETypeImageJPEG       = "image/jpeg"
	MIMETypeImagePNG        = "image/png"
	MIMETypeImageGIF        = "image/gif"
	MIMETypeImageSVG        = "image/svg+xml"
	MIMETypeImageWebP       = "image/webp"
	MIMETypeAudioMP3        = "audio/mpeg"
	MIMETypeAudioOGG        = "audio/ogg"
	MIMETypeVideoMP4        = "video/mp4"
	MIMETypeVideoWebM       = "video/webm"
	MIMETypeApplicationPDF  = "application/pdf"
	MIMETypeApplicationZip  = "application/zip"
	MIMETypeOctetStream     = sniff.DefaultType
)

// Common file extensions to MIME types mapping
var extensionToMIME = map[string]string{
	".txt":   MIMETypeTextPlain,
	".html":  MIMETypeTextHTML,
	".htm":   MIMETypeTextHTML,
	".css":   MIMETypeTextCSS,
	".js":    MIMETypeTextJavaScript,
	".json":  MIMETypeApplicationJSON,
	".xml":   MIMETypeApplicationXML,
	".jpg":   MIMETypeImageJPEG,
	".jpeg":  MIMETypeImageJPEG,
	".png":   MIMETypeImagePNG,
	".gif":   MIMETypeImageGIF,
	".svg":   MIMETypeImageSVG,
	".webp":  MIMETypeImageWebP,
	".mp3":   MIMETypeAudioMP3,
	".ogg":   MIMETypeAudioOGG,
	".mp4":   MIMETypeVideoMP4,
	".webm":  MIMETypeVideoWebM,
	".pdf":   MIMETypeApplicationPDF,
	".zip":   MIMETypeApplicationZip,
	".gz":    "application/gzip",
	".tar":   "application/x-tar",
	".csv":   "text/csv",
	".md":    "text/markdown",
	".doc":   "application/msword",
	".docx":  "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".xls":   "application/vnd.ms-excel",
	".xlsx":  "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	".ppt":   "application/vnd.ms-powerpoint",
	".pptx":  "application/vnd.openxmlformats-officedocument.presentationml.presentation",
	".woff":  "font/woff",
	".woff2": "font/woff2",
	".ttf":   "font/ttf",
	".eot":   "application/vnd.ms-fontobject",
	".otf":   "font/otf",
}

// GuessContentType tries to determine the content type of a file from its path and data
func GuessContentType(filePath string, data []byte) string {
	// First try to determine content type from extension
	ext := strings.ToLower(filepath.Ext(filePath))
	if contentType, ok := extensionToMIME[ext]; ok {
		return contentType
	}

	// If we can't determine from extension and we have data, sniff the content
	if len(data) > 0 {
		return sniff.Detect(data)
	}

	// As a last resort, use the standard library's mime package
	contentType := mime.TypeByExtension(ext)
	if contentType != "" {
		return contentType
	}

	// Fall back to octet-stream
	return MIMETypeOctetStream
}

// IsTextFile returns true if the file is a text file based on its MIME type
func IsTextFile(contentType string) bool {
	return strings.HasPrefix(contentType, "text/") ||
		contentType == MIMETypeApplicationJSON ||
		contentType == MIMETypeApplicationXML ||
		contentType == "application/javascript" ||
		contentType == "application/x-javascript"
}

// IsImageFile returns true if the file is an image file based on its MIME type
func IsImageFile(contentType string) bool {
	return strings.HasPrefix(contentType, "image/")
}

// IsAudioFile returns true if the file is an audio file based on its MIME type
func IsAudioFile(contentType string) bool {
	return strings.HasPrefix(contentType, "audio/")
}

// IsVideoFile returns true if the file is a video file based on its MIME type
func IsVideoFile(contentType string) bool {
	return strings.HasPrefix(contentType, "video/")
}

// IsFontFile returns true if the file is a font file based on its MIME type
func IsFontFile(contentType string) bool {
	return strings.HasPrefix(contentType, "font/") ||
		contentType == "application/font-woff" ||
		contentType == "application/vnd.ms-fontobject"
}

// IsCompressedFile returns true if the file is a compressed file based on its MIME type
func IsCompressedFile(contentType string) bool {
	return contentType == MIMETypeApplicationZip ||
		contentType == "application/gzip" ||
		contentType == "application/x-gzip" ||
		contentType == "application/x-tar" ||
		contentType == "application/x-7z-compressed" ||
		contentType == "application/x-rar-compressed"
}

// IsPDFFile returns true if the file is a PDF file based on its MIME type
func IsPDFFile(contentType string) bool {
	return contentType == MIMETypeApplicationPDF
}

// GetMIMECategory returns a human-readable category for a MIME type
func GetMIMECategory(contentType string) string {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return "image"
	case strings.HasPrefix(contentType, "video/"):
		return "video"
	case strings.HasPrefix(contentType, "audio/"):
		return "audio"
	case strings.HasPrefix(contentType, "text/"):
		return "text"
	case IsFontFile(contentType):
		return "font"
	case strings.Contains(contentType, "zip") || strings.Contains(contentType, "tar") ||
		strings.Contains(contentType, "rar") || strings.Contains(contentType, "7z") ||
		strings.Contains(contentType, "gzip") || strings.Contains(contentType, "bzip"):
		return "archive"
	case strings.Contains(contentType, "document") || contentType == MIMETypeApplicationPDF ||
		contentType == "application/postscript" ||
		strings.Contains(contentType, "msword") || strings.Contains(contentType, "excel") ||
		strings.Contains(contentType, "powerpoint"):
		return "document"
	default:
		return "other"
	}
}

// GetFileExtensionForMIME returns a suitable file extension for a given MIME type
func GetFileExtensionForMIME(contentType string) string {
	// Remove any parameters from the content type
	if idx := strings.Index(contentType, ";"); idx != -1 {
		contentType = contentType[:idx]
	}
	contentType = strings.TrimSpace(contentType)

	// Check for common MIME types
	switch contentType {
	case MIMETypeTextPlain:
		return ".txt"
	case MIMETypeTextHTML:
		return ".html"
	case MIMETypeTextCSS:
		return ".css"
	case MIMETypeTextJavaScript:
		return ".js"
	case MIMETypeApplicationJSON:
		return ".json"
	case MIMETypeApplicationXML:
		return ".xml"
	case MIMETypeImageJPEG:
		return ".jpg"
	case MIMETypeImagePNG:
		return ".png"
	case MIMETypeImageGIF:
		return ".gif"
	case MIMETypeImageSVG:
		return ".svg"
	case MIMETypeImageWebP:
		return ".webp"
	case MIMETypeAudioMP3:
		return ".mp3"
	case MIMETypeAudioOGG:
		return ".ogg"
	case MIMETypeVideoMP4:
		return ".mp4"
	case MIMETypeVideoWebM:
		return ".webm"
	case MIMETypeApplicationPDF:
		return ".pdf"
	case MIMETypeApplicationZip:
		return ".zip"
	}

	// For unknown MIME types, try to get an extension from the mime package
	exts, err := mime.ExtensionsByType(contentType)
	if err == nil && len(exts) > 0 {
		return exts[0]
	}

	// Fall back to .bin for binary data
	return ".bin"
}
