// Package ocr turns recognized score regions into raw text lines.
//
// [ParseHOCR] converts Tesseract hOCR output (lines, words, optional char
// boxes, confidences and font attributes) into [text.Line] values ready for
// reconciliation. [Recognizer] is the contract of an engine producing such
// lines from image data.
//
// The Tesseract-backed [Client] is compiled with the "ocr" build tag:
//
//	go build -tags ocr
//
// This requires Tesseract to be installed. On macOS:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
//
// Without the tag, [New] returns [ErrOCRNotEnabled].
package ocr
