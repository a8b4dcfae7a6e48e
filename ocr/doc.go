// Package ocr defines the contract between card scanning and a text
// recognition engine (for example Tesseract or a cloud service). An engine
// takes one encoded image and returns the recognized text in reading order;
// layout and geometry are not part of the contract. The interfaces are
// intentionally small so engines can be backed by local binaries, native
// libraries, or remote APIs without leaking provider-specific concerns into
// callers.
package ocr
