// Package imagefile is the codec boundary: it decodes image files into flat
// 8-bit sample planes and encodes them back, writing atomically so a failed
// encode never leaves a partial destination.
//
// Decoding is strict about bit depth. Formats that decode to anything other
// than 8-bit-per-channel samples are rejected with ErrUnsupportedPixelFormat
// instead of being widened or reinterpreted. PNG and JPEG use the standard
// library codecs; TIFF comes from golang.org/x/image.
package imagefile
