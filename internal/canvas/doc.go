// Package canvas implements the local image operations behind the
// interactive tools: collage composition, resize and crop, rotation, photo
// adjustments, and meme captioning.
package canvas
