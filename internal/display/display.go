// Package display decides how a single card side is shown.
//
// A side is either a path to an image file or literal text. The decision is
// made on every call from the current filesystem state and is never cached.
package display

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// Kind tags an Instruction
type Kind int

const (
	Text Kind = iota
	Image
)

func (k Kind) String() string {
	if k == Image {
		return "image"
	}
	return "text"
}

// ImagePattern matches the lower-cased base name of an image side.
const ImagePattern = "*.{png,jpg,jpeg,gif,bmp,tiff}"

var imageGlob = glob.MustCompile(ImagePattern)

// Instruction is the resolved form of a card side. For Image, Value is the
// file path; for Text, Value is the literal string to show.
type Instruction struct {
	Kind  Kind
	Value string
}

// ImageOf builds an image instruction
func ImageOf(path string) Instruction {
	return Instruction{Kind: Image, Value: path}
}

// TextOf builds a text instruction
func TextOf(s string) Instruction {
	return Instruction{Kind: Text, Value: s}
}

// HasImageExtension reports whether side ends in a known image extension,
// ignoring case.
func HasImageExtension(side string) bool {
	return imageGlob.Match(strings.ToLower(filepath.Base(side)))
}

// Resolve classifies side. It is an Image only when side names an existing
// regular file with an image extension; everything else is Text.
func Resolve(side string) Instruction {
	if !HasImageExtension(side) {
		return TextOf(side)
	}
	info, err := os.Stat(side)
	if err != nil || !info.Mode().IsRegular() {
		return TextOf(side)
	}
	return ImageOf(side)
}
