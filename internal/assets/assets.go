package assets

import "golang.org/x/image/font/gofont/gobold"

// LabelFont is the TrueType font used for the icon label unless a
// font file is configured.
var LabelFont = gobold.TTF
